package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AUDRM-4824/Pre-float/cmd/floatop/ui"
	"github.com/AUDRM-4824/Pre-float/internal/plant"
)

var (
	rootSeed        int64
	rootTargetsFile string
)

var rootCmd = &cobra.Command{
	Use:   "floatop",
	Short: "Operator console for the Pre-float circuit simulator",
	Long: `floatop runs an interactive dashboard over the carbon reverse-flotation
circuit model: adjust the air rates, the Luproset dose and the feed
carbon grade, and watch the predicted grades, mass split, recovery and
Zn loss respond.

Keys: up/down select a control, left/right adjust it, d toggles the feed
disturbance, r resets the trends, q quits.`,
	RunE: runConsole,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&rootSeed, "seed", 0, "disturbance walk seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&rootTargetsFile, "targets", "", "YAML file overriding the operating target bands")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(sweepCmd)
}

func loadTargets() (plant.Targets, error) {
	if rootTargetsFile == "" {
		return plant.DefaultTargets(), nil
	}
	return plant.LoadTargets(rootTargetsFile)
}

func runConsole(cmd *cobra.Command, args []string) error {
	targets, err := loadTargets()
	if err != nil {
		return err
	}

	session := plant.NewSession(rootSeed, targets)
	p := tea.NewProgram(ui.NewConsole(session), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
