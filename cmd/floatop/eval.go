package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/AUDRM-4824/Pre-float/internal/model"
)

var (
	evalRougherAir float64
	evalJamesonAir float64
	evalLuproset   float64
	evalFeedCarbon float64
	evalJSON       bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the circuit model once and print the predicted steady state",
	Long: `Evaluate the process model for one set of inputs.

Examples:
  floatop eval --rougher-air 500 --feed-carbon 4.5
  floatop eval --luproset 80 --json`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Float64Var(&evalRougherAir, "rougher-air", 0, "rougher air rate, m³/hr (0-1000)")
	evalCmd.Flags().Float64Var(&evalJamesonAir, "jameson-air", 0, "jameson air rate, m³/hr (0-600)")
	evalCmd.Flags().Float64Var(&evalLuproset, "luproset", 80, "luproset dosage, g/t (0-100)")
	evalCmd.Flags().Float64Var(&evalFeedCarbon, "feed-carbon", 4.5, "feed carbon grade, % (3.0-6.0)")
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "print the evaluation as JSON")
}

func runEval(cmd *cobra.Command, args []string) error {
	ev := model.Evaluate(model.Inputs{
		RougherAir: evalRougherAir,
		JamesonAir: evalJamesonAir,
		Luproset:   evalLuproset,
		FeedCarbon: evalFeedCarbon,
	})

	if evalJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ev)
	}

	printEvaluation(ev)

	targets, err := loadTargets()
	if err != nil {
		return err
	}
	for _, w := range targets.Check(ev) {
		fmt.Printf("  ⚠ %s\n", w.Message)
	}
	return nil
}

func printEvaluation(ev model.Evaluation) {
	fmt.Printf("Carbon recovery:       %.1f%%\n", ev.Recovery)
	fmt.Printf("Concentrate carbon:    %.1f%%\n", ev.ConcCarbon)
	fmt.Printf("Tailings carbon:       %.2f%%\n", ev.TailCarbon)
	fmt.Printf("Concentrate mass:      %s t\n", humanize.CommafWithDigits(ev.ConcMass, 1))
	fmt.Printf("Tailings mass:         %s t\n", humanize.CommafWithDigits(ev.TailMass, 1))
	fmt.Printf("Mass-balance recovery: %.1f%%\n", ev.MassBalanceRecovery)
	fmt.Printf("Zn loss:               %.2f%%\n", ev.ZnLoss)
}
