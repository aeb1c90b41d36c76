package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AUDRM-4824/Pre-float/internal/model"
	"github.com/AUDRM-4824/Pre-float/internal/plant"
)

var (
	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	sweepCSV    bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <variable>",
	Short: "Sweep one input across a range and print the model response",
	Long: `Sweep one input variable while holding the others at their defaults.

Variables: rougher_air, jameson_air, luproset, feed_carbon

Examples:
  floatop sweep rougher_air
  floatop sweep luproset --from 0 --to 100 --points 21 --csv`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "sweep start (default: the variable's lower bound)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "sweep end (default: the variable's upper bound)")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 11, "number of sample points")
	sweepCmd.Flags().BoolVar(&sweepCSV, "csv", false, "emit CSV instead of a table")
}

func runSweep(cmd *cobra.Command, args []string) error {
	v, err := model.ParseVariable(args[0])
	if err != nil {
		return err
	}

	from, to := sweepFrom, sweepTo
	if !cmd.Flags().Changed("from") || !cmd.Flags().Changed("to") {
		lo, hi := v.Range()
		if !cmd.Flags().Changed("from") {
			from = lo
		}
		if !cmd.Flags().Changed("to") {
			to = hi
		}
	}

	evals := model.Sweep(plant.DefaultInputs, v, from, to, sweepPoints)

	if sweepCSV {
		return writeSweepCSV(os.Stdout, v, evals)
	}

	fmt.Printf("%-10s %9s %9s %9s %9s %9s\n",
		string(v), "recovery", "conc_pct", "tail_pct", "conc_t", "zn_loss")
	for _, ev := range evals {
		fmt.Printf("%-10.1f %8.1f%% %8.1f%% %8.2f%% %9.1f %8.2f%%\n",
			sweepValue(v, ev.Inputs), ev.Recovery, ev.ConcCarbon, ev.TailCarbon, ev.ConcMass, ev.ZnLoss)
	}
	return nil
}

func writeSweepCSV(f *os.File, v model.Variable, evals []model.Evaluation) error {
	w := csv.NewWriter(f)
	if err := w.Write([]string{string(v), "recovery_pct", "conc_carbon_pct", "tail_carbon_pct", "conc_mass_t", "tail_mass_t", "zn_loss_pct"}); err != nil {
		return err
	}
	for _, ev := range evals {
		rec := []string{
			strconv.FormatFloat(sweepValue(v, ev.Inputs), 'f', 2, 64),
			strconv.FormatFloat(ev.Recovery, 'f', 2, 64),
			strconv.FormatFloat(ev.ConcCarbon, 'f', 2, 64),
			strconv.FormatFloat(ev.TailCarbon, 'f', 3, 64),
			strconv.FormatFloat(ev.ConcMass, 'f', 2, 64),
			strconv.FormatFloat(ev.TailMass, 'f', 2, 64),
			strconv.FormatFloat(ev.ZnLoss, 'f', 3, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func sweepValue(v model.Variable, in model.Inputs) float64 {
	switch v {
	case model.VarRougherAir:
		return in.RougherAir
	case model.VarJamesonAir:
		return in.JamesonAir
	case model.VarLuproset:
		return in.Luproset
	default:
		return in.FeedCarbon
	}
}
