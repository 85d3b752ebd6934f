package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"eecalc/pkg/electric"
	"eecalc/pkg/menu"
	"eecalc/pkg/types"
)

func main() {
	root := &cobra.Command{
		Use:   "eecalc",
		Short: "Interactive calculator for basic electrical power relationships",
		Long: `eecalc computes single-phase and three-phase power relationships
(current, real power, apparent power) from user-supplied scalars.

Run without a subcommand for the interactive menu. For THREE-PHASE
calculations, V must be LINE-TO-LINE (V_LL).

Examples:
  eecalc
  eecalc amps --kw 5 --volts 240 --pf 0.9
  eecalc amps --kva 10 --volts 480 --three
  eecalc kw --volts 480 --amps 20 --pf 1 --three
  eecalc kva --volts 230 --amps 10`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return menu.New(os.Stdin, os.Stdout).Run()
		},
	}

	root.AddCommand(ampsCmd(), kwCmd(), kvaCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func ampsCmd() *cobra.Command {
	var (
		kw, kva, watts float64
		volts, pf      float64
		three          bool
	)

	cmd := &cobra.Command{
		Use:   "amps",
		Short: "Compute current (I) from real or apparent power",
		RunE: func(cmd *cobra.Command, args []string) error {
			if volts == 0 {
				return fmt.Errorf("volts must be non-zero")
			}

			sources := 0
			for _, name := range []string{"kw", "kva", "watts"} {
				if cmd.Flags().Changed(name) {
					sources++
				}
			}
			if sources != 1 {
				return fmt.Errorf("exactly one of --kw, --kva or --watts is required")
			}

			var i float64
			switch {
			case cmd.Flags().Changed("kva"):
				if three {
					i = electric.AmpsThreeFromKVA(kva, volts)
				} else {
					i = electric.AmpsSingleFromKVA(kva, volts)
				}
			default:
				// PF divides here, so zero stays illegal.
				if pf <= 0 || pf > 1 {
					return fmt.Errorf("pf must be in (0,1]")
				}
				if cmd.Flags().Changed("kw") {
					if three {
						i = electric.AmpsThreeFromKW(kw, volts, pf)
					} else {
						i = electric.AmpsSingleFromKW(kw, volts, pf)
					}
				} else {
					if three {
						i = electric.AmpsThreeFromW(watts, volts, pf)
					} else {
						i = electric.AmpsSingleFromW(watts, volts, pf)
					}
				}
			}

			fmt.Printf("I = %s A\n", types.Value(i))
			return nil
		},
	}

	cmd.Flags().Float64Var(&kw, "kw", 0, "real power in kilowatts")
	cmd.Flags().Float64Var(&kva, "kva", 0, "apparent power in kilovolt-amps")
	cmd.Flags().Float64Var(&watts, "watts", 0, "real power in Watts")
	cmd.Flags().Float64Var(&volts, "volts", 0, "voltage in Volts (line-to-line when --three)")
	cmd.Flags().Float64Var(&pf, "pf", 0, "power factor [0..1]")
	cmd.Flags().BoolVar(&three, "three", false, "three-phase (balanced, line-to-line voltage)")
	_ = cmd.MarkFlagRequired("volts")

	return cmd
}

func kwCmd() *cobra.Command {
	var (
		volts, amps, pf float64
		three           bool
	)

	cmd := &cobra.Command{
		Use:   "kw",
		Short: "Compute real power (KW) from V, I and PF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if volts == 0 {
				return fmt.Errorf("volts must be non-zero")
			}
			if amps == 0 {
				return fmt.Errorf("amps must be non-zero")
			}
			// PF multiplies here; zero is a valid purely reactive load.
			if pf < 0 || pf > 1 {
				return fmt.Errorf("pf must be in [0,1]")
			}

			kw := electric.KWSingle(volts, amps, pf)
			if three {
				kw = electric.KWThree(volts, amps, pf)
			}
			fmt.Printf("KW = %s kW  (W = %s W)\n", types.Value(kw), types.Value(kw*1000))
			return nil
		},
	}

	cmd.Flags().Float64Var(&volts, "volts", 0, "voltage in Volts (line-to-line when --three)")
	cmd.Flags().Float64Var(&amps, "amps", 0, "current in Amps")
	cmd.Flags().Float64Var(&pf, "pf", 0, "power factor [0..1]")
	cmd.Flags().BoolVar(&three, "three", false, "three-phase (balanced, line-to-line voltage)")
	_ = cmd.MarkFlagRequired("volts")
	_ = cmd.MarkFlagRequired("amps")
	_ = cmd.MarkFlagRequired("pf")

	return cmd
}

func kvaCmd() *cobra.Command {
	var (
		volts, amps float64
		three       bool
	)

	cmd := &cobra.Command{
		Use:   "kva",
		Short: "Compute apparent power (KVA) from V and I",
		RunE: func(cmd *cobra.Command, args []string) error {
			if volts == 0 {
				return fmt.Errorf("volts must be non-zero")
			}
			if amps == 0 {
				return fmt.Errorf("amps must be non-zero")
			}

			kva := electric.KVASingle(volts, amps)
			if three {
				kva = electric.KVAThree(volts, amps)
			}
			fmt.Printf("KVA = %s kVA  (VA = %s VA)\n", types.Value(kva), types.Value(kva*1000))
			return nil
		},
	}

	cmd.Flags().Float64Var(&volts, "volts", 0, "voltage in Volts (line-to-line when --three)")
	cmd.Flags().Float64Var(&amps, "amps", 0, "current in Amps")
	cmd.Flags().BoolVar(&three, "three", false, "three-phase (balanced, line-to-line voltage)")
	_ = cmd.MarkFlagRequired("volts")
	_ = cmd.MarkFlagRequired("amps")

	return cmd
}
