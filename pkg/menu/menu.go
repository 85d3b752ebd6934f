// Package menu implements the interactive shell: a nested text menu over a
// line-based reader/writer pair. All arithmetic lives in pkg/electric and all
// input validation in pkg/prompt; this package is presentation glue.
package menu

import (
	"errors"
	"fmt"
	"io"

	"eecalc/pkg/electric"
	"eecalc/pkg/prompt"
	"eecalc/pkg/types"
)

// Validation rules for the numeric prompts. PF is bounded [0,1] in both
// directions, but zero is only legal when PF multiplies (the KW/KVA
// direction); as a divisor (the Amps direction) it stays disallowed.
var (
	anyNonZero = prompt.Rule{}
	pfDivisor  = prompt.Rule{HasMin: true, Min: 0, HasMax: true, Max: 1}
	pfFactor   = prompt.Rule{AllowZero: true, HasMin: true, Min: 0, HasMax: true, Max: 1}
)

// Shell runs the nested calculator menus on a reader/writer pair.
type Shell struct {
	p   *prompt.Prompter
	out io.Writer
}

// New creates a Shell reading user input from r and printing to w.
func New(r io.Reader, w io.Writer) *Shell {
	return &Shell{p: prompt.New(r, w), out: w}
}

// Run drives the main menu until the user quits. Exhausted input (io.EOF)
// unwinds every level and returns nil.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, mainMenuText)
		choice, err := s.p.Line("Your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if prompt.IsQuit(choice) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		switch choice {
		case "1":
			err = s.ampsMenu()
		case "2":
			err = s.kwMenu()
		case "3":
			err = s.kvaMenu()
		default:
			fmt.Fprintln(s.out, "Invalid option.")
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// subMenu loops one menu level: prints text, reads a choice, dispatches to
// calc. "0" or a quit token returns to the caller; a quit token typed at a
// numeric prompt inside calc unwinds here and also returns.
func (s *Shell) subMenu(text string, calc func(choice string) error) error {
	for {
		fmt.Fprint(s.out, text)
		choice, err := s.p.Line("Choose an option: ")
		if err != nil {
			return err
		}
		if choice == "0" || prompt.IsQuit(choice) {
			return nil
		}
		if err := calc(choice); err != nil {
			if errors.Is(err, prompt.ErrQuit) {
				fmt.Fprintln(s.out, "\nReturning to previous menu...")
				return nil
			}
			return err
		}
	}
}

func (s *Shell) ampsMenu() error { return s.subMenu(ampsMenuText, s.ampsCalc) }
func (s *Shell) kwMenu() error   { return s.subMenu(kwMenuText, s.kwCalc) }
func (s *Shell) kvaMenu() error  { return s.subMenu(kvaMenuText, s.kvaCalc) }

func (s *Shell) ampsCalc(choice string) error {
	var i float64
	switch choice {
	case "1", "4":
		kw, err := s.p.Float("Enter KW: ", anyNonZero)
		if err != nil {
			return err
		}
		v, err := s.p.Float(voltsLabel(choice == "4"), anyNonZero)
		if err != nil {
			return err
		}
		pf, err := s.p.Float("Enter PF (0–1): ", pfDivisor)
		if err != nil {
			return err
		}
		if choice == "1" {
			i = electric.AmpsSingleFromKW(kw, v, pf)
		} else {
			i = electric.AmpsThreeFromKW(kw, v, pf)
		}
	case "2", "5":
		kva, err := s.p.Float("Enter KVA: ", anyNonZero)
		if err != nil {
			return err
		}
		v, err := s.p.Float(voltsLabel(choice == "5"), anyNonZero)
		if err != nil {
			return err
		}
		if choice == "2" {
			i = electric.AmpsSingleFromKVA(kva, v)
		} else {
			i = electric.AmpsThreeFromKVA(kva, v)
		}
	case "3", "6":
		w, err := s.p.Float("Enter W (Watts): ", anyNonZero)
		if err != nil {
			return err
		}
		v, err := s.p.Float(voltsLabel(choice == "6"), anyNonZero)
		if err != nil {
			return err
		}
		pf, err := s.p.Float("Enter PF (0–1): ", pfDivisor)
		if err != nil {
			return err
		}
		if choice == "3" {
			i = electric.AmpsSingleFromW(w, v, pf)
		} else {
			i = electric.AmpsThreeFromW(w, v, pf)
		}
	default:
		fmt.Fprintln(s.out, "Invalid option.")
		return nil
	}

	fmt.Fprintf(s.out, "\nI = %s A\n", types.Value(i))
	return s.pressEnter()
}

func (s *Shell) kwCalc(choice string) error {
	three := choice == "2"
	if choice != "1" && !three {
		fmt.Fprintln(s.out, "Invalid option.")
		return nil
	}

	v, err := s.p.Float(voltsLabel(three), anyNonZero)
	if err != nil {
		return err
	}
	i, err := s.p.Float("Enter I (Amps): ", anyNonZero)
	if err != nil {
		return err
	}
	pf, err := s.p.Float("Enter PF (0–1): ", pfFactor)
	if err != nil {
		return err
	}

	kw := electric.KWSingle(v, i, pf)
	if three {
		kw = electric.KWThree(v, i, pf)
	}
	fmt.Fprintf(s.out, "\nKW = %s kW  (W = %s W)\n", types.Value(kw), types.Value(kw*1000))
	return s.pressEnter()
}

func (s *Shell) kvaCalc(choice string) error {
	three := choice == "2"
	if choice != "1" && !three {
		fmt.Fprintln(s.out, "Invalid option.")
		return nil
	}

	v, err := s.p.Float(voltsLabel(three), anyNonZero)
	if err != nil {
		return err
	}
	i, err := s.p.Float("Enter I (Amps): ", anyNonZero)
	if err != nil {
		return err
	}

	kva := electric.KVASingle(v, i)
	if three {
		kva = electric.KVAThree(v, i)
	}
	fmt.Fprintf(s.out, "\nKVA = %s kVA  (VA = %s VA)\n", types.Value(kva), types.Value(kva*1000))
	return s.pressEnter()
}

func voltsLabel(three bool) string {
	if three {
		return "Enter V_LINE-TO-LINE (Volts): "
	}
	return "Enter V (Volts): "
}

func (s *Shell) pressEnter() error {
	_, err := s.p.Line("\nPress Enter to continue...")
	return err
}

const mainMenuText = `
==============================
 Basic EE Equations Calculator
==============================
Note: For THREE-PHASE, V must be LINE-TO-LINE (V_LL).

Choose what to calculate:
1) Amps (I)
2) Real Power (KW)
3) Apparent Power (KVA)
q) Quit
`

const ampsMenuText = `
--- Calculate Amps (I) ---
1) Single-phase: from KW
2) Single-phase: from KVA
3) Single-phase: from W
4) Three-phase (V is LINE-TO-LINE): from KW
5) Three-phase (V is LINE-TO-LINE): from KVA
6) Three-phase (V is LINE-TO-LINE): from W
0) Back to main menu
`

const kwMenuText = `
--- Calculate Real Power (KW) ---
1) Single-phase: from V, I, PF
2) Three-phase (V is LINE-TO-LINE): from V, I, PF
0) Back to main menu
`

const kvaMenuText = `
--- Calculate Apparent Power (KVA) ---
1) Single-phase: from V, I
2) Three-phase (V is LINE-TO-LINE): from V, I
0) Back to main menu
`
