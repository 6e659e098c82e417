package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/osaptools/osap/internal/calculation"
	"github.com/osaptools/osap/internal/config"
	"github.com/osaptools/osap/internal/domain"
	"github.com/osaptools/osap/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "osap",
	Short: "OSAP Repayment Planner CLI",
	Long:  "Repayment projection calculator for Ontario student loans",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "osap %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadEngine builds the projection engine for a command, honoring the
// --rates override and --debug logging flags.
func loadEngine(cmd *cobra.Command) (*calculation.ProjectionEngine, error) {
	rates := config.DefaultRates()
	if ratesFile, _ := cmd.Flags().GetString("rates"); ratesFile != "" {
		loaded, err := config.LoadRatesFile(ratesFile)
		if err != nil {
			return nil, err
		}
		rates = loaded
	}

	engine := calculation.NewProjectionEngine(rates)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine, nil
}

func loadConfigAndLoan(cmd *cobra.Command, inputFile string, engine *calculation.ProjectionEngine) (*domain.Configuration, domain.Loan, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, domain.Loan{}, err
	}
	return cfg, config.BuildLoan(cfg, engine.Rates), nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the full repayment analysis for a borrower",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}
		cfg, loan, err := loadConfigAndLoan(cmd, args[0], engine)
		if err != nil {
			log.Fatal(err)
		}

		report := engine.RunAnalysis(loan, cfg, time.Now())

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unsupported format: %s", outputFormat)
		}
		data, err := f.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var whatifCmd = &cobra.Command{
	Use:   "whatif [input-file]",
	Short: "Compare a baseline payment against baseline plus an extra amount",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}
		cfg, loan, err := loadConfigAndLoan(cmd, args[0], engine)
		if err != nil {
			log.Fatal(err)
		}

		basePayment := decimalFlag(cmd, "payment")
		if basePayment.IsZero() {
			disposable := cfg.Borrower.MonthlyIncome.Sub(cfg.Borrower.MonthlyExpenses)
			basePayment, _, _ = engine.TierPayments(loan, disposable, engine.Rates.Field(cfg.Borrower.FieldOfStudy))
		}
		extraPayment := decimalFlag(cmd, "extra")

		result, err := engine.WhatIf(loan, basePayment, extraPayment)
		if err != nil {
			var tooLow *calculation.PaymentTooLowError
			if errors.As(err, &tooLow) {
				fmt.Printf("Payment too low: minimum required is %s.\n", output.FormatCurrency(tooLow.MinimumRequired.Round(2)))
				os.Exit(1)
			}
			log.Fatal(err)
		}
		fmt.Print(output.FormatWhatIf(result))
	},
}

var multidebtCmd = &cobra.Command{
	Use:   "multidebt [input-file]",
	Short: "Prioritize the OSAP loan against other debts (avalanche)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}
		cfg, loan, err := loadConfigAndLoan(cmd, args[0], engine)
		if err != nil {
			log.Fatal(err)
		}

		budget := decimalFlag(cmd, "budget")
		if budget.IsZero() && cfg.OtherDebts != nil {
			budget = cfg.OtherDebts.MonthlyBudget
		}

		plan, err := engine.PrioritizeDebts(loan, cfg.OtherDebts, budget)
		if err != nil {
			var tooLow *calculation.BudgetTooLowError
			if errors.As(err, &tooLow) {
				fmt.Printf("Budget too low: minimum payments total %s, short %s.\n",
					output.FormatCurrency(tooLow.RequiredMinimum.Round(2)),
					output.FormatCurrency(tooLow.Shortfall().Round(2)))
				os.Exit(1)
			}
			log.Fatal(err)
		}
		fmt.Print(output.FormatDebtPlan(plan))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare aggressive payoff against investing the difference",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}
		cfg, loan, err := loadConfigAndLoan(cmd, args[0], engine)
		if err != nil {
			log.Fatal(err)
		}
		if cfg.Comparison == nil {
			log.Fatal("input file has no comparison section")
		}

		cmp, err := engine.CompareInvestVsPayoff(loan,
			cfg.Comparison.AggressivePayment,
			cfg.Comparison.MinimumPayment,
			cfg.Comparison.AnnualReturnRate,
			cfg.Comparison.Years)
		if err != nil {
			var invalid *calculation.InvalidComparisonError
			var tooLow *calculation.PaymentTooLowError
			switch {
			case errors.As(err, &invalid):
				fmt.Printf("Invalid comparison: %v.\n", invalid)
			case errors.As(err, &tooLow):
				fmt.Printf("Payment too low: minimum required is %s.\n", output.FormatCurrency(tooLow.MinimumRequired.Round(2)))
			default:
				log.Fatal(err)
			}
			os.Exit(1)
		}
		fmt.Print(output.FormatInvestComparison(cmp))
	},
}

var rapCmd = &cobra.Command{
	Use:   "rap",
	Short: "Check Repayment Assistance Plan eligibility",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		income := decimalFlag(cmd, "income")
		familySize, _ := cmd.Flags().GetInt("family-size")

		status := engine.CheckEligibility(income, familySize)
		switch status.Level {
		case domain.RAPFull:
			fmt.Println("Full assistance: no required payment.")
		case domain.RAPPartial:
			fmt.Printf("Partial assistance: required payment %s/month.\n", output.FormatCurrency(status.MonthlyPayment.Round(2)))
		default:
			fmt.Printf("Not eligible: income above %s for a family of %d.\n",
				output.FormatCurrency(status.Stage1Threshold), status.FamilySize)
		}
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the active rate table",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(output.FormatRates(engine.Rates))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Configuration file %s is valid\n", args[0])
	},
}

func decimalFlag(cmd *cobra.Command, name string) decimal.Decimal {
	raw, _ := cmd.Flags().GetFloat64(name)
	return decimal.NewFromFloat(raw)
}

func main() {
	rootCmd.PersistentFlags().String("rates", "", "Path to a yaml rates override file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	calculateCmd.Flags().String("format", "console", "Output format (console, json, csv)")
	whatifCmd.Flags().Float64("payment", 0, "Baseline monthly payment (defaults to the minimum tier)")
	whatifCmd.Flags().Float64("extra", 0, "Extra monthly payment on top of the baseline")
	multidebtCmd.Flags().Float64("budget", 0, "Monthly budget across all debts (falls back to the input file)")
	rapCmd.Flags().Float64("income", 0, "Gross annual income")
	rapCmd.Flags().Int("family-size", 1, "Family size (table caps at 5)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(whatifCmd)
	rootCmd.AddCommand(multidebtCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(rapCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
