package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	calc "github.com/osaptools/osap/internal/calculation"
	"github.com/osaptools/osap/internal/config"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: print_schedule <config-file> <monthly-payment>")
		return
	}
	f := os.Args[1]
	payment := decimal.RequireFromString(os.Args[2])

	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}

	rates := config.DefaultRates()
	loan := config.BuildLoan(cfg, rates)
	engine := calc.NewProjectionEngine(rates)

	fmt.Printf("Break-even payment (no grace): %s\n", engine.BreakEvenPayment(loan, false).StringFixed(2))
	fmt.Printf("Break-even payment (with grace): %s\n", engine.BreakEvenPayment(loan, true).StringFixed(2))

	res, err := engine.Amortize(loan, payment, true, decimal.Zero)
	if err != nil {
		panic(err)
	}

	fmt.Println("Month,FederalBalance,ProvincialBalance,TotalBalance,Interest,Principal")
	for _, row := range res.Schedule {
		fmt.Printf("%d,%s,%s,%s,%s,%s\n",
			row.Month,
			row.FederalBalance.StringFixed(2),
			row.ProvincialBalance.StringFixed(2),
			row.TotalBalance.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Principal.StringFixed(2),
		)
	}

	fmt.Printf("\nMonths: %d  Completed: %v\n", res.Months, res.Completed)
	fmt.Printf("Grace interest: %s\n", res.GraceInterest.StringFixed(2))
	fmt.Printf("Total interest: %s\n", res.TotalInterest.StringFixed(2))
	fmt.Printf("Total paid: %s\n", res.TotalPaid.StringFixed(2))
	fmt.Printf("Payoff date: %s\n", res.PayoffDate.Format("2006-01-02"))
}
