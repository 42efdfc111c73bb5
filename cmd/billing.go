package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	statementYear  int
	statementMonth int
)

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the current account balance",
	RunE:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	balance, err := client.GetBillingBalance(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Account balance: $%.2f\n", balance)
	return nil
}

// statementCmd represents the statement command
var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Show the organization statement for a billing period",
	RunE:  runStatement,
}

func init() {
	now := time.Now()
	statementCmd.Flags().IntVar(&statementYear, "year", now.Year(), "statement year")
	statementCmd.Flags().IntVar(&statementMonth, "month", int(now.Month()), "statement month (1-12)")
}

func runStatement(cmd *cobra.Command, args []string) error {
	if statementMonth < 1 || statementMonth > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}

	logger.Debug().Int("year", statementYear).Int("month", statementMonth).Msg("Fetching statement")

	stmt, err := client.GetOrganizationStatement(context.Background(), statementYear, statementMonth)
	if err != nil {
		return err
	}

	fmt.Printf("Statement for %04d-%02d\n", statementYear, statementMonth)
	fmt.Println(strings.Repeat("-", 40))

	if s := stmt.Statement; s != nil {
		fmt.Printf("Outbound:  %.1f min / %d calls  $%.2f\n",
			s.OutboundMinutes.Float64(), s.OutboundCallsCount.Int64(), s.OutboundTotal.Float64())
		fmt.Printf("Inbound:   %.1f min / %d calls  $%.2f\n",
			s.InboundMinutes.Float64(), s.InboundCallsCount.Int64(), s.InboundTotal.Float64())
		fmt.Printf("SMS/MMS:   $%.2f\n", s.TotalSMSMMSCost.Float64())
		fmt.Printf("Features:  $%.2f\n", s.TotalFeaturesCost.Float64())
		fmt.Printf("Subtotal:  $%.2f\n", s.Subtotal.Float64())
		fmt.Printf("Taxes:     $%.2f\n", s.TotalTaxes.Float64())
		fmt.Printf("Total:     $%.2f\n", s.TotalCost.Float64())
	}

	if len(stmt.Taxes) > 0 {
		fmt.Printf("\nTax lines:\n")
		for _, tax := range stmt.Taxes {
			fmt.Printf("  %s: $%.2f (%s)\n", tax.TaxAuth, tax.TaxAmount.Float64(), tax.Description)
		}
	}

	if len(stmt.Transactions) > 0 {
		fmt.Printf("\nTransactions:\n")
		for _, tx := range stmt.Transactions {
			fmt.Printf("  %s  %-10s $%.2f  %s\n",
				tx.TransactionDate.Format("2006-01-02"), tx.TransactionType, tx.Amount.Float64(), tx.Note)
		}
	}

	return nil
}
