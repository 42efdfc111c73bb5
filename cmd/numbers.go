package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/skyetel/filter"
	"github.com/s0up4200/skyetel/skyetel"
)

var searchFilter skyetel.NumberSearchFilter

// numbersCmd represents the numbers command
var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Manage the phone number inventory",
}

var numbersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List phone numbers, optionally filtered by an expression",
	Long: `List the phone numbers in your inventory. The --filter flag takes an
expression evaluated against each number, for example:

  skyetel numbers list --filter 'CNAMEnabled && Tenant == "acme"'
  skyetel numbers list --filter 'matchText(Note, "pbx")'`,
	RunE: runNumbersList,
}

var numbersSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search numbers available for purchase",
	RunE:  runNumbersSearch,
}

func init() {
	numbersCmd.AddCommand(numbersListCmd)
	numbersCmd.AddCommand(numbersSearchCmd)

	numbersListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	numbersListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a named filter from config")
	addListFlags(numbersListCmd)

	numbersSearchCmd.Flags().StringSliceVar(&searchFilter.States, "state", nil, "two-letter state codes")
	numbersSearchCmd.Flags().IntSliceVar(&searchFilter.NPAs, "npa", nil, "area codes")
	numbersSearchCmd.Flags().IntSliceVar(&searchFilter.NXXs, "nxx", nil, "exchanges")
	numbersSearchCmd.Flags().IntVar(&searchFilter.Category, "category", 0, "number category (default local)")
	numbersSearchCmd.Flags().IntVar(&searchFilter.Quantity, "quantity", 0, "number of results (default 1)")
	numbersSearchCmd.Flags().BoolVar(&searchFilter.Consecutive, "consecutive", false, "require consecutive numbers")
	numbersSearchCmd.Flags().BoolVar(&searchFilter.Vanity, "vanity", false, "search vanity numbers")
	numbersSearchCmd.Flags().StringVar(&searchFilter.TNMask, "tn-mask", "", "digit mask, x matches any digit")
	numbersSearchCmd.Flags().StringVar(&searchFilter.TNWildcard, "tn-wildcard", "", "digit pattern, * matches a digit run")
	numbersSearchCmd.Flags().IntVar(&searchFilter.LATA, "lata", 0, "LATA code")
	numbersSearchCmd.Flags().StringVar(&searchFilter.RateCenter, "rate-center", "", "rate center name")
	numbersSearchCmd.Flags().BoolVar(&searchFilter.Sequential, "sequential", false, "require sequential numbers")
	numbersSearchCmd.Flags().StringVar(&searchFilter.Province, "province", "", "province")
	numbersSearchCmd.Flags().StringVar(&searchFilter.City, "city", "", "city")
	numbersSearchCmd.Flags().IntVar(&searchFilter.PostalCode, "postal-code", 0, "postal code")
	numbersSearchCmd.Flags().IntVar(&searchFilter.Radius, "radius", 0, "search radius in miles")
	numbersSearchCmd.Flags().BoolVar(&searchFilter.LocalCallingArea, "local-calling-area", false, "expand to the local calling area")
}

func runNumbersList(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	var f *filter.Filter
	if expression != "" {
		f, err = filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", expression).Msg("Listing phone numbers")
	}

	numbers, err := client.GetPhoneNumbers(context.Background(), listOptions())
	if err != nil {
		return err
	}

	var shown int
	for _, number := range numbers {
		if f != nil {
			matched, err := f.Match(filter.PhoneNumberEnv(number))
			if err != nil {
				return err
			}
			if !matched {
				continue
			}
		}
		shown++

		fmt.Printf("• %d", number.Number.Int64())
		var flags []string
		if number.E911Enabled {
			flags = append(flags, "e911")
		}
		if number.CNAMEnabled {
			flags = append(flags, "cnam")
		}
		if number.MessageEnabled {
			flags = append(flags, "sms")
		}
		if number.OffNetwork {
			flags = append(flags, "off-network")
		}
		if len(flags) > 0 {
			fmt.Printf(" [%s]", strings.Join(flags, ","))
		}
		if number.Tenant != nil {
			fmt.Printf(" tenant=%s", number.Tenant.Name)
		}
		if number.Note != "" {
			fmt.Printf("  %s", number.Note)
		}
		fmt.Println()
	}

	if shown == 0 {
		fmt.Println("No phone numbers found.")
	}
	return nil
}

func runNumbersSearch(cmd *cobra.Command, args []string) error {
	results, err := client.SearchAvailablePhoneNumbers(context.Background(), &searchFilter)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No numbers available for these criteria.")
		return nil
	}

	fmt.Printf("Found %d available numbers:\n", len(results))
	for _, n := range results {
		fmt.Printf("• %d  %s, %s\n", n.Number.Int64(), n.RateCenter, n.State)
	}
	return nil
}
