package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/skyetel/skyetel"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show traffic, channel, and call volume statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	var (
		traffic  []skyetel.TrafficCount
		channels []skyetel.ChannelCount
		hourly   []skyetel.CallCount
	)

	// The three series are independent, fetch them concurrently.
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		traffic, err = client.GetTrafficCounts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		channels, err = client.GetChannelCounts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		hourly, err = client.GetMostActiveHour(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println("Daily traffic:")
	fmt.Println(strings.Repeat("-", 60))
	for _, day := range traffic {
		fmt.Printf("%s  in %5d min (%d calls)  out %5d min (%d calls)  $%.2f\n",
			day.Date.Format("2006-01-02"),
			day.InboundMinutes.Int64(), day.InboundCount.Int64(),
			day.OutboundMinutes.Int64(), day.OutboundCount.Int64(),
			day.TotalBillingCost.Float64())
	}

	var peak skyetel.ChannelCount
	for _, sample := range channels {
		if sample.ChannelCount > peak.ChannelCount {
			peak = sample
		}
	}
	if !peak.Date.IsZero() {
		fmt.Printf("\nPeak concurrent channels: %d on %s\n",
			peak.ChannelCount.Int64(), peak.Date.Format("2006-01-02"))
	}

	var busiest skyetel.CallCount
	for _, hour := range hourly {
		if hour.CallCount > busiest.CallCount {
			busiest = hour
		}
	}
	if busiest.CallCount > 0 {
		fmt.Printf("Most active hour: %s (%d calls)\n",
			busiest.Date.Format("15:04"), busiest.CallCount.Int64())
	}

	return nil
}
