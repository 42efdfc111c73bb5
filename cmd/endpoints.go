package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showEndpointHealth bool

// endpointsCmd represents the endpoints command
var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List SIP endpoints",
	RunE:  runEndpoints,
}

func init() {
	addListFlags(endpointsCmd)
	endpointsCmd.Flags().BoolVar(&showEndpointHealth, "health", false, "show monitored endpoint health instead")
}

func runEndpoints(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if showEndpointHealth {
		health, err := client.GetEndpointHealth(ctx)
		if err != nil {
			return err
		}
		if len(health) == 0 {
			fmt.Println("No monitored endpoints.")
			return nil
		}
		for _, h := range health {
			status := "ok"
			if h.Alert {
				status = "ALERT"
			}
			fmt.Printf("• %s/%s  %-5s  latency %d/%d/%d/%d ms  %s\n",
				h.IP, h.Transport, status, h.Region1, h.Region2, h.Region3, h.Region4, h.Description)
		}
		return nil
	}

	endpoints, err := client.GetEndpoints(ctx, listOptions())
	if err != nil {
		return err
	}

	if len(endpoints) == 0 {
		fmt.Println("No endpoints found.")
		return nil
	}

	for _, e := range endpoints {
		fmt.Printf("• %s:%d/%s  priority %d", e.IP, e.Port, e.Transport, e.Priority)
		if e.EndpointGroup != nil {
			fmt.Printf("  group=%s", e.EndpointGroup.Name)
		}
		if e.Description != "" {
			fmt.Printf("  %s", e.Description)
		}
		fmt.Println()
	}
	return nil
}
