package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// tenantsCmd represents the tenants command
var tenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "List tenants",
	RunE:  runTenants,
}

func init() {
	addListFlags(tenantsCmd)
}

func runTenants(cmd *cobra.Command, args []string) error {
	tenants, err := client.GetTenants(context.Background(), listOptions())
	if err != nil {
		return err
	}

	if len(tenants) == 0 {
		fmt.Println("No tenants found.")
		return nil
	}

	fmt.Printf("Found %d tenants:\n", len(tenants))
	for _, tenant := range tenants {
		fmt.Printf("• %s (ID: %d, code: %s)\n", tenant.Name, tenant.ID, tenant.TenantCode)
	}
	return nil
}
