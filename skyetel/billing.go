package skyetel

import (
	"context"
	"net/url"
	"strconv"
)

// GetBillingBalance returns the organization's current account balance.
func (c *Client) GetBillingBalance(ctx context.Context) (float64, error) {
	body, err := c.get(ctx, c.endpoint(pathBillingBalance))
	if err != nil {
		return 0, err
	}

	balance, err := decodeObject[balanceEnvelope](body, "billing balance", "BALANCE")
	if err != nil {
		return 0, err
	}
	return balance.Balance.Float64(), nil
}

// The balance endpoint returns a single upper-case field with the amount
// as a string.
type balanceEnvelope struct {
	Balance Float `json:"BALANCE"`
}

// GetOrganizationStatement retrieves the organization statement for the
// given period. Zero year and month mean the current period.
func (c *Client) GetOrganizationStatement(ctx context.Context, year, month int) (*BillingStatement, error) {
	v := url.Values{}
	if year != 0 {
		v.Set("year", strconv.Itoa(year))
	}
	if month != 0 {
		v.Set("month", strconv.Itoa(month))
	}

	requestURL := c.endpoint(pathOrganizationStatement)
	if len(v) > 0 {
		requestURL += "?" + v.Encode()
	}

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	return decodeObject[BillingStatement](body, "organization statement", "statement")
}

// GetTenantStatements retrieves per-tenant statement summaries for the
// given period. Zero year and month mean the current period.
func (c *Client) GetTenantStatements(ctx context.Context, year, month int) ([]TenantStatement, error) {
	v := url.Values{}
	if year != 0 {
		v.Set("year", strconv.Itoa(year))
	}
	if month != 0 {
		v.Set("month", strconv.Itoa(month))
	}

	requestURL := c.endpoint(pathTenantStatements)
	if len(v) > 0 {
		requestURL += "?" + v.Encode()
	}

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	return decodeList[TenantStatement](body, "tenant statement", "tenant_id")
}
