package skyetel

import (
	"context"
)

// GetTenants retrieves a page of tenants.
func (c *Client) GetTenants(ctx context.Context, opts ListOptions) ([]Tenant, error) {
	body, err := c.get(ctx, c.endpoint(pathTenants)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[Tenant](body, "tenant", "id")
}

// GetTenant retrieves one tenant by ID.
func (c *Client) GetTenant(ctx context.Context, tenantID int64) (*Tenant, error) {
	body, err := c.get(ctx, c.endpoint(pathTenant, tenantID))
	if err != nil {
		return nil, err
	}
	return decodeObject[Tenant](body, "tenant", "id")
}

// CreateTenant creates a new tenant.
func (c *Client) CreateTenant(ctx context.Context, req TenantCreate) (*Tenant, error) {
	form, err := req.values()
	if err != nil {
		return nil, err
	}

	body, err := c.postForm(ctx, c.endpoint(pathTenants), form)
	if err != nil {
		return nil, err
	}
	return decodeObject[Tenant](body, "tenant", "id")
}

// UpdateTenant applies a sparse update to a tenant.
func (c *Client) UpdateTenant(ctx context.Context, tenantID int64, upd TenantUpdate) (*Tenant, error) {
	form, err := upd.values()
	if err != nil {
		return nil, err
	}

	body, err := c.patchForm(ctx, c.endpoint(pathTenant, tenantID), form)
	if err != nil {
		return nil, err
	}
	return decodeObject[Tenant](body, "tenant", "id")
}

// GetTenantInvoices retrieves a page of invoices across all tenants.
func (c *Client) GetTenantInvoices(ctx context.Context, opts ListOptions) ([]TenantInvoice, error) {
	body, err := c.get(ctx, c.endpoint(pathTenantInvoices)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[TenantInvoice](body, "tenant invoice", "id")
}

// GetTenantBilling retrieves the invoices of one tenant.
func (c *Client) GetTenantBilling(ctx context.Context, tenantID int64) ([]TenantInvoice, error) {
	body, err := c.get(ctx, c.endpoint(pathTenantBilling, tenantID))
	if err != nil {
		return nil, err
	}
	return decodeList[TenantInvoice](body, "tenant invoice", "id")
}

// GetTenantBillingProducts lists the products that can be billed to
// tenants.
func (c *Client) GetTenantBillingProducts(ctx context.Context) ([]BillingProduct, error) {
	body, err := c.get(ctx, c.endpoint(pathTenantBillingProducts))
	if err != nil {
		return nil, err
	}
	return decodeList[BillingProduct](body, "billing product", "id")
}

// GetAllTenantEndpoints retrieves the SIP endpoints of every tenant.
func (c *Client) GetAllTenantEndpoints(ctx context.Context) ([]Endpoint, error) {
	body, err := c.get(ctx, c.endpoint(pathAllTenantEndpoints))
	if err != nil {
		return nil, err
	}
	return decodeList[Endpoint](body, "endpoint", "id")
}

// GetTenantEndpoints retrieves the SIP endpoints of one tenant.
func (c *Client) GetTenantEndpoints(ctx context.Context, tenantID int64) ([]Endpoint, error) {
	body, err := c.get(ctx, c.endpoint(pathTenantEndpoints, tenantID))
	if err != nil {
		return nil, err
	}
	return decodeList[Endpoint](body, "endpoint", "id")
}

// UpdateTenantEndpoint applies a sparse update to one of a tenant's SIP
// endpoints.
func (c *Client) UpdateTenantEndpoint(ctx context.Context, tenantID, endpointID int64, upd EndpointUpdate) (*Endpoint, error) {
	form, err := upd.values()
	if err != nil {
		return nil, err
	}

	body, err := c.patchForm(ctx, c.endpoint(pathTenantEndpoint, tenantID, endpointID), form)
	if err != nil {
		return nil, err
	}
	return decodeObject[Endpoint](body, "endpoint", "id")
}

// GetTenantFeatures retrieves the feature toggles of a tenant.
func (c *Client) GetTenantFeatures(ctx context.Context, tenantID int64) (*TenantFeatures, error) {
	body, err := c.get(ctx, c.endpoint(pathTenantFeatures, tenantID))
	if err != nil {
		return nil, err
	}
	return decodeObject[TenantFeatures](body, "tenant features", "tenant_id")
}

// UpdateTenantFeatures toggles features on a tenant. JSON body, sparse.
func (c *Client) UpdateTenantFeatures(ctx context.Context, tenantID int64, upd TenantFeaturesUpdate) (*TenantFeatures, error) {
	body, err := c.patchJSON(ctx, c.endpoint(pathTenantFeatures, tenantID), upd)
	if err != nil {
		return nil, err
	}
	return decodeObject[TenantFeatures](body, "tenant features", "tenant_id")
}

// GetTenantMonthlyStats retrieves monthly usage for a tenant.
func (c *Client) GetTenantMonthlyStats(ctx context.Context, tenantID int64) ([]TenantMonthlyStats, error) {
	body, err := c.get(ctx, c.endpoint(pathTenantMonthlyStats, tenantID))
	if err != nil {
		return nil, err
	}
	return decodeList[TenantMonthlyStats](body, "tenant monthly stats", "year", "month")
}

// GetTenantCurrentStats retrieves the live usage snapshot of a tenant.
func (c *Client) GetTenantCurrentStats(ctx context.Context, tenantID int64) (*TenantCurrentStats, error) {
	body, err := c.get(ctx, c.endpoint(pathTenantCurrentStats, tenantID))
	if err != nil {
		return nil, err
	}
	return decodeObject[TenantCurrentStats](body, "tenant current stats")
}

// GetOrganizationUsers retrieves a page of users across the organization.
func (c *Client) GetOrganizationUsers(ctx context.Context, opts ListOptions) ([]User, error) {
	body, err := c.get(ctx, c.endpoint(pathOrganizationUsers)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[User](body, "user", "id")
}

// GetTenantUsers retrieves the users of one tenant.
func (c *Client) GetTenantUsers(ctx context.Context, tenantID int64) ([]User, error) {
	body, err := c.get(ctx, c.endpoint(pathTenantUsers, tenantID))
	if err != nil {
		return nil, err
	}
	return decodeList[User](body, "user", "id")
}

// CreateTenantUser creates a user under a tenant. JSON body.
func (c *Client) CreateTenantUser(ctx context.Context, tenantID int64, req UserCreate) (*User, error) {
	body, err := c.postJSON(ctx, c.endpoint(pathTenantUsers, tenantID), req)
	if err != nil {
		return nil, err
	}
	return decodeObject[User](body, "user", "id")
}
