package skyetel

import "fmt"

// REST path catalog. Templates with placeholders are fmt formats filled in
// by the facade methods; nothing below is ever inspected, only concatenated
// onto the base URL.
const (
	pathAudioRecordings            = "/audio_recordings"
	pathAudioRecordingDownload     = "/audio_recordings/%d/download"
	pathAudioTranscriptions        = "/audio_transcriptions"
	pathAudioTranscriptionDownload = "/audio_transcriptions/%d/download"

	pathBillingBalance = "/billing/balance"

	pathEndpoints = "/endpoints"
	pathEndpoint  = "/endpoints/%d"

	pathPhoneNumbers           = "/phonenumbers"
	pathPhoneNumber            = "/phonenumbers/%d"
	pathPhoneNumberE911        = "/phonenumbers/%d/e911address"
	pathPhoneNumbersOffNetwork = "/phonenumbers/off-network"
	pathPhoneNumberSearch      = "/phonenumbers/order/search"
	pathRateCenters            = "/phonenumbers/order/rate_centers"
	pathPhoneNumberOrder       = "/phonenumbers/order"

	pathLocalNumberCount    = "/stats/phonenumbers/local"
	pathTollFreeNumberCount = "/stats/phonenumbers/toll-free"

	pathSMSReceipts = "/smsreceipts"

	pathEndpointHealth        = "/stats/iphealth"
	pathOrganizationStatement = "/stats/org/statement"
	pathTrafficCounts         = "/stats/org/traffic/total-counts"
	pathChannelCounts         = "/stats/org/traffic/channels"
	pathMostActiveHour        = "/stats/org/traffic/most-active-hour"

	pathTenantStatements      = "/stats/org/tenant-statements"
	pathTenantInvoices        = "/tenants/billing"
	pathTenantBilling         = "/tenants/%d/billing"
	pathTenantBillingProducts = "/tenants/billing-products"
	pathTenants               = "/tenants"
	pathTenant                = "/tenants/%d"
	pathAllTenantEndpoints    = "/tenants/endpoints"
	pathTenantEndpoints       = "/tenants/%d/endpoints"
	pathTenantEndpoint        = "/tenants/%d/endpoints/%d"
	pathTenantFeatures        = "/tenants/%d/features"
	pathTenantMonthlyStats    = "/tenants/%d/monthly-stats"
	pathTenantCurrentStats    = "/tenants/%d/current-stats"
	pathOrganizationUsers     = "/tenants/users"
	pathTenantUsers           = "/tenants/%d/users"

	pathFaxes       = "/vfaxes"
	pathFaxDownload = "/vfaxes/%d/download"
)

// endpoint builds a fully-qualified URL from a path template.
func (c *Client) endpoint(path string, args ...any) string {
	if len(args) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + fmt.Sprintf(path, args...)
}
