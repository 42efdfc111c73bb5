package skyetel

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// Sparse request payloads. Every field is a pointer: nil means "leave
// untouched" and is never serialized, while a pointer to a zero value is
// serialized, so resetting a flag to false stays distinguishable from not
// touching it. Use Ptr to build values inline.

// PhoneNumberUpdate describes a partial update of a phone number.
type PhoneNumberUpdate struct {
	Number              *string  `url:"number,omitempty"`
	Forward             *string  `url:"forward,omitempty"`
	Failover            *string  `url:"failover,omitempty"`
	Note                *string  `url:"note,omitempty"`
	ALG                 *int     `url:"alg,omitempty"`
	E911Enabled         *bool    `url:"e911_enabled,omitempty"`
	OffNetwork          *bool    `url:"off_network,omitempty"`
	CNAMEnabled         *bool    `url:"cnam_enabled,omitempty"`
	SpamblockEnabled    *bool    `url:"spamblock_enabled,omitempty"`
	SpamblockPassthru   *bool    `url:"spamblock_passthru,omitempty"`
	SpamblockRiskScore  *int     `url:"spamblock_risk_score,omitempty"`
	SpamblockBot        *int     `url:"spamblock_bot,omitempty"`
	SpamblockBotContact *string  `url:"spamblock_bot_contact_email,omitempty"`
	RecordCalls         *bool    `url:"record_calls,omitempty"`
	BlockNoCID          *bool    `url:"block_nocid,omitempty"`
	MessageEnabled      *bool    `url:"message_enabled,omitempty"`
	VFaxEnabled         *bool    `url:"vfax_enabled,omitempty"`
	VFaxExternalEnabled *bool    `url:"vfax_external_enabled,omitempty"`
	ConferenceBridge    *bool    `url:"conference_bridge_enabled,omitempty"`
	TNFormat            *int     `url:"tn_format,omitempty"`
	FailureStrategy     *int     `url:"failure_strategy,omitempty"`
	TierEnabled         *int     `url:"tier_enabled,omitempty"`
	IntlBalance         *float64 `url:"intl_balance,omitempty"`
	IntlReserve         *float64 `url:"intl_reserve,omitempty"`
	EndpointGroupID     *int64   `url:"endpoint_group_id,omitempty"`
	TenantID            *int64   `url:"tenant_id,omitempty"`
	LocalPresenceID     *int64   `url:"localpresence_id,omitempty"`
}

func (u PhoneNumberUpdate) values() (url.Values, error) {
	return sparseValues(u)
}

// EndpointCreate describes a new SIP endpoint. EndpointID is optional; the
// platform assigns one when it is nil.
type EndpointCreate struct {
	IP                string  `url:"ip"`
	Port              int     `url:"port"`
	Transport         string  `url:"transport"`
	Priority          int     `url:"priority"`
	Description       string  `url:"description"`
	EndpointGroupID   int64   `url:"endpoint_group_id"`
	EndpointGroupName string  `url:"endpoint_group_name"`
	EndpointID        *string `url:"endpoint_id,omitempty"`
}

func (c EndpointCreate) values() (url.Values, error) {
	return sparseValues(c)
}

// EndpointUpdate describes a partial update of a SIP endpoint.
type EndpointUpdate struct {
	IP                *string `url:"ip,omitempty"`
	Port              *int    `url:"port,omitempty"`
	Transport         *string `url:"transport,omitempty"`
	Priority          *int    `url:"priority,omitempty"`
	Description       *string `url:"description,omitempty"`
	EndpointGroupID   *int64  `url:"endpoint_group_id,omitempty"`
	EndpointGroupName *string `url:"endpoint_group_name,omitempty"`
}

func (u EndpointUpdate) values() (url.Values, error) {
	return sparseValues(u)
}

// TenantCreate describes a new tenant.
type TenantCreate struct {
	Name       string  `url:"name"`
	TenantCode *string `url:"tenant_code,omitempty"`
}

func (c TenantCreate) values() (url.Values, error) {
	return sparseValues(c)
}

// TenantUpdate describes a partial update of a tenant.
type TenantUpdate struct {
	Name       *string `url:"name,omitempty"`
	TenantCode *string `url:"tenant_code,omitempty"`
}

func (u TenantUpdate) values() (url.Values, error) {
	return sparseValues(u)
}

// sparseValues encodes a tagged payload struct into form values, emitting
// only set fields.
func sparseValues(payload any) (url.Values, error) {
	v, err := query.Values(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request payload: %w", err)
	}
	return v, nil
}

// E911AddressRequest updates the emergency address on a phone number. This
// endpoint takes a JSON body; omitted fields are left untouched.
type E911AddressRequest struct {
	CallerName *string `json:"caller_name,omitempty"`
	Address1   *string `json:"address1,omitempty"`
	Address2   *string `json:"address2,omitempty"`
	Community  *string `json:"community,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *int    `json:"postal_code,omitempty"`
}

// TenantFeaturesUpdate toggles tenant features. JSON body, sparse.
type TenantFeaturesUpdate struct {
	E911Enabled          *bool `json:"e911_enabled,omitempty"`
	CNAMEnabled          *bool `json:"cnam_enabled,omitempty"`
	MessageEnabled       *bool `json:"message_enabled,omitempty"`
	VFaxEnabled          *bool `json:"vfax_enabled,omitempty"`
	RecordCalls          *bool `json:"record_calls,omitempty"`
	TranscriptionEnabled *bool `json:"transcription_enabled,omitempty"`
}

// UserCreate describes a new tenant user. JSON body.
type UserCreate struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
