package skyetel

// Domain records for the Skyetel API. Every record is constructed by the
// decode layer and never mutated afterwards. Nested sub-objects are pointer
// fields so an absent or null object stays nil instead of failing the
// decode.

// Organization identifies the owning organization on a resource.
type Organization struct {
	OrgID   int64  `json:"org_id"`
	OrgName string `json:"org_name"`
}

// ExtendedOrganization is the full organization profile attached to phone
// numbers and SMS receipts.
type ExtendedOrganization struct {
	ID                    int64    `json:"id"`
	Active                bool     `json:"active"`
	AuthorizedTier        int      `json:"authorized_tier"`
	AccountNumber         Int      `json:"account_number"`
	SupportPin            Int      `json:"support_pin"`
	OrgName               string   `json:"org_name"`
	Website               string   `json:"website"`
	TranscriptionPassword string   `json:"transcription_password"`
	PhoneNumber           string   `json:"phone_number"`
	BillingPostalCode     string   `json:"billing_postal_code"`
	BillingAlertEmail     string   `json:"billing_alert_email"`
	BillingAlertSMS       string   `json:"billing_alert_sms"`
	UptimeAlertEmail      string   `json:"uptime_alert_email"`
	UptimeAlertSMS        string   `json:"uptime_alert_sms"`
	Address               string   `json:"address"`
	Balance               Float    `json:"balance"`
	AutoRechargeReserve   Float    `json:"auto_recharge_reserve"`
	Tags                  []string `json:"tags"`
}

// AudioRecording is a recorded call stored by the platform.
type AudioRecording struct {
	ID         int64         `json:"id"`
	InsertTime Timestamp     `json:"insert_time"`
	StartTime  Timestamp     `json:"start_time"`
	Cost       Float         `json:"cost"`
	CallID     string        `json:"callid"`
	AudioFile  string        `json:"audio_file"`
	TenantID   int64         `json:"tenant_id"`
	Org        *Organization `json:"org"`
	SrcRoute   string        `json:"src_route"`
	DstRoute   string        `json:"dst_route"`
	Size       int64         `json:"size"`
	Duration   Float         `json:"duration"`
}

// AudioTranscription is a transcribed call recording.
type AudioTranscription struct {
	ID                int64         `json:"id"`
	StartTime         Timestamp     `json:"start_time"`
	InsertTime        Timestamp     `json:"insert_time"`
	Cost              Float         `json:"cost"`
	CallID            string        `json:"callid"`
	TranscriptionFile string        `json:"transcription_file"`
	TenantID          int64         `json:"tenant_id"`
	Org               *Organization `json:"org"`
	SrcRoute          string        `json:"src_route"`
	DstRoute          string        `json:"dst_route"`
	Duration          Float         `json:"duration"`
}

// StatementTransaction is one manual transaction line on a statement.
type StatementTransaction struct {
	Amount          Float     `json:"amount"`
	Note            string    `json:"note"`
	TransactionDate Timestamp `json:"transaction_date"`
	TransactionType string    `json:"transaction_type"`
	Subtotal        Float     `json:"subtotal"`
	Tax             Float     `json:"tax"`
}

// StatementTax is one tax line on a statement.
type StatementTax struct {
	TaxAuth     string `json:"tax_auth"`
	Description string `json:"description"`
	TaxAmount   Float  `json:"tax_amount"`
	IsExempt    bool   `json:"is_exempt"`
}

// PhoneNumberTotals summarizes the number inventory on a statement.
type PhoneNumberTotals struct {
	Local          Int `json:"local"`
	TollFree       Int `json:"tollfree"`
	Vanity         Int `json:"vanity"`
	MessageEnabled Int `json:"message_enabled"`
	E911Enabled    Int `json:"e911_enabled"`
	CNAMEnabled    Int `json:"cnam_enabled"`
}

// StatementTotals is the usage and cost breakdown of one billing period.
type StatementTotals struct {
	OutboundConversationalMinutes        Float `json:"outbound_conversational_minutes"`
	OutboundHighcostMinutes              Float `json:"outbound_highcost_minutes"`
	OutboundHighcostCost                 Float `json:"outbound_highcost_cost"`
	OutboundConversationalCost           Float `json:"outbound_conversational_cost"`
	DialerTrafficMinutes                 Float `json:"dialer_traffic_minutes"`
	DialerTrafficCost                    Float `json:"dialer_traffic_cost"`
	OutboundLocalPresenceTrafficMinutes  Float `json:"outbound_local_presence_traffic_minutes"`
	OutboundLocalPresenceTrafficCost     Float `json:"outbound_local_presence_traffic_cost"`
	OutboundPreTax                       Float `json:"outbound_pre_tax"`
	OutboundSubtotal                     Float `json:"outbound_subtotal"`
	OutboundTotal                        Float `json:"outbound_total"`
	OutboundMinutes                      Float `json:"outbound_minutes"`
	OutboundCallsCount                   Int   `json:"outbound_calls_count"`
	InboundConversationalMinutes         Float `json:"inbound_conversational_minutes"`
	InboundConversationalCost            Float `json:"inbound_conversational_cost"`
	CNAMCount                            Int   `json:"cnam_count"`
	SpamblockCount                       Int   `json:"spamblock_count"`
	CNAMCost                             Float `json:"cnam_cost"`
	SpamblockCost                        Float `json:"spamblock_cost"`
	InboundLocalPresenceTrafficMinutes   Float `json:"inbound_local_presence_traffic_minutes"`
	InboundLocalPresenceTrafficCost      Float `json:"inbound_local_presence_traffic_cost"`
	InboundTollFreeTrafficMinutes        Float `json:"inbound_toll_free_traffic_minutes"`
	InboundTollFreeTrafficCost           Float `json:"inbound_toll_free_traffic_cost"`
	InboundPreTax                        Float `json:"inbound_pre_tax"`
	InboundSubtotal                      Float `json:"inbound_subtotal"`
	InboundTotal                         Float `json:"inbound_total"`
	InboundMinutes                       Float `json:"inbound_minutes"`
	InboundCallsCount                    Int   `json:"inbound_calls_count"`
	TranscriptionCost                    Float `json:"transcription_cost"`
	TranscriptionCount                   Int   `json:"transcription_count"`
	AudioRecordingCost                   Float `json:"audio_recording_cost"`
	AudioRecordingCount                  Int   `json:"audio_recording_count"`
	AudioTranscriptionCost               Float `json:"audio_transcription_cost"`
	AudioTranscriptionCount              Int   `json:"audio_transcription_count"`
	VFaxCost                             Float `json:"vfax_cost"`
	VFaxCount                            Int   `json:"vfax_count"`
	ReceivedSMSCost                      Float `json:"received_sms_cost"`
	ReceivedSMSCount                     Int   `json:"received_sms_count"`
	SentSMSCost                          Float `json:"sent_sms_cost"`
	SentSMSCount                         Int   `json:"sent_sms_count"`
	ReceivedMMSCost                      Float `json:"received_mms_cost"`
	ReceivedMMSCount                     Int   `json:"received_mms_count"`
	SentMMSCost                          Float `json:"sent_mms_cost"`
	SentMMSCount                         Int   `json:"sent_mms_count"`
	TransactionsCost                     Float `json:"transactions_cost"`
	TransactionsNonTaxCost               Float `json:"transactions_non_tax_cost"`
	TransactionsTotalCost                Float `json:"transactions_total_cost"`
	PhoneNumbers                         *PhoneNumberTotals `json:"phone_numbers"`
	TotalSMSMMSCost                      Float `json:"total_sms_mms_cost"`
	TotalFeaturesCost                    Float `json:"total_features_cost"`
	Subtotal                             Float `json:"subtotal"`
	TotalTaxes                           Float `json:"total_taxes"`
	TotalCost                            Float `json:"total_cost"`
}

// BillingStatement is the full organization statement for one period:
// totals plus the independently-shaped tax and transaction lists.
type BillingStatement struct {
	Statement    *StatementTotals       `json:"statement"`
	Taxes        []StatementTax         `json:"taxes"`
	Transactions []StatementTransaction `json:"transactions"`
}

// EndpointGroup identifies the group a SIP endpoint belongs to.
type EndpointGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Endpoint is a SIP endpoint registered with the platform.
type Endpoint struct {
	ID            int64          `json:"id"`
	IP            string         `json:"ip"`
	EndpointID    string         `json:"endpoint_id"`
	Port          int            `json:"port"`
	Transport     string         `json:"transport"`
	Flags         int            `json:"flags"`
	Priority      int            `json:"priority"`
	Description   string         `json:"description"`
	EndpointGroup *EndpointGroup `json:"endpoint_group"`
	Org           *Organization  `json:"org"`
}

// E911Address is the emergency address registered for a phone number.
type E911Address struct {
	ID         int64  `json:"id"`
	CallerName string `json:"caller_name"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	Community  string `json:"community"`
	State      string `json:"state"`
	PostalCode Int    `json:"postal_code"`
}

// Tenant is a sub-account under the organization.
type Tenant struct {
	ID         int64  `json:"id"`
	TenantCode string `json:"tenant_code"`
	Name       string `json:"name"`
}

// Origination describes the origination settings on a phone number.
type Origination struct {
	ID  int64 `json:"id"`
	T38 *bool `json:"t38"`
}

// PhoneNumber is one number in the organization's inventory.
type PhoneNumber struct {
	ID                     int64                 `json:"id"`
	Number                 Int                   `json:"number"`
	Forward                Int                   `json:"forward"`
	Failover               Int                   `json:"failover"`
	Category               string                `json:"category"`
	Note                   string                `json:"note"`
	EndpointGroup          *EndpointGroup        `json:"endpoint_group"`
	Tenant                 *Tenant               `json:"tenant"`
	Origination            *Origination          `json:"origination"`
	E911Address            *E911Address          `json:"e911address"`
	ALG                    int                   `json:"alg"`
	Vanity                 bool                  `json:"vanity"`
	Exotic                 bool                  `json:"exotic"`
	TNFormat               int                   `json:"tn_format"`
	FailureStrategy        int                   `json:"failure_strategy"`
	E911Enabled            bool                  `json:"e911_enabled"`
	OffNetwork             bool                  `json:"off_network"`
	CNAMEnabled            bool                  `json:"cnam_enabled"`
	SpamblockEnabled       bool                  `json:"spamblock_enabled"`
	SpamblockPassthru      bool                  `json:"spamblock_passthru"`
	SpamblockCNAMPrepend   bool                  `json:"spamblock_cnam_prepend"`
	SpamblockRiskScore     int                   `json:"spamblock_risk_score"`
	SpamblockAllowUnknown  bool                  `json:"spamblock_allow_unknown"`
	RecordCalls            int                   `json:"record_calls"`
	SpamblockBot           int                   `json:"spamblock_bot"`
	SpamblockBotContact    string                `json:"spamblock_bot_contact_email"`
	VFaxEnabled            bool                  `json:"vfax_enabled"`
	VFaxExternalEnabled    bool                  `json:"vfax_external_enabled"`
	VFaxRoutingEnabled     bool                  `json:"vfax_routing_enabled"`
	ConferenceBridge       bool                  `json:"conference_bridge_enabled"`
	BlockNoCID             bool                  `json:"block_nocid"`
	MessageEnabled         bool                  `json:"message_enabled"`
	TierEnabled            int                   `json:"tier_enabled"`
	IntlBalance            Float                 `json:"intl_balance"`
	IntlReserve            Float                 `json:"intl_reserve"`
	LifecycleState         string                `json:"lifecycle_state"`
	PortinID               int64                 `json:"portin_id"`
	Org                    *ExtendedOrganization `json:"org"`
}

// OffNetworkPhoneNumber is a number routed to Skyetel services while homed
// on another carrier.
type OffNetworkPhoneNumber struct {
	ID     int64 `json:"id"`
	Number Int   `json:"number"`
}

// RateCenter is a purchasable rate center.
type RateCenter struct {
	RateCenter string `json:"rateCenter"`
	Market     string `json:"market"`
	LATA       int    `json:"lata"`
}

// AvailablePhoneNumber is one result from the availability search.
type AvailablePhoneNumber struct {
	Number     Int    `json:"number"`
	RateCenter string `json:"rate_center"`
	State      string `json:"state"`
	MOU        Int    `json:"mou"`
}

// NumberPurchase is one line of an order confirmation.
type NumberPurchase struct {
	Number Int `json:"number"`
	MOU    Int `json:"mou"`
}

// SMSMessage is one SMS receipt.
type SMSMessage struct {
	ID                int64                 `json:"id"`
	Org               *ExtendedOrganization `json:"org"`
	Time              Timestamp             `json:"time"`
	FlagAttachment    bool                  `json:"flag_attachment"`
	FlagDelivered     bool                  `json:"flag_delivered"`
	FromPhoneNumber   string                `json:"from_phonenumber"`
	ToPhoneNumber     string                `json:"to_phonenumber"`
	FwdToPhoneNumber  string                `json:"fwd_to_phonenumber"`
	FwdToEmail        string                `json:"fwd_to_email"`
	SrcTenantID       int64                 `json:"src_tenant_id"`
	DstTenantID       int64                 `json:"dst_tenant_id"`
	Cost              Float                 `json:"cost"`
	DeliveryState     string                `json:"delivery_state"`
}

// EndpointHealth is the monitored health of one SIP endpoint, with latency
// per region.
type EndpointHealth struct {
	IP               string `json:"ip"`
	Transport        string `json:"transport"`
	Description      string `json:"description"`
	Alert            bool   `json:"alert"`
	Monitor          bool   `json:"monitor"`
	EnhancedMonitor  bool   `json:"enhanced_monitor"`
	ChannelThreshold int    `json:"channel_threshold"`
	OrgName          string `json:"org_name"`
	Region1          int    `json:"region1"`
	Region2          int    `json:"region2"`
	Region3          int    `json:"region3"`
	Region4          int    `json:"region4"`
}

// TrafficCount is one day of call traffic totals.
type TrafficCount struct {
	Date             Timestamp `json:"date"`
	InboundMinutes   Int       `json:"inbound_minutes"`
	OutboundMinutes  Int       `json:"outbound_minutes"`
	InboundCount     Int       `json:"inbound_count"`
	OutboundCount    Int       `json:"outbound_count"`
	TotalBillingCost Float     `json:"total_billing_cost"`
}

// ChannelCount is a concurrent-channel sample.
type ChannelCount struct {
	Date         Timestamp `json:"date"`
	ChannelCount Int       `json:"channel_count"`
}

// CallCount is an hourly call volume sample. Its date field carries only
// the time-of-day component.
type CallCount struct {
	Date      Timestamp `json:"date"`
	CallCount Int       `json:"call_count"`
}

// TenantStatement is one tenant's share of a billing period.
type TenantStatement struct {
	TenantID   int64   `json:"tenant_id"`
	Tenant     *Tenant `json:"tenant"`
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Subtotal   Float   `json:"subtotal"`
	TotalTaxes Float   `json:"total_taxes"`
	TotalCost  Float   `json:"total_cost"`
}

// TenantInvoice is one invoice issued to a tenant.
type TenantInvoice struct {
	ID          int64     `json:"id"`
	TenantID    int64     `json:"tenant_id"`
	InvoiceDate Timestamp `json:"invoice_date"`
	Description string    `json:"description"`
	Amount      Float     `json:"amount"`
	Balance     Float     `json:"balance"`
}

// BillingProduct is a product that can be billed to tenants.
type BillingProduct struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Float  `json:"price"`
	Recurring   bool   `json:"recurring"`
}

// TenantFeatures holds the feature toggles of one tenant.
type TenantFeatures struct {
	TenantID             int64 `json:"tenant_id"`
	E911Enabled          bool  `json:"e911_enabled"`
	CNAMEnabled          bool  `json:"cnam_enabled"`
	MessageEnabled       bool  `json:"message_enabled"`
	VFaxEnabled          bool  `json:"vfax_enabled"`
	RecordCalls          bool  `json:"record_calls"`
	TranscriptionEnabled bool  `json:"transcription_enabled"`
}

// TenantMonthlyStats is one month of usage for a tenant.
type TenantMonthlyStats struct {
	Year            int   `json:"year"`
	Month           int   `json:"month"`
	InboundMinutes  Float `json:"inbound_minutes"`
	OutboundMinutes Float `json:"outbound_minutes"`
	InboundCalls    Int   `json:"inbound_calls"`
	OutboundCalls   Int   `json:"outbound_calls"`
	TotalCost       Float `json:"total_cost"`
}

// TenantCurrentStats is the live usage snapshot of a tenant.
type TenantCurrentStats struct {
	ActiveChannels Int   `json:"active_channels"`
	CallsToday     Int   `json:"calls_today"`
	MinutesToday   Float `json:"minutes_today"`
	CostToday      Float `json:"cost_today"`
}

// User is an organization or tenant user account.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TenantID  int64  `json:"tenant_id"`
}

// Fax is one virtual fax stored by the platform.
type Fax struct {
	ID         int64         `json:"id"`
	InsertTime Timestamp     `json:"insert_time"`
	CallID     string        `json:"callid"`
	FaxFile    string        `json:"fax_file"`
	Pages      Int           `json:"pages"`
	Cost       Float         `json:"cost"`
	TenantID   int64         `json:"tenant_id"`
	Org        *Organization `json:"org"`
	SrcRoute   string        `json:"src_route"`
	DstRoute   string        `json:"dst_route"`
}
