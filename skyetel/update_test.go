package skyetel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneNumberUpdateValues(t *testing.T) {
	t.Run("zero value serializes nothing", func(t *testing.T) {
		v, err := PhoneNumberUpdate{}.values()
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("set to false is distinct from unset", func(t *testing.T) {
		v, err := PhoneNumberUpdate{CNAMEnabled: Ptr(false)}.values()
		require.NoError(t, err)
		assert.Equal(t, "false", v.Get("cnam_enabled"))
		_, touched := v["e911_enabled"]
		assert.False(t, touched)
	})

	t.Run("set to zero is emitted", func(t *testing.T) {
		v, err := PhoneNumberUpdate{SpamblockRiskScore: Ptr(0), IntlReserve: Ptr(0.0)}.values()
		require.NoError(t, err)
		assert.Equal(t, "0", v.Get("spamblock_risk_score"))
		assert.Equal(t, "0", v.Get("intl_reserve"))
	})

	t.Run("empty string is emitted when set", func(t *testing.T) {
		v, err := PhoneNumberUpdate{Note: Ptr("")}.values()
		require.NoError(t, err)
		_, touched := v["note"]
		assert.True(t, touched, "clearing a note must reach the wire")
	})
}

func TestEndpointCreateValues(t *testing.T) {
	t.Run("required fields always emitted", func(t *testing.T) {
		v, err := EndpointCreate{
			IP:                "10.0.0.1",
			Port:              5060,
			Transport:         "UDP",
			Priority:          1,
			Description:       "pbx",
			EndpointGroupID:   3,
			EndpointGroupName: "main",
		}.values()
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.1", v.Get("ip"))
		assert.Equal(t, "5060", v.Get("port"))
		assert.Equal(t, "main", v.Get("endpoint_group_name"))
		_, touched := v["endpoint_id"]
		assert.False(t, touched, "optional endpoint_id omitted when unset")
	})

	t.Run("optional endpoint id emitted when set", func(t *testing.T) {
		v, err := EndpointCreate{IP: "10.0.0.1", EndpointID: Ptr("trunk-1")}.values()
		require.NoError(t, err)
		assert.Equal(t, "trunk-1", v.Get("endpoint_id"))
	})
}
