package skyetel

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOptionsValues(t *testing.T) {
	t.Run("zero value uses default pagination", func(t *testing.T) {
		v := ListOptions{}.values()
		assert.Equal(t, "10", v.Get("page[limit]"))
		assert.Equal(t, "0", v.Get("page[offset]"))
		assert.Len(t, v, 2)
	})

	t.Run("negative offset clamps to zero", func(t *testing.T) {
		v := ListOptions{Offset: -3}.values()
		assert.Equal(t, "0", v.Get("page[offset]"))
	})

	t.Run("query and search", func(t *testing.T) {
		v := ListOptions{
			Query: "austin",
			Search: map[string]string{
				"tenant_id": "4",
				"src_route": "inbound",
			},
		}.values()
		assert.Equal(t, "austin", v.Get("filter[query]"))
		assert.Equal(t, "4", v.Get("filter[tenant_id]"))
		assert.Equal(t, "inbound", v.Get("filter[src_route]"))
	})

	t.Run("sort joins with commas and keeps descending markers", func(t *testing.T) {
		v := ListOptions{Sort: []string{"-start_time", "id"}}.values()
		assert.Equal(t, "-start_time,id", v.Get("sort"))
	})
}

func TestListOptionsEncode(t *testing.T) {
	encoded := ListOptions{Limit: 25, Offset: 50, Query: "a b"}.encode()
	require.True(t, strings.HasPrefix(encoded, "?"))

	parsed, err := url.ParseQuery(strings.TrimPrefix(encoded, "?"))
	require.NoError(t, err)
	assert.Equal(t, "25", parsed.Get("page[limit]"))
	assert.Equal(t, "50", parsed.Get("page[offset]"))
	assert.Equal(t, "a b", parsed.Get("filter[query]"), "values must survive URL encoding")
}
