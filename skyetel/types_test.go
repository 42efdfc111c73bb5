package skyetel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	t.Run("full timestamp", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2021-03-15T10:30:00+00:00"`), &ts))
		expected := time.Date(2021, 3, 15, 10, 30, 0, 0, time.UTC)
		assert.True(t, ts.Equal(expected))
		assert.Equal(t, time.UTC, ts.Location())
	})

	t.Run("bare time of day", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"10:30:00+00:00"`), &ts))
		assert.Equal(t, 10, ts.Hour())
		assert.Equal(t, 30, ts.Minute())
		assert.Equal(t, 0, ts.Second())
	})

	t.Run("empty string is the zero time", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
		assert.True(t, ts.IsZero())
	})

	t.Run("garbage fails", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &ts))
	})

	t.Run("marshal round trip", func(t *testing.T) {
		ts := Timestamp{time.Date(2021, 3, 15, 10, 30, 0, 0, time.UTC)}
		out, err := json.Marshal(ts)
		require.NoError(t, err)
		assert.Equal(t, `"2021-03-15T10:30:00+00:00"`, string(out))
	})
}

func TestIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Int
		wantErr bool
	}{
		{name: "quoted string", payload: `"15125550100"`, want: 15125550100},
		{name: "plain number", payload: `42`, want: 42},
		{name: "null", payload: `null`, want: 0},
		{name: "empty string", payload: `""`, want: 0},
		{name: "negative", payload: `"-7"`, want: -7},
		{name: "not a number", payload: `"abc"`, wantErr: true},
		{name: "boolean", payload: `true`, wantErr: true},
		{name: "array", payload: `[1]`, wantErr: true},
		{name: "fractional", payload: `12.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Int
			err := json.Unmarshal([]byte(tt.payload), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Float
		wantErr bool
	}{
		{name: "quoted string", payload: `"12.34"`, want: 12.34},
		{name: "plain number", payload: `0.5`, want: 0.5},
		{name: "integer string", payload: `"3"`, want: 3},
		{name: "null", payload: `null`, want: 0},
		{name: "not a number", payload: `"free"`, wantErr: true},
		{name: "boolean", payload: `false`, wantErr: true},
		{name: "object", payload: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Float
			err := json.Unmarshal([]byte(tt.payload), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}
