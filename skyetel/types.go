package skyetel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// The API transmits timestamps as fixed-offset strings, always at UTC.
// A few stats endpoints return only the time-of-day component.
const (
	timestampLayout = "2006-01-02T15:04:05-07:00"
	timeOfDayLayout = "15:04:05-07:00"
)

// Timestamp wraps time.Time to decode both timestamp forms used by the API.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", string(data), err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(timeOfDayLayout, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q", s)
		}
	}

	t.Time = parsed.UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(timestampLayout))
}

// Int is an integer field the API sometimes transmits as a JSON string
// (phone numbers, account numbers, support PINs). It always marshals back
// as a plain number.
type Int int64

func (n *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value %s: %w", string(data), err)
		}
		*n = Int(v)
		return nil
	}

	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid integer value %s: %w", string(data), err)
	}
	*n = Int(v)
	return nil
}

// Int64 returns the value as a plain int64.
func (n Int) Int64() int64 {
	return int64(n)
}

// Float is a floating-point field the API sometimes transmits as a JSON
// string (balances, costs, monetary amounts).
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid float value %s: %w", string(data), err)
		}
		*f = Float(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid float value %s: %w", string(data), err)
	}
	*f = Float(v)
	return nil
}

// Float64 returns the value as a plain float64.
func (f Float) Float64() float64 {
	return float64(f)
}

// Ptr returns a pointer to v. It keeps sparse update literals short:
//
//	skyetel.PhoneNumberUpdate{CNAMEnabled: skyetel.Ptr(false)}
func Ptr[T any](v T) *T {
	return &v
}
