package skyetel

import (
	"net/url"
	"strconv"
)

// NumberSearchFilter describes an availability search for purchasable
// phone numbers. The zero value searches for one standard local number
// anywhere.
//
// The API documents several mutual-exclusivity rules across the optional
// dimensions. Validate applies them client-side, so an invalid combination
// never reaches the wire.
type NumberSearchFilter struct {
	// States limits the search to the given two-letter state codes.
	States []string

	// NPAs and NXXs limit the search to area codes and exchanges.
	NPAs []int
	NXXs []int

	// Category selects the number class. The API default is 1 (local).
	Category int

	// Quantity is the number of results wanted. The API default is 1.
	Quantity int

	Consecutive bool
	Vanity      bool

	// TNMask and TNWildcard match digit patterns; 'x' in a mask is a
	// wildcard digit, '*' in a wildcard matches any run of digits.
	TNMask     string
	TNWildcard string

	LATA       int
	RateCenter string
	Sequential bool
	Province   string
	City       string
	PostalCode int
	Radius     int

	// LocalCallingArea expands the search to the local calling area of the
	// location given by the other fields.
	LocalCallingArea bool
}

// Validate checks the filter against the API's parameter rules:
//
//  1. rateCenter, city, and postalCode are mutually exclusive.
//  2. city requires at least one state.
//  3. radius requires city+province or a postal code.
//  4. radius, localCallingArea, and sequential are mutually exclusive.
//  5. localCallingArea requires a tnMask or tnWildcard, a rate center,
//     city+province, or a postal code.
func (f *NumberSearchFilter) Validate() error {
	locations := 0
	if f.RateCenter != "" {
		locations++
	}
	if f.City != "" {
		locations++
	}
	if f.PostalCode != 0 {
		locations++
	}
	if locations > 1 {
		return &ValidationError{Reason: "rate center, city, and postal code are mutually exclusive"}
	}

	if f.City != "" && len(f.States) == 0 {
		return &ValidationError{Reason: "if city is specified, the state must be specified"}
	}

	if f.Radius != 0 && !(f.City != "" && f.Province != "") && f.PostalCode == 0 {
		return &ValidationError{Reason: "radius is only valid if city and province or postal code are specified"}
	}

	modes := 0
	if f.Radius != 0 {
		modes++
	}
	if f.LocalCallingArea {
		modes++
	}
	if f.Sequential {
		modes++
	}
	if modes > 1 {
		return &ValidationError{Reason: "radius, local calling area, and sequential are mutually exclusive"}
	}

	if f.LocalCallingArea {
		anchored := f.TNMask != "" || f.TNWildcard != "" || f.RateCenter != "" ||
			(f.City != "" && f.Province != "") || f.PostalCode != 0
		if !anchored {
			return &ValidationError{Reason: "local calling area requires a tnMask or tnWildcard, a rate center, city and province, or a postal code"}
		}
	}

	return nil
}

// Values validates the filter and serializes it. Only set fields are
// emitted; array fields become one repeated key per element in order, and
// booleans serialize as lowercase tokens.
func (f *NumberSearchFilter) Values() (url.Values, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	v := url.Values{}
	for _, state := range f.States {
		v.Add("filter[states][]", state)
	}
	for _, npa := range f.NPAs {
		v.Add("filter[npas][]", strconv.Itoa(npa))
	}
	for _, nxx := range f.NXXs {
		v.Add("filter[nxxs][]", strconv.Itoa(nxx))
	}

	category := f.Category
	if category == 0 {
		category = 1
	}
	v.Set("filter[category]", strconv.Itoa(category))

	quantity := f.Quantity
	if quantity == 0 {
		quantity = 1
	}
	v.Set("filter[quantity]", strconv.Itoa(quantity))

	if f.Consecutive {
		v.Set("filter[consecutive]", "true")
	}
	if f.Vanity {
		v.Set("filter[vanity]", "true")
	}
	if f.TNMask != "" {
		v.Set("filter[tnMask]", f.TNMask)
	}
	if f.TNWildcard != "" {
		v.Set("filter[tnWildcard]", f.TNWildcard)
	}
	if f.LATA != 0 {
		v.Set("filter[lata]", strconv.Itoa(f.LATA))
	}
	if f.RateCenter != "" {
		v.Set("filter[rateCenter]", f.RateCenter)
	}
	if f.Sequential {
		v.Set("filter[sequential]", "true")
	}
	if f.Province != "" {
		v.Set("filter[province]", f.Province)
	}
	if f.City != "" {
		v.Set("filter[city]", f.City)
	}
	if f.PostalCode != 0 {
		v.Set("filter[postalCode]", strconv.Itoa(f.PostalCode))
	}
	if f.Radius != 0 {
		v.Set("filter[radius]", strconv.Itoa(f.Radius))
	}
	if f.LocalCallingArea {
		v.Set("filter[localCallingArea]", "true")
	}

	return v, nil
}
