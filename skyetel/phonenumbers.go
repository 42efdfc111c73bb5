package skyetel

import (
	"context"
	"net/url"
)

// GetPhoneNumbers retrieves a page of the organization's phone numbers.
func (c *Client) GetPhoneNumbers(ctx context.Context, opts ListOptions) ([]PhoneNumber, error) {
	body, err := c.get(ctx, c.endpoint(pathPhoneNumbers)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[PhoneNumber](body, "phone number", "id", "number")
}

// GetPhoneNumber retrieves one phone number by ID.
func (c *Client) GetPhoneNumber(ctx context.Context, numberID int64) (*PhoneNumber, error) {
	body, err := c.get(ctx, c.endpoint(pathPhoneNumber, numberID))
	if err != nil {
		return nil, err
	}
	return decodeObject[PhoneNumber](body, "phone number", "id", "number")
}

// UpdatePhoneNumber applies a sparse update to a phone number. Only fields
// set on the update are sent, so clearing a flag and leaving it untouched
// stay distinct.
func (c *Client) UpdatePhoneNumber(ctx context.Context, numberID int64, upd PhoneNumberUpdate) (*PhoneNumber, error) {
	form, err := upd.values()
	if err != nil {
		return nil, err
	}

	body, err := c.patchForm(ctx, c.endpoint(pathPhoneNumber, numberID), form)
	if err != nil {
		return nil, err
	}
	return decodeObject[PhoneNumber](body, "phone number", "id", "number")
}

// GetOffNetworkPhoneNumbers retrieves a page of off-network numbers.
func (c *Client) GetOffNetworkPhoneNumbers(ctx context.Context, opts ListOptions) ([]OffNetworkPhoneNumber, error) {
	body, err := c.get(ctx, c.endpoint(pathPhoneNumbersOffNetwork)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[OffNetworkPhoneNumber](body, "off-network phone number", "id", "number")
}

// GetPhoneNumberE911 retrieves the emergency address registered for a
// phone number.
func (c *Client) GetPhoneNumberE911(ctx context.Context, numberID int64) (*E911Address, error) {
	body, err := c.get(ctx, c.endpoint(pathPhoneNumberE911, numberID))
	if err != nil {
		return nil, err
	}
	return decodeObject[E911Address](body, "e911 address", "id")
}

// UpdatePhoneNumberE911 updates the emergency address registered for a
// phone number. This endpoint takes a JSON body.
func (c *Client) UpdatePhoneNumberE911(ctx context.Context, numberID int64, req E911AddressRequest) (*E911Address, error) {
	body, err := c.patchJSON(ctx, c.endpoint(pathPhoneNumberE911, numberID), req)
	if err != nil {
		return nil, err
	}
	return decodeObject[E911Address](body, "e911 address", "id")
}

// SearchAvailablePhoneNumbers searches the purchasable inventory. The
// filter is validated before any network call; an invalid combination of
// search dimensions returns a ValidationError.
func (c *Client) SearchAvailablePhoneNumbers(ctx context.Context, f *NumberSearchFilter) ([]AvailablePhoneNumber, error) {
	if f == nil {
		f = &NumberSearchFilter{}
	}
	values, err := f.Values()
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, c.endpoint(pathPhoneNumberSearch)+"?"+values.Encode())
	if err != nil {
		return nil, err
	}
	return decodeList[AvailablePhoneNumber](body, "available phone number", "number")
}

// GetRateCenters lists purchasable rate centers, optionally limited to one
// state.
func (c *Client) GetRateCenters(ctx context.Context, state string) ([]RateCenter, error) {
	requestURL := c.endpoint(pathRateCenters)
	if state != "" {
		v := url.Values{}
		v.Set("filter[state]", state)
		requestURL += "?" + v.Encode()
	}

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	return decodeList[RateCenter](body, "rate center", "rateCenter")
}

// OrderPhoneNumbers purchases the given numbers. The order endpoint takes
// a JSON body.
func (c *Client) OrderPhoneNumbers(ctx context.Context, numbers []string) ([]NumberPurchase, error) {
	if len(numbers) == 0 {
		return nil, &ValidationError{Reason: "at least one number must be ordered"}
	}

	payload := struct {
		Numbers []string `json:"numbers"`
	}{Numbers: numbers}

	body, err := c.postJSON(ctx, c.endpoint(pathPhoneNumberOrder), payload)
	if err != nil {
		return nil, err
	}
	return decodeList[NumberPurchase](body, "number purchase", "number")
}
