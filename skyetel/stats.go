package skyetel

import (
	"context"
)

// GetEndpointHealth retrieves monitored health for all SIP endpoints.
func (c *Client) GetEndpointHealth(ctx context.Context) ([]EndpointHealth, error) {
	body, err := c.get(ctx, c.endpoint(pathEndpointHealth))
	if err != nil {
		return nil, err
	}
	return decodeList[EndpointHealth](body, "endpoint health", "ip")
}

// GetTrafficCounts retrieves daily traffic totals for the organization.
func (c *Client) GetTrafficCounts(ctx context.Context) ([]TrafficCount, error) {
	body, err := c.get(ctx, c.endpoint(pathTrafficCounts))
	if err != nil {
		return nil, err
	}
	return decodeList[TrafficCount](body, "traffic count", "date")
}

// GetChannelCounts retrieves concurrent-channel samples for the
// organization.
func (c *Client) GetChannelCounts(ctx context.Context) ([]ChannelCount, error) {
	body, err := c.get(ctx, c.endpoint(pathChannelCounts))
	if err != nil {
		return nil, err
	}
	return decodeList[ChannelCount](body, "channel count", "date")
}

// GetMostActiveHour retrieves hourly call volumes. The date field on each
// sample carries only a time of day.
func (c *Client) GetMostActiveHour(ctx context.Context) ([]CallCount, error) {
	body, err := c.get(ctx, c.endpoint(pathMostActiveHour))
	if err != nil {
		return nil, err
	}
	return decodeList[CallCount](body, "call count", "date")
}

// GetLocalPhoneNumberCount returns how many local numbers the organization
// holds.
func (c *Client) GetLocalPhoneNumberCount(ctx context.Context) (int64, error) {
	body, err := c.get(ctx, c.endpoint(pathLocalNumberCount))
	if err != nil {
		return 0, err
	}

	count, err := decodeObject[countEnvelope](body, "phone number count", "count")
	if err != nil {
		return 0, err
	}
	return count.Count.Int64(), nil
}

// GetTollFreePhoneNumberCount returns how many toll-free numbers the
// organization holds.
func (c *Client) GetTollFreePhoneNumberCount(ctx context.Context) (int64, error) {
	body, err := c.get(ctx, c.endpoint(pathTollFreeNumberCount))
	if err != nil {
		return 0, err
	}

	count, err := decodeObject[countEnvelope](body, "phone number count", "count")
	if err != nil {
		return 0, err
	}
	return count.Count.Int64(), nil
}

type countEnvelope struct {
	Count Int `json:"count"`
}
