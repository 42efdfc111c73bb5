package skyetel

import (
	"context"
)

// GetSMSReceipts retrieves a page of SMS receipts.
func (c *Client) GetSMSReceipts(ctx context.Context, opts ListOptions) ([]SMSMessage, error) {
	body, err := c.get(ctx, c.endpoint(pathSMSReceipts)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[SMSMessage](body, "sms receipt", "id")
}
