package skyetel

import (
	"context"
)

// GetFaxes retrieves a page of virtual faxes.
func (c *Client) GetFaxes(ctx context.Context, opts ListOptions) ([]Fax, error) {
	body, err := c.get(ctx, c.endpoint(pathFaxes)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[Fax](body, "fax", "id")
}

// GetFaxDownloadURL returns a signed download URL for a fax.
func (c *Client) GetFaxDownloadURL(ctx context.Context, faxID int64) (string, error) {
	body, err := c.get(ctx, c.endpoint(pathFaxDownload, faxID))
	if err != nil {
		return "", err
	}

	link, err := decodeObject[downloadLink](body, "fax download", "download_url")
	if err != nil {
		return "", err
	}
	return link.DownloadURL, nil
}

// DownloadFax fetches the fax content itself: one call for the signed URL,
// one unauthenticated fetch of the content.
func (c *Client) DownloadFax(ctx context.Context, faxID int64) ([]byte, error) {
	downloadURL, err := c.GetFaxDownloadURL(ctx, faxID)
	if err != nil {
		return nil, err
	}
	return c.download(ctx, downloadURL)
}
