package skyetel

import (
	"context"
)

// GetAudioRecordings retrieves a page of call recordings.
func (c *Client) GetAudioRecordings(ctx context.Context, opts ListOptions) ([]AudioRecording, error) {
	body, err := c.get(ctx, c.endpoint(pathAudioRecordings)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[AudioRecording](body, "audio recording", "id")
}

// GetAudioRecordingURL returns a signed download URL for a recording. The
// URL is short-lived and can be fetched without credentials.
func (c *Client) GetAudioRecordingURL(ctx context.Context, recordingID int64) (string, error) {
	body, err := c.get(ctx, c.endpoint(pathAudioRecordingDownload, recordingID))
	if err != nil {
		return "", err
	}

	link, err := decodeObject[downloadLink](body, "audio recording download", "download_url")
	if err != nil {
		return "", err
	}
	return link.DownloadURL, nil
}

// downloadLink is the envelope returned by the download endpoints.
type downloadLink struct {
	DownloadURL string `json:"download_url"`
}
