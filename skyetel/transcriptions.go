package skyetel

import (
	"context"
)

// GetAudioTranscriptions retrieves a page of call transcriptions.
func (c *Client) GetAudioTranscriptions(ctx context.Context, opts ListOptions) ([]AudioTranscription, error) {
	body, err := c.get(ctx, c.endpoint(pathAudioTranscriptions)+opts.encode())
	if err != nil {
		return nil, err
	}
	return decodeList[AudioTranscription](body, "audio transcription", "id")
}

// GetAudioTranscriptionURL returns a signed download URL for a
// transcription.
func (c *Client) GetAudioTranscriptionURL(ctx context.Context, transcriptionID int64) (string, error) {
	body, err := c.get(ctx, c.endpoint(pathAudioTranscriptionDownload, transcriptionID))
	if err != nil {
		return "", err
	}

	link, err := decodeObject[downloadLink](body, "audio transcription download", "download_url")
	if err != nil {
		return "", err
	}
	return link.DownloadURL, nil
}

// GetAudioTranscriptionText fetches the transcript content itself. This is
// the one two-round-trip operation besides fax download: the first call
// obtains a signed URL, the second fetches its content unauthenticated.
func (c *Client) GetAudioTranscriptionText(ctx context.Context, transcriptionID int64) (string, error) {
	downloadURL, err := c.GetAudioTranscriptionURL(ctx, transcriptionID)
	if err != nil {
		return "", err
	}

	content, err := c.download(ctx, downloadURL)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
