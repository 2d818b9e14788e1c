package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/robohr/ai-service/internal"
)

var _ Provider = &RemoteProvider{}

const (
	remoteRetryMax = 3
	remoteTimeout  = 10 * time.Second
)

// RemoteProvider delegates translation to an external HTTP service, for
// example a hosted translation API behind an internal proxy.
type RemoteProvider struct {
	client *http.Client
	url    string
}

func NewRemoteProvider(url string) (*RemoteProvider, error) {
	if url == "" {
		return nil, fmt.Errorf("translation.remote_url must be set for the remote provider")
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = remoteRetryMax
	retryClient.HTTPClient.Timeout = remoteTimeout
	retryClient.Logger = internal.NewLeveledLogrus(internal.GetLogger())

	return &RemoteProvider{
		client: retryClient.StandardClient(),
		url:    url,
	}, nil
}

type remoteRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type remoteResponse struct {
	TranslatedText string `json:"translated_text"`
}

func (p *RemoteProvider) Translate(
	ctx context.Context,
	text, sourceLang, targetLang string,
) (string, error) {
	payload, err := json.Marshal(remoteRequest{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("remote translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("remote translation returned status %d", resp.StatusCode)
	}

	var body remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode remote translation response: %w", err)
	}
	return body.TranslatedText, nil
}
