package http_annotator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/weit-project/eit-toolkit/lib/annotation"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	Url string
	// Timeout of a single request. Zero means no timeout.
	Timeout time.Duration
}

// StatusError is returned when the annotation service answers with anything but 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("annotation service returned %d: %s", e.StatusCode, e.Body)
}

func NewClient(conf Config) annotation.Annotator {
	return &annotator{
		url:        conf.Url,
		httpClient: &http.Client{Timeout: conf.Timeout},
	}
}

type annotator struct {
	url        string
	httpClient HttpClient
}

type annotateRequest struct {
	Text string `json:"text"`
}

type annotateResponse struct {
	Tokens []annotation.Token `json:"tokens"`
}

func (a *annotator) Annotate(ctx context.Context, sentence string) (*annotation.Sentence, error) {
	body, err := json.Marshal(annotateRequest{Text: sentence})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	var response annotateResponse
	if err := json.Unmarshal(b, &response); err != nil {
		return nil, fmt.Errorf("decode annotation of %q: %w", sentence, err)
	}

	return &annotation.Sentence{
		Text:   sentence,
		Tokens: response.Tokens,
	}, nil
}
