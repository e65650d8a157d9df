package loader

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

// MaxDocumentSize caps how much of a remote document is read.
const MaxDocumentSize = 8 << 20

// HTTPLoader fetches a question document with a GET request.
type HTTPLoader struct {
	url    string
	client *http.Client // reused across loads
}

var _ Loader = (*HTTPLoader)(nil)

// NewHTTPLoader creates a loader for url. A nil client gets a default one
// with a 30 second timeout.
func NewHTTPLoader(url string, client *http.Client) *HTTPLoader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPLoader{url: url, client: client}
}

func (l *HTTPLoader) Load(ctx context.Context) (*questionbank.QuestionSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &LoadError{Source: l.url, Reason: "invalid request", Wrapped: err}
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: l.url, Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &LoadError{Source: l.url, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	set, err := Decode(io.LimitReader(resp.Body, MaxDocumentSize), responseFormat(resp, l.url))
	if err != nil {
		return nil, &LoadError{Source: l.url, Reason: "invalid document", Wrapped: err}
	}
	return set, nil
}

func responseFormat(resp *http.Response, url string) Format {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err == nil {
		switch mediaType {
		case "application/yaml", "application/x-yaml", "text/yaml":
			return FormatYAML
		case "application/json":
			return FormatJSON
		}
	}
	return FormatFromName(url)
}
