package posting

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"cv-builder/pkg/httpx"
)

// maxFetchBytes bounds how much posting text is read from a remote page.
const maxFetchBytes = 1 << 20

// Fetcher retrieves job-posting text from http(s) URLs.
type Fetcher struct {
	client *httpx.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: httpx.NewClient(30 * time.Second)}
}

// Fetch downloads the posting body from rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", errors.Errorf("not a valid http(s) URL: %s", rawURL)
	}

	resp, err := f.client.Get(ctx, rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch posting from %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("posting fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", errors.Wrap(err, "read posting body")
	}
	if len(body) == 0 {
		return "", errors.New("posting page is empty")
	}
	return string(body), nil
}
