package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/nikogura/distro-quiz/pkg/logging"
	"github.com/pkg/errors"
)

// maxBodySize caps remote data documents. Catalogs are tens of kilobytes.
const maxBodySize = 4 << 20

// Fetch retrieves a data document from a file path or URL.
func Fetch(input string) (content []byte, err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	content, err = FetchWithContext(ctx, input)
	return content, err
}

// FetchWithContext retrieves a data document with context.
func FetchWithContext(ctx context.Context, input string) (content []byte, err error) {
	if IsURL(input) {
		logging.Debug().Str("url", input).Msg("Fetching data document")

		content, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch data from URL: %s", input)
			return content, err
		}
		return content, err
	}

	logging.Debug().Str("path", input).Msg("Reading data document")
	content, err = fetchFromFile(input)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch data from file: %s", input)
		return content, err
	}

	return content, err
}

// IsURL reports whether input names an http or https resource.
func IsURL(input string) (result bool) {
	parsedURL, urlErr := url.Parse(input)
	result = urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https")
	return result
}

// fetchFromFile reads a data document from disk.
func fetchFromFile(path string) (content []byte, err error) {
	content, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return content, err
	}

	if len(content) == 0 {
		err = errors.New("file is empty")
		return content, err
	}

	return content, err
}

// fetchFromURL retrieves a data document over HTTP.
func fetchFromURL(ctx context.Context, urlStr string) (content []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return content, err
	}

	req.Header.Set("User-Agent", "distro-quiz/1.0")
	req.Header.Set("Accept", "application/yaml, text/yaml, text/plain")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return content, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return content, err
	}

	content, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return content, err
	}

	if len(content) > maxBodySize {
		content = nil
		err = errors.Errorf("data document exceeds %d bytes", maxBodySize)
		return content, err
	}

	if len(content) == 0 {
		err = errors.New("fetched content is empty")
		return content, err
	}

	return content, err
}
