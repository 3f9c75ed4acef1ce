// Package vision talks to the vision-analysis service that classifies
// property photos by room type.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/propsheet/brochure"
	"github.com/propsheet/brochure/internal/logging"
)

// API endpoints
const (
	epAnalyze  = "/analyze-images"
	epProgress = "/notifications/progress"
)

// Analysis is the result for one analyzed photo.
type Analysis struct {
	RoomType   string   `json:"room_type"`
	Attributes []string `json:"attributes"`
	Caption    string   `json:"caption"`
}

// Client is the HTTP client for the vision-analysis service.
type Client struct {
	base   string
	client *http.Client
}

// NewClient sets up a client for the service at the given base URL.
func NewClient(base string) *Client {
	return &Client{
		base:   base,
		client: &http.Client{},
	}
}

// Analyze sends the given image files to the analysis endpoint and
// returns one Analysis per file, aligned by index.
func (c *Client) Analyze(ctx context.Context, paths []string) ([]Analysis, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, p := range paths {
		err := attachFile(w, p)
		if err != nil {
			return nil, err
		}
	}
	err := w.Close()
	if err != nil {
		return nil, err
	}

	logging.Debug("Analyze %d files via %v", len(paths), c.base+epAnalyze)
	req, err := http.NewRequestWithContext(ctx, "POST", c.base+epAnalyze, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, brochure.Wrap(err, "analyze request failed")
	}
	defer res.Body.Close()

	err = brochure.ExpectOK(res, "analyze request failed")
	if err != nil {
		return nil, err
	}

	results := make([]Analysis, 0, len(paths))
	err = json.NewDecoder(res.Body).Decode(&results)
	if err != nil {
		return nil, brochure.Wrap(err, "failed to read analyze response")
	}

	if len(results) != len(paths) {
		return nil, brochure.NewValidationError(
			"got %v results for %v files", len(results), len(paths))
	}

	return results, nil
}

func attachFile(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fw, err := w.CreateFormFile("files[]", filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(fw, f)

	return err
}
