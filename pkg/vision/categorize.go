package vision

import (
	"context"
	"time"

	"github.com/propsheet/brochure"
	"github.com/propsheet/brochure/internal/logging"
)

// Defaults for the batch categorizer.
const (
	DefaultBatchSize = 3
	DefaultTimeout   = 15 * time.Second
)

// Categorizer assigns a category to every photo in a library.
//
// Photos are sent to the vision service in small batches. A batch that
// fails or times out falls back to the filename heuristic for its
// photos; it is not retried. With no client configured, every photo is
// categorized by filename.
type Categorizer struct {
	// Client may be nil to categorize by filename only.
	Client *Client
	// BatchSize is the number of photos per service call.
	BatchSize int
	// Timeout limits one service call.
	Timeout time.Duration
	// OnProgress, if set, is called after each batch with the number
	// of photos categorized so far and the total.
	OnProgress func(done, total int)
}

// NewCategorizer creates a categorizer with default batch size and
// timeout.
func NewCategorizer(c *Client) *Categorizer {
	return &Categorizer{
		Client:    c,
		BatchSize: DefaultBatchSize,
		Timeout:   DefaultTimeout,
	}
}

// Categorize assigns a category to every photo in the library that is
// not pinned to the location page.
//
// Categorization never fails hard: service errors degrade to the
// filename heuristic. The returned error is reserved for context
// cancellation.
func (c *Categorizer) Categorize(ctx context.Context, lib *brochure.Library) error {
	photos := lib.Uncategorized()
	total := len(photos)

	size := c.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	for start := 0; start < total; start += size {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := start + size
		if end > total {
			end = total
		}
		batch := photos[start:end]

		c.categorizeBatch(ctx, batch)

		if c.OnProgress != nil {
			c.OnProgress(end, total)
		}
	}

	return nil
}

func (c *Categorizer) categorizeBatch(ctx context.Context, batch []*brochure.Photo) {
	if c.Client == nil {
		fallback(batch)
		return
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	bctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	paths := make([]string, len(batch))
	for i, p := range batch {
		paths[i] = p.Path
	}

	results, err := c.Client.Analyze(bctx, paths)
	if err != nil {
		logging.Warning("Vision analysis failed, falling back to filenames: %v", err)
		fallback(batch)
		return
	}

	for i, p := range batch {
		r := results[i]
		p.Category = brochure.NormalizeRoomType(r.RoomType)
		p.RoomType = r.RoomType
		p.Attributes = r.Attributes
		p.Caption = r.Caption
		logging.Debug("Photo %q -> %v (%q)", p.Name, p.Category, r.RoomType)
	}
}

func fallback(batch []*brochure.Photo) {
	for _, p := range batch {
		p.Category = brochure.CategorizeByFilename(p.Name)
		logging.Debug("Photo %q -> %v (filename)", p.Name, p.Category)
	}
}
