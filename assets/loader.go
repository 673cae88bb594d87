// Package assets loads artwork images off the main goroutine.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pthm-cable/lanterns/components"
)

// Entry describes one configured artwork file.
type Entry struct {
	Path   string
	Title  string
	Artist string
}

// Result is the outcome of loading one entry. Exactly one of Image or Err is set.
type Result struct {
	Index   int
	Artwork components.Artwork
	Image   image.Image
	Err     error
}

// Loader decodes a fixed set of artworks concurrently.
// Start, Poll and Done must be called from the same goroutine.
type Loader struct {
	entries  []Entry
	results  chan Result
	received int
	started  bool
}

// NewLoader creates a loader for the given entries.
func NewLoader(entries []Entry) *Loader {
	return &Loader{
		entries: entries,
		results: make(chan Result, len(entries)),
	}
}

// Start launches one decode goroutine per entry. Calling Start again is a no-op.
func (l *Loader) Start(ctx context.Context) {
	if l.started {
		return
	}
	l.started = true

	for i, e := range l.entries {
		go func() {
			l.results <- load(ctx, i, e)
		}()
	}
}

func load(ctx context.Context, index int, e Entry) Result {
	res := Result{
		Index:   index,
		Artwork: components.Artwork{ID: index, Title: e.Title, Artist: e.Artist},
	}
	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("loading %s: %w", e.Path, err)
		return res
	}

	img, err := decodeFile(e.Path)
	if err != nil {
		res.Err = err
		return res
	}

	b := img.Bounds()
	res.Artwork.Width = b.Dx()
	res.Artwork.Height = b.Dy()
	res.Image = img
	return res
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Poll returns every result that has arrived since the last call without blocking.
func (l *Loader) Poll() []Result {
	var out []Result
	for {
		select {
		case r := <-l.results:
			l.received++
			out = append(out, r)
		default:
			return out
		}
	}
}

// Wait blocks until every entry has produced a result or ctx is done.
func (l *Loader) Wait(ctx context.Context) ([]Result, error) {
	var out []Result
	for !l.Done() {
		select {
		case r := <-l.results:
			l.received++
			out = append(out, r)
		case <-ctx.Done():
			return out, ctx.Err()
		}
	}
	return out, nil
}

// Done reports whether every entry has been loaded or has failed.
func (l *Loader) Done() bool {
	return l.started && l.received == len(l.entries)
}

// Total returns the number of configured entries.
func (l *Loader) Total() int {
	return len(l.entries)
}

// Received returns how many results have been consumed.
func (l *Loader) Received() int {
	return l.received
}
