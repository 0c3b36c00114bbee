// Package publish renders the component gallery to a static snapshot and
// writes it to a storage target, local disk or an S3 bucket.
package publish

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"strings"

	"github.com/facet-ui/facet/pkg/preview"
)

// ErrEmptySnapshot is returned when there is nothing to publish.
var ErrEmptySnapshot = errors.New("publish: empty snapshot")

// File is one entry of a snapshot.
type File struct {
	// Key is the target-relative path, e.g. "components/dialog.html".
	Key string

	// ContentType is the MIME type served for the file.
	ContentType string

	// Body is the file content.
	Body []byte
}

// Store writes snapshot files to a publish target.
type Store interface {
	// Put writes one file, replacing any previous content under the key.
	Put(ctx context.Context, f File) error
}

// Snapshot renders the gallery into a set of static files: the index page
// plus one page per component.
func Snapshot(gallery *preview.Gallery) ([]File, error) {
	index, err := gallery.Index()
	if err != nil {
		return nil, err
	}
	files := []File{{
		Key:         "index.html",
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(index),
	}}

	for _, name := range gallery.Names() {
		markup, err := gallery.Component(name)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Key:         path.Join("components", name+".html"),
			ContentType: "text/html; charset=utf-8",
			Body:        []byte(markup),
		})
	}
	return files, nil
}

// Publisher writes snapshots to a store.
type Publisher struct {
	store  Store
	logger *slog.Logger
}

// NewPublisher creates a publisher. A nil logger falls back to
// slog.Default.
func NewPublisher(store Store, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{store: store, logger: logger}
}

// Publish writes every file of the snapshot. It stops at the first
// failure so a broken target does not end up half-overwritten silently.
func (p *Publisher) Publish(ctx context.Context, files []File) error {
	if len(files) == 0 {
		return ErrEmptySnapshot
	}
	for _, f := range files {
		if err := p.store.Put(ctx, f); err != nil {
			return err
		}
		p.logger.Info("published", "key", f.Key, "bytes", len(f.Body))
	}
	return nil
}

// cleanKey normalizes a snapshot key for storage, rejecting escapes from
// the target root.
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + key)
	if cleaned == "/" {
		return "", errors.New("publish: empty key")
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}
