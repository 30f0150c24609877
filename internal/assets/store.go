// Package assets talks to the cloud asset host that serves dish images.
package assets

import (
	"context"
	"io"
)

// Store accepts binary uploads and returns a stable public URL per asset.
type Store interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}
