// Package uploads persists attachment binaries and serves them back under
// stable /uploads/<name> paths.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix under which stored objects are served
const PublicPrefix = "/uploads/"

// Store persists uploaded binaries and returns addressable public paths
type Store interface {
	// Save stores the content under a generated collision-resistant name and
	// returns the public path of the stored object.
	Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error)

	// Open returns the stored object for serving back to clients.
	Open(ctx context.Context, object string) (io.ReadCloser, error)
}

// GenerateName builds a storage name for an uploaded file: the current unix
// millisecond timestamp, a short random fragment and the sanitized original
// filename. The timestamp prefix keeps listings chronological; the fragment
// covers two uploads landing on the same millisecond.
func GenerateName(originalName string) string {
	base := sanitize(path.Base(originalName))
	if base == "" || base == "." {
		base = "arquivo"
	}
	fragment := uuid.NewString()[:8]
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), fragment, base)
}

// PublicPath returns the URL path under which an object is served
func PublicPath(object string) string {
	return PublicPrefix + object
}

// sanitize keeps the stored name safe for filesystems and URLs
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
