package uploads

import (
	"fmt"

	"github.com/camaradigital/gabinete-api/internal/config"
)

// Backend represents the type of attachment storage backend
type Backend string

const (
	// BackendLocal stores files on the local filesystem
	BackendLocal Backend = "local"
	// BackendMinio stores files in an S3-compatible bucket
	BackendMinio Backend = "minio"
)

// SupportedBackends returns every supported storage backend
func SupportedBackends() []Backend {
	return []Backend{BackendLocal, BackendMinio}
}

// NewStore creates the attachment store selected by the configuration
func NewStore(cfg *config.Config) (Store, error) {
	switch Backend(cfg.Upload.Backend) {
	case BackendLocal:
		return NewLocalStore(cfg.Upload.Dir)
	case BackendMinio:
		return NewMinioStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported uploads backend: %s. Supported backends: %v",
			cfg.Upload.Backend, SupportedBackends())
	}
}
