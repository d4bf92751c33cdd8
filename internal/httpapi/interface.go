package httpapi

import (
	"context"
	"net/http"
)

// Server exposes transcriptions over HTTP.
type Server interface {
	Handler() http.Handler
	// Run serves on the configured address until ctx is done, then shuts down.
	Run(ctx context.Context) error
}
