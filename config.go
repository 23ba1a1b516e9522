package fuzzywuzzy

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Config holds all fuzzer configuration.
type Config struct {
	URL     string
	Headers http.Header
	Client  *Client

	// MaxConcurrentRequests caps the requests in flight. Zero or less sends the whole batch at once.
	MaxConcurrentRequests int

	Listeners []Listener
	Logger    zerolog.Logger
}
