package fuzzywuzzy

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxURLLength is the longest URL the fuzzer accepts.
const MaxURLLength = 10000

const loopbackIP = "127.0.0.1"

var validate = validator.New()

// ValidateURL checks that raw is an absolute http or https URL with a host and returns the URL requests should be sent to.
// If raw fails validation and its host is localhost, it's retried with the host rewritten to 127.0.0.1.
func ValidateURL(raw string) (string, error) {
	if raw == "" || len(raw) > MaxURLLength {
		return "", fmt.Errorf("%w: URL must be between 1 and %d characters", ErrInvalidURL, MaxURLLength)
	}

	err := validateHTTPURL(raw)
	if err == nil {
		return raw, nil
	}

	rewritten := RewriteLocalhost(raw)
	if rewritten == raw {
		return "", err
	}

	if err := validateHTTPURL(rewritten); err != nil {
		return "", err
	}
	return rewritten, nil
}

func validateHTTPURL(raw string) error {
	if err := validate.Var(raw, "required,http_url"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}

	// http_url allows URLs like http://:8080 with a port and no host.
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return nil
}

// RewriteLocalhost replaces a localhost host with 127.0.0.1, keeping the scheme, port, path and query.
// URLs with any other host come back unchanged.
func RewriteLocalhost(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(parsed.Hostname(), "localhost") {
		return raw
	}

	port := parsed.Port()
	parsed.Host = loopbackIP
	if port != "" {
		parsed.Host = loopbackIP + ":" + port
	}
	return parsed.String()
}

// ValidateMethod accepts POST in any case and returns it canonicalised.
func ValidateMethod(method string) (string, error) {
	if !strings.EqualFold(method, http.MethodPost) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	return http.MethodPost, nil
}
