package fuzzywuzzy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURLAcceptsHTTPURLs(t *testing.T) {
	urls := []string{
		"http://127.0.0.1:8080/lookup",
		"http://localhost:8080/lookup",
		"https://www.google.com",
		"https://google.com",
		"HTTP://example.com/path?query=1",
	}
	for _, raw := range urls {
		validated, err := ValidateURL(raw)
		assert.NoError(t, err, raw)
		assert.NotEmpty(t, validated, raw)
	}
}

func TestValidateURLRejectsInvalidURLs(t *testing.T) {
	urls := []string{
		"",
		"http://:8080/lookup",
		"localhost:8080/lookup",
		`\/\/\/\/\/`,
		"DFJKLKJDF03kj3r://dfj02f",
		"ftp://example.com/file",
		"http://website.com/" + strings.Repeat("a", 20000),
	}
	for _, raw := range urls {
		validated, err := ValidateURL(raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
		assert.Empty(t, validated)
	}
}

func TestValidateURLLengthBoundary(t *testing.T) {
	prefix := "http://website.com/"
	atLimit := prefix + strings.Repeat("a", MaxURLLength-len(prefix))

	_, err := ValidateURL(atLimit)
	assert.NoError(t, err)

	_, err = ValidateURL(atLimit + "a")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestRewriteLocalhost(t *testing.T) {
	urls := map[string]string{
		"http://localhost:8080/lookup":  "http://127.0.0.1:8080/lookup",
		"https://localhost/lookup?id=1": "https://127.0.0.1/lookup?id=1",
		"http://LOCALHOST:80":           "http://127.0.0.1:80",
		"http://example.com/localhost":  "http://example.com/localhost",
		"http://localhost.example.com":  "http://localhost.example.com",
	}
	for raw, expected := range urls {
		assert.Equal(t, expected, RewriteLocalhost(raw), raw)
	}
}

func TestValidateMethod(t *testing.T) {
	for _, method := range []string{"POST", "post", "Post"} {
		validated, err := ValidateMethod(method)
		assert.NoError(t, err)
		assert.Equal(t, "POST", validated)
	}

	for _, method := range []string{"", "GET", "PUT", "POSTS"} {
		_, err := ValidateMethod(method)
		assert.ErrorIs(t, err, ErrUnsupportedMethod, method)
	}
}
