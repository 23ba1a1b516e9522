package fuzzywuzzy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	wrap := func(err error) error {
		return &url.Error{Op: "Post", URL: "http://127.0.0.1:1/", Err: err}
	}

	cases := []struct {
		err      error
		expected string
	}{
		{wrap(context.Canceled), FailureCanceled},
		{wrap(context.DeadlineExceeded), FailureTimeout},
		{wrap(timeoutError{}), FailureTimeout},
		{wrap(&net.DNSError{Err: "no such host", Name: "nope.invalid", IsNotFound: true}), FailureDNS},
		{wrap(&net.OpError{Op: "dial", Net: "tcp", Err: fmt.Errorf("connect: %w", syscall.ECONNREFUSED)}), FailureConnectionRefused},
		{wrap(errors.New("malformed HTTP response")), FailureProtocol},
	}

	for _, c := range cases {
		if failure := ClassifyTransportError(c.err); failure != c.expected {
			t.Fatalf("Expected %s for %v, got %s", c.expected, c.err, failure)
		}
	}
}
