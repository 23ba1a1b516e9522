package fuzzywuzzy

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"syscall"
)

// Input validation errors. Every one of them is detected before any request is sent.
// Callers should use errors.Is() to check for these.
var (
	ErrInvalidURL          = errors.New("invalid URL")
	ErrUnsupportedMethod   = errors.New("unsupported HTTP method, only POST is supported")
	ErrUnsupportedDataType = errors.New("unsupported fuzz data type, only Integer is supported")

	// ErrInvalidTemplate wraps every reason a POST body template is rejected.
	ErrInvalidTemplate = errors.New("invalid POST body template")

	ErrMissingSeparator    = errors.New("parameter must contain exactly one '='")
	ErrMarkerInKey         = errors.New(FuzzMarker + " can't be used in a parameter name")
	ErrAmbiguousMarker     = errors.New("parameter value must be exactly " + FuzzMarker)
	ErrNoFuzzTarget        = errors.New("no parameter value is " + FuzzMarker)
	ErrMultipleFuzzTargets = errors.New("only one parameter can be fuzzed at a time")
)

// Transport failure classes reported for requests that never got a response.
const (
	FailureTimeout           = "timeout"
	FailureDNS               = "dns"
	FailureConnectionRefused = "connection_refused"
	FailureTLS               = "tls"
	FailureCanceled          = "canceled"
	FailureProtocol          = "protocol"
)

// ClassifyTransportError maps an error from the HTTP client to a failure class.
func ClassifyTransportError(err error) string {
	if errors.Is(err, context.Canceled) {
		return FailureCanceled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailureDNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return FailureConnectionRefused
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	var recordErr tls.RecordHeaderError
	var certErr *tls.CertificateVerificationError
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	if errors.As(err, &recordErr) || errors.As(err, &certErr) || errors.As(err, &unknownAuthority) || errors.As(err, &hostnameErr) {
		return FailureTLS
	}

	return FailureProtocol
}
