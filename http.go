package fuzzywuzzy

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"strings"
	"time"
)

const formContentType = "application/x-www-form-urlencoded"

// Client is a net/http Client that can natively handle our request and response types.
// It is shared by every request worker in a batch.
type Client struct {
	*http.Client
}

// NewClient creates a Client with a per-request timeout.
// A zero timeout leaves requests without a deadline, like http.DefaultClient.
func NewClient(timeout time.Duration, skipCertVerify bool) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if skipCertVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	// Every request in a batch goes to the same host.
	transport.MaxIdleConnsPerHost = transport.MaxIdleConns

	return &Client{Client: &http.Client{Transport: transport, Timeout: timeout}}
}

// Do wraps Go's net/http client with our Request and Response types.
func (c *Client) Do(req *Request) (*Response, error) {
	resp, err := c.Client.Do(req.Request)
	if err != nil {
		return nil, err
	}
	return &Response{Response: resp}, nil
}

// Request is a form POST carrying a single payload.
type Request struct {
	*http.Request
	Payload Payload
}

// NewFormRequest builds an application/x-www-form-urlencoded POST for a payload.
// Headers are copied so the caller's map is never shared between requests.
func NewFormRequest(ctx context.Context, url string, payload Payload, headers http.Header) (*Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(payload.Body))
	if err != nil {
		return nil, err
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", formContentType)

	return &Request{Request: req, Payload: payload}, nil
}

// Response is a *http.Response whose body we never inspect.
type Response struct {
	*http.Response
}

// Discard drains and closes the response body so the connection can be reused.
func (r *Response) Discard() error {
	if r.Response.Body == nil {
		return nil
	}

	_, err := io.Copy(io.Discard, r.Response.Body)
	closeErr := r.Response.Body.Close()
	if err != nil {
		return err
	}
	return closeErr
}
