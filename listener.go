package fuzzywuzzy

import "time"

// Outcome classifies how a single fuzz request ended.
type Outcome int

const (
	// OutcomeSuccess is an HTTP 200 response.
	OutcomeSuccess Outcome = iota
	// OutcomeOtherStatus is any response that isn't a 200.
	OutcomeOtherStatus
	// OutcomeTransportFailure means no response was received.
	OutcomeTransportFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeOtherStatus:
		return "other_status"
	default:
		return "transport_failure"
	}
}

// Result is the outcome of a single fuzz request, passed to listeners.
type Result struct {
	URL        string
	Payload    Payload
	Outcome    Outcome
	StatusCode int

	// Failure and Err are only set for OutcomeTransportFailure.
	Failure string
	Err     error

	Duration time.Duration
}

// Listener must be implemented by anything that wants to observe results as a batch runs.
// The results channel is closed after the last request in the batch completes.
type Listener interface {
	Listen(results <-chan *Result)
}
