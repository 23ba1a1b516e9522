package fuzzywuzzy

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Report aggregates the results of a batch.
// It is a Listener, so the fuzzer feeds it like any other listener and it must not be read until the batch is done.
type Report struct {
	Completed   int64
	Succeeded   int64
	OtherStatus int64
	Failed      int64

	StatusCounts  map[int]int64
	FailureCounts map[string]int64

	// Elapsed is filled in by whoever times the batch.
	Elapsed time.Duration
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{
		StatusCounts:  map[int]int64{},
		FailureCounts: map[string]int64{},
	}
}

// Listen counts every result it receives until the channel is closed.
func (r *Report) Listen(results <-chan *Result) {
	for result := range results {
		r.Completed++
		switch result.Outcome {
		case OutcomeSuccess:
			r.Succeeded++
			r.StatusCounts[result.StatusCode]++
		case OutcomeOtherStatus:
			r.OtherStatus++
			r.StatusCounts[result.StatusCode]++
		case OutcomeTransportFailure:
			r.Failed++
			r.FailureCounts[result.Failure]++
		}
	}
}

// WriteSummary renders the status and failure breakdown as a table.
func (r *Report) WriteSummary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Result", "Count"})

	statuses := make([]int, 0, len(r.StatusCounts))
	for status := range r.StatusCounts {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	for _, status := range statuses {
		table.Append([]string{fmt.Sprintf("HTTP %d", status), strconv.FormatInt(r.StatusCounts[status], 10)})
	}

	failures := make([]string, 0, len(r.FailureCounts))
	for failure := range r.FailureCounts {
		failures = append(failures, failure)
	}
	sort.Strings(failures)
	for _, failure := range failures {
		table.Append([]string{"error: " + failure, strconv.FormatInt(r.FailureCounts[failure], 10)})
	}

	table.SetFooter([]string{"Total", strconv.FormatInt(r.Completed, 10)})
	table.Render()
}
