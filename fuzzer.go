package fuzzywuzzy

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// resultBuffer lets workers hand off results without waiting on a slow listener for every request.
const resultBuffer = 64

// Fuzzer sends a POST request for every payload in a batch, using the settings in its config.
// It uses the producer-consumer pattern to handle large ranges without holding every request in memory.
type Fuzzer struct {
	*Config
}

// Job is a request waiting to be sent.
// Err is set when the request couldn't be built; the job still counts towards the batch.
type Job struct {
	Request *Request
	Payload Payload
	Err     error
}

// Run generates and sends every payload from generator, and returns once the last request has completed.
// The report's Elapsed covers payload generation and the whole batch.
func (f *Fuzzer) Run(ctx context.Context, generator *Generator) *Report {
	start := time.Now()
	report := f.ProcessRequests(ctx, f.GenerateRequests(ctx, generator.Stream(ctx)))
	report.Elapsed = time.Since(start)
	return report
}

// GenerateRequests builds a POST request for every payload received and sends it into the returned channel.
// The channel is closed when payloads is exhausted or ctx is done.
func (f *Fuzzer) GenerateRequests(ctx context.Context, payloads <-chan Payload) <-chan *Job {
	jobs := make(chan *Job)

	go func(jobs chan<- *Job) {
		defer close(jobs)
		for payload := range payloads {
			req, err := NewFormRequest(ctx, f.URL, payload, f.Headers)
			job := &Job{Request: req, Payload: payload, Err: err}

			select {
			case jobs <- job:
			case <-ctx.Done():
				return
			}
		}
	}(jobs)

	return jobs
}

// ProcessRequests sends every job received over the channel and waits for all of them to complete.
// A failed request never stops the rest of the batch. Every result is passed to the config's listeners,
// which must drain their channel, and to the returned report.
func (f *Fuzzer) ProcessRequests(ctx context.Context, jobs <-chan *Job) *Report {
	report := NewReport()
	listeners := append([]Listener{report}, f.Listeners...)

	var listening sync.WaitGroup
	channels := make([]chan *Result, len(listeners))
	for index, listener := range listeners {
		results := make(chan *Result, resultBuffer)
		channels[index] = results

		listening.Add(1)
		go func(listener Listener, results <-chan *Result) {
			defer listening.Done()
			listener.Listen(results)
		}(listener, results)
	}

	workers := f.workerPool()
	for job := range jobs {
		job := job
		workers.Go(func() {
			result := f.requestWorker(job)
			for _, results := range channels {
				results <- result
			}
		})
	}
	workers.Wait()

	for _, results := range channels {
		close(results)
	}
	listening.Wait()

	if ctx.Err() != nil {
		f.Logger.Warn().Err(ctx.Err()).Int64("completed", report.Completed).Msg("Batch interrupted")
	}
	f.Logger.Debug().Int64("completed", report.Completed).Msg("Batch finished")
	return report
}

func (f *Fuzzer) workerPool() *pool.Pool {
	workers := pool.New()
	if f.MaxConcurrentRequests > 0 {
		workers = workers.WithMaxGoroutines(f.MaxConcurrentRequests)
	}
	return workers
}

func (f *Fuzzer) requestWorker(job *Job) *Result {
	result := &Result{URL: f.URL, Payload: job.Payload}
	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
	}()

	if job.Err != nil {
		f.transportFailure(result, job.Err)
		return result
	}

	response, err := f.Client.Do(job.Request)
	if err != nil {
		f.transportFailure(result, err)
		return result
	}

	if err := response.Discard(); err != nil {
		f.Logger.Debug().Err(err).Str("payload", job.Payload.String()).Msg("Error discarding response body")
	}

	result.StatusCode = response.StatusCode
	if response.StatusCode != http.StatusOK {
		result.Outcome = OutcomeOtherStatus
		f.Logger.Debug().
			Str("url", f.URL).
			Str("payload", job.Payload.String()).
			Int("status", response.StatusCode).
			Msg("POST")
		return result
	}

	result.Outcome = OutcomeSuccess
	f.Logger.Info().
		Str("url", f.URL).
		Str("payload", job.Payload.String()).
		Int("status", response.StatusCode).
		Msg("POST")
	return result
}

func (f *Fuzzer) transportFailure(result *Result, err error) {
	result.Outcome = OutcomeTransportFailure
	result.Failure = ClassifyTransportError(err)
	result.Err = err
	f.Logger.Warn().
		Err(err).
		Str("url", f.URL).
		Str("payload", result.Payload.String()).
		Str("failure", result.Failure).
		Msg("Unable to get url")
}
