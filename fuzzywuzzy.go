// Package fuzzywuzzy is a simple HTTP fuzzer for form-encoded POST bodies.
// A body template marks exactly one parameter value with FUZZYWUZZY, and the fuzzer substitutes every integer in a range into it.
// Payloads are streamed from the range instead of being held in memory, and requests are sent concurrently with an optional ceiling,
// using a sync barrier to wait until the last request finishes.
package fuzzywuzzy
