package fuzzywuzzy

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DataType is the kind of data substituted into the fuzz target.
type DataType string

// DataTypeInteger fuzzes with every integer in a range.
const DataTypeInteger DataType = "Integer"

// ParseDataType matches a fuzz data type name case-insensitively.
func ParseDataType(name string) (DataType, error) {
	if strings.EqualFold(name, string(DataTypeInteger)) {
		return DataTypeInteger, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDataType, name)
}

// IntegerRange is a closed interval of integers to fuzz with.
// A range whose End is below its Start is empty.
type IntegerRange struct {
	Start int64
	End   int64
}

// Count returns the number of integers in the range.
func (r IntegerRange) Count() int64 {
	if r.End < r.Start {
		return 0
	}

	span := r.End - r.Start
	if span < 0 || span == math.MaxInt64 {
		// Saturate instead of overflowing on ranges near the int64 limits.
		return math.MaxInt64
	}
	return span + 1
}

func (r IntegerRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// Payload is a concrete request body generated from a template.
type Payload struct {
	Name  string
	Value string
	Body  string
}

// String returns the fuzzed field as name=value.
func (p Payload) String() string {
	return p.Name + string(keyDelimiter) + p.Value
}

// Generator produces payloads for every integer in Range, in ascending order.
type Generator struct {
	Template *Template
	Range    IntegerRange

	// DropFixedParams sends only the fuzzed field, the way the first release of the tool did.
	DropFixedParams bool
}

// Count returns the number of payloads the generator will produce.
func (g *Generator) Count() int64 {
	return g.Range.Count()
}

// Stream returns a channel that receives payloads as they are generated.
// Every call starts again from Range.Start, so memory use doesn't depend on the size of the range.
// The channel is closed after the last payload or once ctx is done.
func (g *Generator) Stream(ctx context.Context) <-chan Payload {
	payloads := make(chan Payload)

	go func(payloads chan<- Payload) {
		defer close(payloads)
		if g.Range.Count() == 0 {
			return
		}

		for value := g.Range.Start; ; value++ {
			select {
			case payloads <- g.payload(value):
			case <-ctx.Done():
				return
			}

			// Checked before incrementing so Range.End can be math.MaxInt64.
			if value == g.Range.End {
				return
			}
		}
	}(payloads)

	return payloads
}

const maxPreallocatedPayloads = 1 << 16

// Payloads generates every payload up front.
// Prefer Stream for large ranges.
func (g *Generator) Payloads() []Payload {
	capacity := g.Count()
	if capacity > maxPreallocatedPayloads {
		capacity = maxPreallocatedPayloads
	}

	payloads := make([]Payload, 0, capacity)
	for payload := range g.Stream(context.Background()) {
		payloads = append(payloads, payload)
	}
	return payloads
}

func (g *Generator) payload(value int64) Payload {
	return g.Template.Payload(strconv.FormatInt(value, 10), g.DropFixedParams)
}
