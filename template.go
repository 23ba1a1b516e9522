package fuzzywuzzy

import (
	"fmt"
	"net/url"
	"strings"
)

// FuzzMarker selects the parameter value to be fuzzed in a POST body template.
const FuzzMarker = "FUZZYWUZZY"

const (
	paramDelimiter = '&'
	keyDelimiter   = '='
)

// ParamClass is the result of checking a single key=value pair from a template.
type ParamClass int

const (
	// ParamMalformed rejects the whole template.
	ParamMalformed ParamClass = iota
	// ParamPlain is a fixed parameter that is sent as-is.
	ParamPlain
	// ParamFuzzExact is a parameter whose value is exactly FuzzMarker.
	ParamFuzzExact
)

func (c ParamClass) String() string {
	switch c {
	case ParamPlain:
		return "plain"
	case ParamFuzzExact:
		return "fuzz"
	default:
		return "malformed"
	}
}

// Param is a single key=value pair from a POST body.
type Param struct {
	Key   string
	Value string
}

func (p Param) String() string {
	return p.Key + string(keyDelimiter) + p.Value
}

// FuzzTarget is the one parameter in a template selected for fuzzing.
type FuzzTarget struct {
	Name  string
	Index int
	Raw   string
}

// Template is a validated POST body with exactly one fuzz target.
type Template struct {
	Params []Param
	Target FuzzTarget
}

// splitParam splits a raw parameter on its only '='.
func splitParam(param string) (Param, error) {
	array := &DelimiterArray{Contents: []byte(param)}
	offsets := array.Lookup(keyDelimiter)
	if len(offsets) != 1 {
		return Param{}, ErrMissingSeparator
	}

	return Param{Key: param[:offsets[0]], Value: param[offsets[0]+1:]}, nil
}

// ClassifyParam checks a single raw key=value pair.
// A malformed parameter comes back with the reason it was rejected.
func ClassifyParam(param string) (ParamClass, error) {
	p, err := splitParam(param)
	if err != nil {
		return ParamMalformed, err
	}

	// Fuzzing parameter names isn't supported.
	if strings.Contains(p.Key, FuzzMarker) {
		return ParamMalformed, ErrMarkerInKey
	}

	if !strings.Contains(p.Value, FuzzMarker) {
		return ParamPlain, nil
	}

	if p.Value != FuzzMarker {
		return ParamMalformed, ErrAmbiguousMarker
	}

	return ParamFuzzExact, nil
}

// ParseTemplate validates a raw POST body and locates its fuzz target.
// Every rejection wraps ErrInvalidTemplate.
func ParseTemplate(body string) (*Template, error) {
	array := &DelimiterArray{Contents: []byte(body)}
	rawParams := array.Split(paramDelimiter)

	template := &Template{Params: make([]Param, 0, len(rawParams))}
	fuzzed := 0
	for index, raw := range rawParams {
		class, err := ClassifyParam(raw)
		if class == ParamMalformed {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTemplate, raw, err)
		}

		// ClassifyParam already proved there's exactly one '='.
		param, _ := splitParam(raw)
		template.Params = append(template.Params, param)

		if class == ParamFuzzExact {
			fuzzed++
			template.Target = FuzzTarget{Name: param.Key, Index: index, Raw: raw}
		}
	}

	switch {
	case fuzzed == 0:
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, ErrNoFuzzTarget)
	case fuzzed > 1:
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, ErrMultipleFuzzTargets)
	}

	return template, nil
}

// ValidateTemplate returns the fuzzed parameter exactly as it appears in the body, e.g. "id=FUZZYWUZZY".
func ValidateTemplate(body string) (string, error) {
	template, err := ParseTemplate(body)
	if err != nil {
		return "", err
	}
	return template.Target.Raw, nil
}

// Payload substitutes value into the fuzz target.
// Fixed parameters are sent verbatim and in their original order, so they must already be form encoded
// in the template: "q=a+b" reaches the server as "a b". With dropFixed set the body is the fuzzed field
// alone, form encoded.
func (t *Template) Payload(value string, dropFixed bool) Payload {
	payload := Payload{Name: t.Target.Name, Value: value}
	if dropFixed {
		payload.Body = url.Values{t.Target.Name: []string{value}}.Encode()
		return payload
	}

	params := make([]string, len(t.Params))
	for index, param := range t.Params {
		if index == t.Target.Index {
			params[index] = Param{Key: param.Key, Value: url.QueryEscape(value)}.String()
			continue
		}
		params[index] = param.String()
	}
	payload.Body = strings.Join(params, string(paramDelimiter))
	return payload
}
