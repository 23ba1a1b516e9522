package fuzzywuzzy

import (
	"reflect"
	"testing"
)

func TestDelimiterArrayLookupFindsCorrectOffsets(t *testing.T) {
	contents := []byte("id=FUZZYWUZZY&someOtherParm=0")
	array := &DelimiterArray{Contents: contents}

	expectedOffsets := []int{2, 27}
	offsets := array.Lookup('=')
	if !reflect.DeepEqual(expectedOffsets, offsets) {
		t.Fatalf("Expected %+v, got %+v", expectedOffsets, offsets)
	}
}

func TestDelimiterArrayLookupNoDelimiter(t *testing.T) {
	array := &DelimiterArray{Contents: []byte("noEqualsSign+1")}
	if offsets := array.Lookup('='); len(offsets) != 0 {
		t.Fatalf("Expected no offsets, got %+v", offsets)
	}
}

func TestDelimiterArraySplitKeepsEmptySegments(t *testing.T) {
	array := &DelimiterArray{Contents: []byte("a=1&&b=2&")}

	expected := []string{"a=1", "", "b=2", ""}
	segments := array.Split('&')
	if !reflect.DeepEqual(expected, segments) {
		t.Fatalf("Expected %q, got %q", expected, segments)
	}
}

func TestDelimiterArraySplitWithoutDelimiterReturnsWhole(t *testing.T) {
	array := &DelimiterArray{Contents: []byte("id=FUZZYWUZZY")}

	segments := array.Split('&')
	if len(segments) != 1 || segments[0] != "id=FUZZYWUZZY" {
		t.Fatalf("Expected the whole body back, got %q", segments)
	}
}
