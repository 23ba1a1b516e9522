package fuzzywuzzy

// A DelimiterArray finds the positions of a delimiter within a byte slice.
type DelimiterArray struct {
	Contents []byte
}

// Lookup returns the offsets within a byte slice a particular delimiter is at in O(n) time.
func (d *DelimiterArray) Lookup(delimiter byte) []int {
	offsets := []int{}
	for index, value := range d.Contents {
		if value == delimiter {
			offsets = append(offsets, index)
		}
	}
	return offsets
}

// Split cuts the contents at every delimiter.
// Contents without the delimiter come back as a single element, and empty segments are kept.
func (d *DelimiterArray) Split(delimiter byte) []string {
	segments := []string{}
	start := 0
	for _, offset := range d.Lookup(delimiter) {
		segments = append(segments, string(d.Contents[start:offset]))
		start = offset + 1
	}
	return append(segments, string(d.Contents[start:]))
}
