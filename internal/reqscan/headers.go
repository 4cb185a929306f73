package reqscan

import (
	"strconv"
	"strings"

	"github.com/intuitivelabs/bytescase"
)

// Header is a single (name, value) pair. Name preserves original case;
// Value has leading/trailing OWS trimmed, interior whitespace preserved.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered, repeatable list of header fields. Insertion
// order is preserved across duplicates.
type Headers []Header

// eqFoldName reports whether a and b are equal, ASCII-case-insensitively.
func eqFoldName(a, b string) bool {
	return bytescase.CmpEq([]byte(a), []byte(b))
}

// Get returns the first value for name (case-insensitive), and whether a
// header with that name was present at all.
func (h Headers) Get(name string) (string, bool) {
	for _, hdr := range h {
		if eqFoldName(hdr.Name, name) {
			return hdr.Value, true
		}
	}
	return "", false
}

// Values returns every value for name (case-insensitive), in insertion
// order.
func (h Headers) Values(name string) []string {
	var vals []string
	for _, hdr := range h {
		if eqFoldName(hdr.Name, name) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// ContentLength returns the parsed Content-Length header value and true
// if it is present and a well-formed non-negative integer.
func (h Headers) ContentLength() (int64, bool) {
	v, ok := h.Get("Content-Length")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// IsChunked reports whether any Transfer-Encoding header value contains
// "chunked" as a case-insensitive substring.
func (h Headers) IsChunked() bool {
	for _, hdr := range h {
		if eqFoldName(hdr.Name, "Transfer-Encoding") && containsFoldChunked(hdr.Value) {
			return true
		}
	}
	return false
}

// containsFoldChunked reports whether s contains "chunked" as an
// ASCII-case-insensitive substring, scanning byte-by-byte with
// bytescase.ByteToLower rather than allocating a lowercased copy.
func containsFoldChunked(s string) bool {
	const needle = "chunked"
	if len(s) < len(needle) {
		return false
	}
	for i := 0; i+len(needle) <= len(s); i++ {
		match := true
		for j := 0; j < len(needle); j++ {
			if bytescase.ByteToLower(s[i+j]) != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
