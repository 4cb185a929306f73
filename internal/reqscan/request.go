package reqscan

// Request is a fully parsed HTTP/1.1 request: method, request-target,
// version, ordered headers (duplicates permitted), and an optional body.
type Request struct {
	Method  Method
	URI     string
	Version Version
	Headers Headers
	// Body is nil when no framing header demanded one, or when the
	// resulting body length was zero.
	Body []byte
}

// HeaderValue returns the first header value for name (case-insensitive),
// or "" if absent.
func (r *Request) HeaderValue(name string) string {
	v, _ := r.Headers.Get(name)
	return v
}

// HeaderValues returns every header value for name (case-insensitive).
func (r *Request) HeaderValues(name string) []string {
	return r.Headers.Values(name)
}

// ContentLength returns the parsed Content-Length and true if the header
// is present and a well-formed non-negative integer.
func (r *Request) ContentLength() (int64, bool) {
	return r.Headers.ContentLength()
}

// IsChunked reports whether Transfer-Encoding names chunked encoding.
func (r *Request) IsChunked() bool {
	return r.Headers.IsChunked()
}
