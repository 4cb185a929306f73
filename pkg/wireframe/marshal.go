package wireframe

import (
	"fmt"
	"strconv"
	"sync"
)

// bufPool pools []byte slices for the Marshal fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of req: the request
// line, each header in insertion order, the blank line, and the body (if
// any). If a body is present and neither Content-Length nor
// Transfer-Encoding is already set, Content-Length is added automatically.
//
// Marshal performs no I/O — it is a pure re-encoding step, the inverse of
// Parse/Parser.Feed, useful for round-tripping a parsed request.
func Marshal(req *Request) ([]byte, error) {
	if req == nil {
		return nil, fmt.Errorf("wireframe: Marshal(nil)")
	}
	if req.Method.String() == "" {
		return nil, fmt.Errorf("wireframe: Marshal: request has no method")
	}
	if req.Version.String() == "" {
		return nil, fmt.Errorf("wireframe: Marshal: request has no version")
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	buf = append(buf, req.Method.String()...)
	buf = append(buf, ' ')
	buf = append(buf, req.URI...)
	buf = append(buf, ' ')
	buf = append(buf, req.Version.String()...)
	buf = append(buf, '\r', '\n')

	_, hasContentLength := req.Headers.Get("Content-Length")
	_, hasTransferEncoding := req.Headers.Get("Transfer-Encoding")
	for _, h := range req.Headers {
		buf = append(buf, h.Name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = append(buf, '\r', '\n')
	}

	if len(req.Body) > 0 && !hasContentLength && !hasTransferEncoding {
		buf = append(buf, "Content-Length: "...)
		buf = strconv.AppendInt(buf, int64(len(req.Body)), 10)
		buf = append(buf, '\r', '\n')
	}

	buf = append(buf, '\r', '\n')
	buf = append(buf, req.Body...)

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf[:0]
	bufPool.Put(bp)
	return result, nil
}
