package wireframe

import "testing"

func TestParse_Simple(t *testing.T) {
	req, err := Parse([]byte("GET /api/users HTTP/1.1\r\nHost: example.com\r\n\r\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if req.Method != MethodGET {
		t.Errorf("Method = %v, want GET", req.Method)
	}
	if req.URI != "/api/users" {
		t.Errorf("URI = %q, want /api/users", req.URI)
	}
	if got := req.HeaderValue("Host"); got != "example.com" {
		t.Errorf("HeaderValue(Host) = %q, want example.com", got)
	}
}

func TestParse_TrailingBytesIgnored(t *testing.T) {
	data := []byte("GET / HTTP/1.1\r\nHost: h\r\n\r\nGET /next HTTP/1.1\r\n")
	req, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if req.URI != "/" {
		t.Errorf("URI = %q, want /", req.URI)
	}
}

func TestParse_Incomplete(t *testing.T) {
	_, err := Parse([]byte("GET / HTTP/1.1\r\nHost: h\r\n"))
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ErrIncompleteRequest {
		t.Fatalf("Parse() error = %v, want ErrIncompleteRequest", err)
	}
}

func TestParseWithConfig_Limits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxURILen = 4
	_, err := ParseWithConfig([]byte("GET /abcde HTTP/1.1\r\n\r\n"), cfg)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ErrInvalidURI {
		t.Fatalf("ParseWithConfig() error = %v, want ErrInvalidURI", err)
	}
}

func TestParser_Incremental(t *testing.T) {
	p := NewParser()
	chunks := []string{"GET / HTTP", "/1.1\r\nHost", ": h\r\n\r\n"}
	var status Status
	var err error
	for _, c := range chunks {
		status, err = p.Feed([]byte(c))
		if err != nil {
			t.Fatalf("Feed(%q) error = %v", c, err)
		}
	}
	if status != StatusComplete {
		t.Fatalf("final status = %v, want StatusComplete", status)
	}
	req, err := p.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if req.URI != "/" {
		t.Errorf("URI = %q, want /", req.URI)
	}
	if p.BytesConsumed() != int64(len("GET / HTTP/1.1\r\nHost: h\r\n\r\n")) {
		t.Errorf("BytesConsumed() = %d, want %d", p.BytesConsumed(), len("GET / HTTP/1.1\r\nHost: h\r\n\r\n"))
	}
}

func TestParser_ResetForPipelining(t *testing.T) {
	p := NewParser()
	status, err := p.Feed([]byte("GET / HTTP/1.1\r\n\r\nGET /next HTTP/1.1\r\n\r\n"))
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if status != StatusComplete || !p.IsComplete() {
		t.Fatalf("first Feed() status = %v, IsComplete = %v", status, p.IsComplete())
	}
	consumed := p.BytesConsumed()

	p.Reset()
	status, err = p.Feed([]byte("GET /next HTTP/1.1\r\n\r\n"))
	if err != nil {
		t.Fatalf("second Feed() error = %v", err)
	}
	if status != StatusComplete {
		t.Fatalf("second Feed() status = %v, want StatusComplete", status)
	}
	req, err := p.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if req.URI != "/next" {
		t.Errorf("URI = %q, want /next", req.URI)
	}
	_ = consumed
}
