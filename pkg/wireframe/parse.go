package wireframe

import "github.com/Leviathan856/WireFrame/internal/reqscan"

// Parser is an incremental HTTP/1.1 request parser. Create one with
// NewParser or NewParserWithConfig, feed it bytes with Feed (as many
// times as needed), and call Finish once Feed reports StatusComplete.
type Parser struct {
	eng *reqscan.Parser
}

// NewParser creates a parser with the default configuration.
func NewParser() *Parser {
	return &Parser{eng: reqscan.New()}
}

// NewParserWithConfig creates a parser with custom resource ceilings.
func NewParserWithConfig(cfg Config) *Parser {
	return &Parser{eng: reqscan.NewWithConfig(cfg)}
}

// Feed consumes as much of data as the state machine can use, returning
// StatusComplete once a full request has been recognized (query
// BytesConsumed for the pipelining boundary) or StatusIncomplete if more
// data is required. A parse error terminates the parser logically;
// further calls are not defined as meaningful.
func (p *Parser) Feed(data []byte) (Status, error) {
	return p.eng.Feed(data)
}

// Finish yields the parsed request. It fails with a ParseError of kind
// ErrIncompleteRequest if the terminal state has not been reached.
func (p *Parser) Finish() (*Request, error) {
	return p.eng.Finish()
}

// Reset restores the parser to its newborn state for reuse on the same
// persistent connection, without deallocating its buffers.
func (p *Parser) Reset() {
	p.eng.Reset()
}

// BytesConsumed returns the cumulative number of bytes consumed across
// all Feed calls.
func (p *Parser) BytesConsumed() int64 {
	return p.eng.BytesConsumed()
}

// IsComplete reports whether the terminal state has been reached.
func (p *Parser) IsComplete() bool {
	return p.eng.IsComplete()
}

// Parse is the one-shot facade: it instantiates a Parser with the default
// configuration, feeds data in full, and returns either a completed
// request or an error. Trailing bytes past the recognized request are
// discarded — for pipelining, use NewParser and Feed directly.
func Parse(data []byte) (*Request, error) {
	return ParseWithConfig(data, DefaultConfig())
}

// ParseWithConfig is Parse with custom resource ceilings.
func ParseWithConfig(data []byte, cfg Config) (*Request, error) {
	p := NewParserWithConfig(cfg)
	status, err := p.Feed(data)
	if err != nil {
		return nil, err
	}
	if status != StatusComplete {
		return nil, &ParseError{Kind: ErrIncompleteRequest}
	}
	return p.Finish()
}
