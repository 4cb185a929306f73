// Package wireframe provides a strict, incremental HTTP/1.1 request
// parser per RFC 9110 (semantics) and RFC 9112 (syntax).
//
// # Thread safety
//
// A Parser is owned exclusively by its caller; concurrent use of a single
// instance is undefined. Different instances share nothing. The parser
// performs no I/O and never blocks — callers drive all concurrency and
// all byte delivery themselves.
//
// # Parsing APIs
//
//   - Parse / ParseWithConfig — one-shot parsing of a complete buffer.
//   - NewParser / NewParserWithConfig — incremental, streaming parsing via
//     repeated Feed calls, suitable for arbitrarily fragmented input and
//     for HTTP pipelining (trailing bytes after a complete request belong
//     to the next one — see Parser.BytesConsumed).
//   - Marshal — re-encode a parsed Request back to HTTP/1.1 wire bytes.
//   - ToNode / FromNode — bridge a Request to and from a shape-core AST
//     node, for callers that want a generic structured representation.
package wireframe
