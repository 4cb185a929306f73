package wireframe

import "github.com/Leviathan856/WireFrame/internal/reqscan"

// Request is a fully parsed HTTP/1.1 request.
type Request = reqscan.Request

// Header is a single (name, value) header field. Name preserves original
// case; Value has leading/trailing optional whitespace trimmed.
type Header = reqscan.Header

// Headers is an ordered, repeatable list of header fields.
type Headers = reqscan.Headers

// Method is the closed set of recognized HTTP request methods.
type Method = reqscan.Method

// Recognized methods.
const (
	MethodGET     = reqscan.MethodGET
	MethodHEAD    = reqscan.MethodHEAD
	MethodPOST    = reqscan.MethodPOST
	MethodPUT     = reqscan.MethodPUT
	MethodDELETE  = reqscan.MethodDELETE
	MethodCONNECT = reqscan.MethodCONNECT
	MethodOPTIONS = reqscan.MethodOPTIONS
	MethodTRACE   = reqscan.MethodTRACE
	MethodPATCH   = reqscan.MethodPATCH
)

// ParseMethod recognizes a completed method token by exact match against
// the canonical uppercase tokens.
func ParseMethod(tok []byte) (Method, bool) { return reqscan.ParseMethod(tok) }

// Version is the closed set of recognized HTTP versions.
type Version = reqscan.Version

// Recognized versions.
const (
	VersionHTTP10 = reqscan.VersionHTTP10
	VersionHTTP11 = reqscan.VersionHTTP11
)

// ParseVersion recognizes a completed version token by exact match
// against the two supported HTTP/1.x tokens.
func ParseVersion(tok []byte) (Version, bool) { return reqscan.ParseVersion(tok) }

// Config holds the configurable resource ceilings enforced while parsing.
type Config = reqscan.Config

// DefaultConfig returns the configuration recognized by default.
func DefaultConfig() Config { return reqscan.DefaultConfig() }

// Status is the outcome of a Parser.Feed call.
type Status = reqscan.Status

// Feed outcomes.
const (
	StatusIncomplete = reqscan.StatusIncomplete
	StatusComplete   = reqscan.StatusComplete
)

// ParseError describes a protocol violation or resource-limit breach
// detected while parsing. Once returned, the Parser instance that
// produced it must not be reused for that request.
type ParseError = reqscan.ParseError

// ErrorKind identifies the category of a ParseError.
type ErrorKind = reqscan.ErrorKind

// Error kinds.
const (
	ErrInvalidMethod        = reqscan.ErrInvalidMethod
	ErrInvalidVersion       = reqscan.ErrInvalidVersion
	ErrInvalidURI           = reqscan.ErrInvalidURI
	ErrInvalidContentLength = reqscan.ErrInvalidContentLength
	ErrInvalidChunkSize     = reqscan.ErrInvalidChunkSize
	ErrUnexpectedByte       = reqscan.ErrUnexpectedByte
	ErrHeaderTooLarge       = reqscan.ErrHeaderTooLarge
	ErrBodyTooLarge         = reqscan.ErrBodyTooLarge
	ErrTooManyHeaders       = reqscan.ErrTooManyHeaders
	ErrIncompleteRequest    = reqscan.ErrIncompleteRequest
)
