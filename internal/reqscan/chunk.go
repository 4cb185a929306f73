package reqscan

import "strconv"

// maxChunkSizeHexDigits is the longest hex string that can represent a
// uint64 without overflow. Rejecting anything longer, ahead of the
// numeric parse, rules out silent wraparound on pathologically long
// chunk-size tokens.
const maxChunkSizeHexDigits = 16

// parseChunkSizeHex parses an accumulated chunk-size token (hex digits
// only; the parser stops accumulating at ';' or CR) as a hexadecimal
// uint64. An empty token or anything that isn't a hex integer is an
// ErrInvalidChunkSize; a token long enough to risk uint64 overflow is
// rejected the same way, ahead of the parse.
func parseChunkSizeHex(tok []byte) (uint64, error) {
	if len(tok) == 0 {
		return 0, errInvalidChunkSize("")
	}
	if len(tok) > maxChunkSizeHexDigits {
		return 0, errInvalidChunkSize(string(tok))
	}
	n, err := strconv.ParseUint(string(tok), 16, 64)
	if err != nil {
		return 0, errInvalidChunkSize(string(tok))
	}
	return n, nil
}
