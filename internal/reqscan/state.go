package reqscan

// state is the parser's current position in the closed state machine.
// States form a closed set, expressed as a tagged switch — no dynamic
// dispatch is required or appropriate.
type state uint8

const (
	stateMethod state = iota
	stateURI
	stateVersion
	stateVersionLF

	stateHeaderStart
	stateHeaderName
	stateHeaderValueOWS
	stateHeaderValue
	stateHeaderValueLF

	stateEndHeadersLF

	stateBody

	stateChunkSize
	stateChunkExt
	stateChunkSizeLF
	stateChunkData
	stateChunkDataCR
	stateChunkDataLF

	stateTrailerStart
	stateTrailerField
	stateTrailerFieldLF
	stateTrailerEndLF

	stateComplete
)
