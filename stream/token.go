// Package stream implements the TokenStream streaming encoder and decoder
// engine (spec §4.3): Writer/MemoryWriter, Reader, the sub-stream scope
// stack, container (list) iteration, default-trimming, and the latched
// error discipline of spec §7.
package stream

// Token identifies a record field on the wire. Tokens are typically small,
// derived from a field's ordinal position, but any 64-bit value is legal
// except the reserved sentinel NoToken.
type Token uint64

// NoToken is the reserved sentinel meaning "no token" (spec §3).
const NoToken Token = 0xFFFF_FFFF_FFFF_FFFF
