// Package errs defines the sentinel error values returned by the tokenstream
// packages. Every error a caller might want to branch on with errors.Is is
// declared here rather than constructed ad hoc at each call site.
package errs

import "errors"

var (
	// ErrTruncated is returned when a decoder reaches the end of its context
	// while a chunk header or payload was still required.
	ErrTruncated = errors.New("tokenstream: truncated stream")

	// ErrMalformedVarint is returned when a reserved encoding appears where
	// it is not valid, such as a 0xF8 list escape read where a plain varint
	// (a length) is expected, or a list prefix declaring fewer than two
	// elements.
	ErrMalformedVarint = errors.New("tokenstream: malformed varint")

	// ErrContainerTokenMismatch is returned on write when an emitted
	// container item's token differs from the container's active token.
	ErrContainerTokenMismatch = errors.New("tokenstream: container token mismatch")

	// ErrIOFailure wraps a short read or write from the underlying byte
	// channel.
	ErrIOFailure = errors.New("tokenstream: I/O failure")

	// ErrPayloadTooLarge is returned when a declared chunk length exceeds
	// the number of bytes remaining in the enclosing context.
	ErrPayloadTooLarge = errors.New("tokenstream: payload too large for enclosing context")

	// ErrTokenAlreadySet is returned by PutToken when a pending token has
	// not yet been flushed by a matching Put call.
	ErrTokenAlreadySet = errors.New("tokenstream: token already set")

	// ErrNoTokenSet is returned by Put when no pending token was set via
	// PutToken.
	ErrNoTokenSet = errors.New("tokenstream: no pending token")

	// ErrDuplicateToken is returned when a schema.Map registers two entries
	// under the same token, or two flattened token maps overlap.
	ErrDuplicateToken = errors.New("tokenstream: duplicate token in token map")

	// ErrSentinelToken is returned when code attempts to use the reserved
	// "no token" sentinel (0xFFFFFFFFFFFFFFFF) as a real field token.
	ErrSentinelToken = errors.New("tokenstream: token is the reserved sentinel")

	// ErrBadMagic is returned by archive.Read when the leading four bytes
	// are not "TKS1".
	ErrBadMagic = errors.New("tokenstream: archive: bad magic")

	// ErrChecksumMismatch is returned by archive.Read when the decompressed
	// payload's xxHash64 does not match the checksum recorded in the
	// archive header.
	ErrChecksumMismatch = errors.New("tokenstream: archive: checksum mismatch")

	// ErrInvalidFieldName is returned by internal/collision.Tracker.Track
	// for an empty field name.
	ErrInvalidFieldName = errors.New("tokenstream: field name must not be empty")

	// ErrFieldAlreadyTracked is returned by internal/collision.Tracker.Track
	// when the same field name is tracked twice.
	ErrFieldAlreadyTracked = errors.New("tokenstream: field name already tracked")

	// ErrTokenAlreadyTracked reports that the same token was tracked twice
	// with no field name available to report a useful collision message.
	// No function in this module currently returns it.
	ErrTokenAlreadyTracked = errors.New("tokenstream: token already tracked")

	// ErrNoCodecRegistered is returned by schema.RegisteredField when no
	// schema.Register call has installed a Codec for the field's type.
	ErrNoCodecRegistered = errors.New("tokenstream: no codec registered for type")
)
