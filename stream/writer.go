package stream

import (
	"io"

	"github.com/scottkmaxwell/tokenstream/errs"
	"github.com/scottkmaxwell/tokenstream/internal/pool"
	"github.com/scottkmaxwell/tokenstream/varint"
	"github.com/scottkmaxwell/tokenstream/wire"
)

// containerState tracks an in-progress list emission (spec §4.3.1's
// "Container scope"): the shared token every item must match, the
// declared item count, and how many have been emitted so far.
type containerState struct {
	token   Token
	count   int
	emitted int
}

// Writer serializes chunks onto a caller-supplied sink. It borrows the
// sink; it does not own or close it. Use NewMemoryWriter for a Writer that
// owns its own buffer and has no external sink.
type Writer struct {
	sink         io.Writer
	buf          *pool.ByteBuffer
	trimDefaults bool

	pending      Token
	tokenPending bool
	container    *containerState
	err          error
}

// NewWriter returns a Writer that stages chunks in an internal buffer and
// pushes them to sink on Flush/Close.
func NewWriter(sink io.Writer, opts ...Option) *Writer {
	w := &Writer{sink: sink, buf: pool.GetBuffer()}
	Apply(w, opts)
	return w
}

// NewMemoryWriter returns a Writer with no external sink; its encoded
// bytes are read back with Bytes.
func NewMemoryWriter(opts ...Option) *Writer {
	return NewWriter(nil, opts...)
}

// Err returns the first error latched into this writer, if any (spec §7:
// "bad_stream" is sticky - once set, every subsequent call is a no-op that
// returns the same error).
func (w *Writer) Err() error { return w.err }

func (w *Writer) latch(err error) error {
	if w.err == nil {
		w.err = err
	}
	return w.err
}

// Bytes returns the bytes staged so far. For a MemoryWriter this is the
// complete encoded stream once writing is done; for a sink-backed Writer
// it is only the unflushed tail.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of staged, unflushed bytes.
func (w *Writer) Len() int { return w.buf.Len() }

// Flush writes any staged bytes to the sink and clears the stage. It is a
// no-op for a MemoryWriter (sink == nil).
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.sink == nil {
		return nil
	}

	n, err := w.sink.Write(w.buf.Bytes())
	if err != nil {
		return w.latch(err)
	}
	if n != w.buf.Len() {
		return w.latch(errs.ErrIOFailure)
	}

	w.buf.Reset()
	return nil
}

// Close flushes any staged bytes and releases the internal buffer back to
// its pool. The Writer must not be used afterward.
func (w *Writer) Close() error {
	err := w.Flush()
	pool.PutBuffer(w.buf)
	w.buf = nil
	return err
}

// Finish is Close's name for a MemoryWriter: there is no sink to flush,
// just the pooled buffer to release once the caller is done with Bytes.
func (w *Writer) Finish() error { return w.Close() }

// WithTrimDefaults temporarily overrides trim-defaults, returning a
// restore function. This is the scope guard spec §4.3.1 describes for
// container emission, also usable directly by callers.
func (w *Writer) WithTrimDefaults(trim bool) func() {
	prev := w.trimDefaults
	w.trimDefaults = trim
	return func() { w.trimDefaults = prev }
}

// PutToken begins a field write: the next Put*/PutRecord/
// PutContainerElementCount call consumes it. It is an error to set a token
// while one is already pending, or to set NoToken.
func (w *Writer) PutToken(t Token) error {
	if w.err != nil {
		return w.err
	}
	if w.tokenPending {
		return w.latch(errs.ErrTokenAlreadySet)
	}
	if t == NoToken {
		return w.latch(errs.ErrSentinelToken)
	}

	w.pending = t
	w.tokenPending = true
	return nil
}

func (w *Writer) appendVarint(v uint64) {
	w.buf.MustWrite(varint.Encode(nil, v))
}

// writeChunk consumes the pending token and emits payload, honoring
// default-trimming (when not inside a container) and container token
// discipline (when inside one). isDefault is ignored inside a container:
// spec §4.3.1 disables trim-defaults locally so that default-valued items
// still occupy their slot.
func (w *Writer) writeChunk(payload []byte, isDefault bool) error {
	if w.err != nil {
		return w.err
	}
	if !w.tokenPending {
		return w.latch(errs.ErrNoTokenSet)
	}

	t := w.pending
	w.tokenPending = false

	if w.container != nil {
		if t != w.container.token {
			return w.latch(errs.ErrContainerTokenMismatch)
		}

		w.appendVarint(uint64(len(payload)))
		w.buf.MustWrite(payload)
		w.container.emitted++
		if w.container.emitted >= w.container.count {
			w.container = nil
		}
		return nil
	}

	if w.trimDefaults && isDefault {
		return nil
	}

	w.appendVarint(uint64(t))
	w.appendVarint(uint64(len(payload)))
	w.buf.MustWrite(payload)
	return nil
}

// PutContainerElementCount begins a container (list) field of n items
// sharing token t (spec §4.3.1's put_container). Counts of 0 or 1 are a
// no-op: an empty list is an absent chunk, and a single-item list
// degenerates to an ordinary chunk written by one PutToken+Put call, per
// spec §8's invariant that lists of length 0 or 1 never use the list
// prefix.
func (w *Writer) PutContainerElementCount(t Token, n int) error {
	if w.err != nil {
		return w.err
	}
	if n < 2 {
		return nil
	}
	if w.tokenPending {
		return w.latch(errs.ErrTokenAlreadySet)
	}

	w.buf.MustWriteByte(varint.ListEscape)
	w.appendVarint(uint64(n))
	w.appendVarint(uint64(t))
	w.container = &containerState{token: t, count: n}
	return nil
}

// PutRecord serializes a nested record into a scratch sub-writer and
// emits its bytes as this token's payload (spec §4.3.1's put_record).
// keepStub forces the chunk to be written (as a zero-length payload) even
// when the nested record serialized to nothing and trim-defaults would
// otherwise omit it; inside an active container keepStub is implied,
// since positional correspondence must be preserved.
func (w *Writer) PutRecord(t Token, body func(*Writer) error, keepStub bool) error {
	if err := w.PutToken(t); err != nil {
		return err
	}

	sub := NewMemoryWriter()
	sub.trimDefaults = w.trimDefaults
	if err := body(sub); err != nil {
		pool.PutBuffer(sub.buf)
		return w.latch(err)
	}

	payload := append([]byte(nil), sub.Bytes()...)
	pool.PutBuffer(sub.buf)

	return w.writeChunk(payload, len(payload) == 0 && !keepStub)
}

// PutUint64 writes the pending token's payload as an unsigned integer.
func (w *Writer) PutUint64(v, def uint64) error {
	return w.writeChunk(wire.AppendUint(nil, v), v == def)
}

// PutInt64 writes the pending token's payload as a signed integer.
func (w *Writer) PutInt64(v, def int64) error {
	return w.writeChunk(wire.AppendInt(nil, v), v == def)
}

// PutFloat64 writes the pending token's payload as a float64.
func (w *Writer) PutFloat64(v, def float64) error {
	return w.writeChunk(wire.AppendFloat64(nil, v), v == def)
}

// PutFloat32 writes the pending token's payload as a float32.
func (w *Writer) PutFloat32(v, def float32) error {
	return w.writeChunk(wire.AppendFloat32(nil, v), v == def)
}

// PutBool writes the pending token's payload as a boolean.
func (w *Writer) PutBool(v, def bool) error {
	return w.writeChunk(wire.AppendBool(nil, v), v == def)
}

// PutString writes the pending token's payload as a UTF-8 string.
func (w *Writer) PutString(v, def string) error {
	return w.writeChunk(wire.AppendString(nil, v), v == def)
}

// PutBytes writes the pending token's payload as raw bytes, with no
// default comparison (the zero value is an empty slice).
func (w *Writer) PutBytes(v []byte) error {
	return w.writeChunk(v, len(v) == 0)
}
