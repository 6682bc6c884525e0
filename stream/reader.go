package stream

import (
	"github.com/scottkmaxwell/tokenstream/errs"
	"github.com/scottkmaxwell/tokenstream/varint"
	"github.com/scottkmaxwell/tokenstream/wire"
)

// readerContainerState mirrors containerState on the decode side: the
// shared token synthesized for each remaining item, the declared count,
// and how many GetToken has already dispensed.
type readerContainerState struct {
	token Token
	count int
	index int
}

// frame is a saved enclosing scope, pushed when entering a nested
// sub-stream (GetRecord) and popped on exit (spec §4.3.2's context
// stack).
type frame struct {
	end       int
	container *readerContainerState
}

// Reader decodes chunks from an in-memory byte slice. It never mutates
// or retains ownership beyond reading; src must outlive the Reader.
type Reader struct {
	data       []byte
	offset     int
	contextEnd int

	remainingInElement int
	lastToken           Token
	tokenPushed          bool
	lastContainerCount   int

	container *readerContainerState
	stack     []frame

	err error
}

// NewReader returns a Reader positioned at the start of src.
func NewReader(src []byte) *Reader {
	return &Reader{data: src, contextEnd: len(src)}
}

// Err returns the first error latched into this reader, if any.
func (r *Reader) Err() error { return r.err }

func (r *Reader) latch(err error) error {
	if r.err == nil {
		r.err = err
	}
	return r.err
}

// EOS reports whether the current scope has no more tokens to read (spec
// §4.3.2's eos()): no pushed-back token and the cursor at the scope's
// declared end.
func (r *Reader) EOS() bool {
	if r.err != nil {
		return true
	}
	if r.tokenPushed {
		return false
	}
	return r.offset >= r.contextEnd
}

// PastEOS reports whether fewer than n bytes remain in the current scope.
func (r *Reader) PastEOS(n int) bool {
	if r.err != nil {
		return true
	}
	return r.contextEnd-r.offset < n
}

// PushToken pushes the last token returned by GetToken back onto the
// stream, so the next GetToken call returns it again. Used by dispatch
// loops that peek a token, decide it doesn't match what they want, and
// hand it back to an outer loop.
func (r *Reader) PushToken() {
	r.tokenPushed = true
}

// PeekContainerCount returns the element count of the container GetToken
// just opened, or 0 if the last GetToken call did not open one. Useful
// for preallocating a destination slice before draining it.
func (r *Reader) PeekContainerCount() int { return r.lastContainerCount }

func (r *Reader) rawVarint() (uint64, error) {
	v, n, err := varint.Decode(r.data[r.offset:r.contextEnd])
	if err != nil {
		return 0, r.latch(err)
	}

	r.offset += n
	return v, nil
}

// GetToken decodes the next field's token, or (NoToken, false, nil) at
// end of the current scope. It also eagerly decodes that field's length
// and stashes it for the subsequent Get call (spec §4.3.2 steps 4-5).
//
// Inside an active container, GetToken synthesizes the shared token for
// each remaining item without reading a token varint (each item carries
// only its length), clearing the container scope once the last item has
// been dispensed.
func (r *Reader) GetToken() (Token, bool, error) {
	if r.err != nil {
		return NoToken, false, r.err
	}
	if r.tokenPushed {
		r.tokenPushed = false
		return r.lastToken, true, nil
	}
	if r.remainingInElement > 0 {
		r.offset += r.remainingInElement
		r.remainingInElement = 0
	}

	var tok Token
	r.lastContainerCount = 0

	switch {
	case r.container != nil:
		tok = r.container.token
		r.container.index++
		if r.container.index >= r.container.count {
			r.container = nil
		}

	case r.offset >= r.contextEnd:
		return NoToken, false, nil

	case r.data[r.offset] == varint.ListEscape:
		r.offset++

		count, err := r.rawVarint()
		if err != nil {
			return NoToken, false, err
		}
		shared, err := r.rawVarint()
		if err != nil {
			return NoToken, false, err
		}
		if count < 2 {
			return NoToken, false, r.latch(errs.ErrMalformedVarint)
		}

		r.container = &readerContainerState{token: Token(shared), count: int(count), index: 1}
		r.lastContainerCount = int(count)
		tok = Token(shared)

	default:
		v, err := r.rawVarint()
		if err != nil {
			return NoToken, false, err
		}
		tok = Token(v)
	}

	length, err := r.rawVarint()
	if err != nil {
		return NoToken, false, err
	}
	if length > uint64(r.contextEnd-r.offset) {
		return NoToken, false, r.latch(errs.ErrPayloadTooLarge)
	}

	r.remainingInElement = int(length)
	r.lastToken = tok
	return tok, true, nil
}

// AbandonContainer skips the raw bytes of every item the active
// container scope has not yet dispensed and clears the scope, for a
// caller that decides to stop draining a list partway through.
func (r *Reader) AbandonContainer() error {
	if r.container == nil {
		return nil
	}

	for r.container != nil {
		if _, _, err := r.GetToken(); err != nil {
			return err
		}
		r.Skip()
	}

	return nil
}

// Skip discards the current token's payload without decoding it.
func (r *Reader) Skip() {
	r.offset += r.remainingInElement
	r.remainingInElement = 0
}

func (r *Reader) consumePayload() []byte {
	p := r.data[r.offset : r.offset+r.remainingInElement]
	r.offset += r.remainingInElement
	r.remainingInElement = 0
	return p
}

// GetUint64 decodes the current token's payload as an unsigned integer.
func (r *Reader) GetUint64() (uint64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return wire.ExtendUint(r.consumePayload()), nil
}

// GetInt64 decodes the current token's payload as a signed integer.
func (r *Reader) GetInt64() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return wire.ExtendInt(r.consumePayload()), nil
}

// GetFloat64 decodes the current token's payload as a float64.
func (r *Reader) GetFloat64() (float64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return wire.ExtendFloat64(r.consumePayload()), nil
}

// GetFloat32 decodes the current token's payload as a float32.
func (r *Reader) GetFloat32() (float32, error) {
	if r.err != nil {
		return 0, r.err
	}
	return wire.ExtendFloat32(r.consumePayload()), nil
}

// GetBool decodes the current token's payload as a boolean.
func (r *Reader) GetBool() (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return wire.ExtendBool(r.consumePayload()), nil
}

// GetString decodes the current token's payload as a UTF-8 string.
func (r *Reader) GetString() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return wire.ExtendString(r.consumePayload()), nil
}

// GetBytes returns the current token's raw payload bytes. The returned
// slice aliases the Reader's source; copy it if it must outlive further
// reads.
func (r *Reader) GetBytes() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.consumePayload(), nil
}

// EnterSub opens a nested sub-stream scope over the current token's
// payload (spec §4.3.2's sub-stream scope stack) and returns an exit
// function that restores the enclosing scope. The caller is expected to
// defer the returned function.
func (r *Reader) EnterSub() (func(), error) {
	if r.err != nil {
		return func() {}, r.err
	}

	length := r.remainingInElement
	r.remainingInElement = 0

	r.stack = append(r.stack, frame{end: r.contextEnd, container: r.container})
	r.contextEnd = r.offset + length
	r.container = nil

	return func() {
		top := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]

		r.offset = r.contextEnd
		r.contextEnd = top.end
		r.container = top.container
		r.remainingInElement = 0
	}, nil
}

// GetRecord decodes the current token's payload as a nested record by
// running body inside a freshly entered sub-stream scope, restoring the
// enclosing scope afterward regardless of how body exits.
func (r *Reader) GetRecord(body func(*Reader) error) error {
	exit, err := r.EnterSub()
	if err != nil {
		return err
	}
	defer exit()

	return body(r)
}
