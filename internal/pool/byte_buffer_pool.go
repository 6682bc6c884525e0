// Package pool provides a pooled, growable byte buffer used as the backing
// store for stream.MemoryWriter and for the scratch sub-writers
// stream.Writer opens when serializing a nested record or a container
// element.
package pool

import (
	"io"
	"sync"
)

// Default and maximum retained sizes for buffers handed out by the package
// pool. A buffer larger than StreamBufferMaxThreshold is freed instead of
// returned to the pool, so one unusually large record does not permanently
// inflate the pool's steady-state memory use.
const (
	StreamBufferDefaultSize  = 4 * 1024   // 4KiB: comfortably holds a typical record.
	StreamBufferMaxThreshold = 256 * 1024 // 256KiB
)

// ByteBuffer is a growable []byte with an amortized growth strategy tuned
// for repeated small appends (one per chunk field) rather than few large
// writes.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer's current contents. The slice is valid until the
// next mutating call.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte, growing the buffer if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// Slice returns bb.B[start:end], panicking on out-of-range indices.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: ByteBuffer.Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the buffer's length to n without reallocating, panicking
// if n exceeds the current capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: ByteBuffer.SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend grows the buffer's length by n bytes if there is sufficient spare
// capacity, returning false (and leaving the buffer unchanged) otherwise.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer's length by n bytes, reallocating first
// if the current capacity is insufficient.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can accept requiredBytes more bytes without a
// further reallocation.
//
// Growth strategy: small buffers grow by StreamBufferDefaultSize to
// minimize reallocation count; larger buffers grow by 25% of their current
// capacity to bound peak memory overhead.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := StreamBufferDefaultSize
	if cap(bb.B) > 4*StreamBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffer instances of a given default size,
// discarding (rather than retaining) any buffer that grew past
// maxThreshold so a single oversized record cannot bloat the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize,
// discarding returned buffers larger than maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)

// GetBuffer retrieves a ByteBuffer from the package-wide default pool.
func GetBuffer() *ByteBuffer { return defaultPool.Get() }

// PutBuffer returns a ByteBuffer to the package-wide default pool.
func PutBuffer(bb *ByteBuffer) { defaultPool.Put(bb) }
