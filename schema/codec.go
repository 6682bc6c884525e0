package schema

import (
	"reflect"
	"sync"

	"github.com/scottkmaxwell/tokenstream/stream"
)

// Codec unifies the three custom-hook shapes spec.md §4.4 describes
// (virtual read/write on the type itself, free functions, or an external
// helper for a type the caller cannot modify) behind one contract: given
// a value of type T, read or write it against a stream. A *Map[T]
// satisfies this interface directly.
type Codec[T any] interface {
	WriteTo(w *stream.Writer, v *T) error
	ReadFrom(r *stream.Reader, v *T) error
}

// CodecFunc adapts a pair of free functions into a Codec, for shape 2
// ("free functions read_from_token_stream/write_to_token_stream").
type CodecFunc[T any] struct {
	Write func(w *stream.Writer, v *T) error
	Read  func(r *stream.Reader, v *T) error
}

func (c CodecFunc[T]) WriteTo(w *stream.Writer, v *T) error { return c.Write(w, v) }
func (c CodecFunc[T]) ReadFrom(r *stream.Reader, v *T) error { return c.Read(r, v) }

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]any{}
)

// Register installs codec as the external binding for T (shape 3: "a
// dedicated helper... defined outside the type"), for types this module
// does not own and cannot attach methods to - e.g. binding a time.Time
// field by registering a Codec[time.Time] once at package init. Use
// RegisteredField to bind a struct field to the type's registered codec.
func Register[T any](codec Codec[T]) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeFor[T]()] = codec
}

// Lookup returns the externally registered Codec for T, if any. Called by
// RegisteredField at Map-build time; exported so a caller can also probe
// registration directly.
func Lookup[T any]() (Codec[T], bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, ok := registry[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}

	return c.(Codec[T]), true
}
