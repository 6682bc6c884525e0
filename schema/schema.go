// Package schema implements TokenStream's static schema binding (spec
// §4.4): an ordered, token-unique map from token to get/put accessors for
// one struct type T, built with the same generic functional-options
// composition style package internal/options uses for configuring a
// single value, here repurposed for describing a struct's wire layout
// field by field.
package schema

import (
	"github.com/scottkmaxwell/tokenstream/errs"
	"github.com/scottkmaxwell/tokenstream/internal/options"
	"github.com/scottkmaxwell/tokenstream/stream"
)

// Entry is one token map entry: a token plus the decode/encode closures
// for that field. get is invoked once the Map's decode loop has already
// consumed the token and length for this occurrence; put is responsible
// for calling Writer.PutToken itself before writing the value.
type Entry[T any] struct {
	Token stream.Token
	get   func(*stream.Reader, *T) error
	put   func(*stream.Writer, *T) error
}

// Map is an ordered, token-unique token map for struct type T. A Map
// implements Codec[T] directly, so it can be nested as any other field's
// type via RecordField.
type Map[T any] struct {
	entries []*Entry[T]
	byToken map[stream.Token]*Entry[T]
}

// NewMap builds a Map by applying field/composition options in order.
// Each option is produced by Field, a Scalar*Field helper, SliceField,
// RecordField, or Flatten. A duplicate token across any combination of
// options is reported as errs.ErrDuplicateToken.
func NewMap[T any](opts ...options.Option[*Map[T]]) (*Map[T], error) {
	m := &Map[T]{byToken: make(map[stream.Token]*Entry[T])}
	if err := options.Apply(m, opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// Field registers one field's token and get/put accessors. It is the
// primitive every other helper in this package (ScalarField, SliceField,
// RecordField) builds on.
func Field[T any](tok stream.Token, get func(*stream.Reader, *T) error, put func(*stream.Writer, *T) error) options.Option[*Map[T]] {
	return options.New(func(m *Map[T]) error {
		if _, exists := m.byToken[tok]; exists {
			return errs.ErrDuplicateToken
		}

		e := &Entry[T]{Token: tok, get: get, put: put}
		m.entries = append(m.entries, e)
		m.byToken[tok] = e
		return nil
	})
}

// Flatten merges base's entries into the Map being built, projected onto
// T through selector (spec §4.4's "flattened base": the derived map is
// the union of the base map and the derived entries, tokens must not
// overlap, no extra framing - unlike RecordField, which frames the base
// in its own sub-stream chunk). selector typically returns the address
// of an embedded base-type field, e.g. func(d *Derived) *Base { return
// &d.Base }.
func Flatten[T, B any](base *Map[B], selector func(*T) *B) options.Option[*Map[T]] {
	return options.New(func(m *Map[T]) error {
		for _, e := range base.entries {
			if _, exists := m.byToken[e.Token]; exists {
				return errs.ErrDuplicateToken
			}

			baseGet, basePut := e.get, e.put
			m.entries = append(m.entries, &Entry[T]{
				Token: e.Token,
				get:   func(r *stream.Reader, v *T) error { return baseGet(r, selector(v)) },
				put:   func(w *stream.Writer, v *T) error { return basePut(w, selector(v)) },
			})
			m.byToken[e.Token] = m.entries[len(m.entries)-1]
		}
		return nil
	})
}

// WriteTo encodes src by emitting every entry in declaration order
// (spec §4.3.1's "fields are emitted in token-map order").
func (m *Map[T]) WriteTo(w *stream.Writer, src *T) error {
	for _, e := range m.entries {
		if err := e.put(w, src); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrom decodes dst by walking the stream: decode a token, look it up,
// invoke its accessor if found, else skip the payload. The parser is
// order-independent (spec §4.3.1's "Ordering" note), except inside
// container/record fields whose own accessors handle ordering.
func (m *Map[T]) ReadFrom(r *stream.Reader, dst *T) error {
	for {
		tok, ok, err := r.GetToken()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		e, found := m.byToken[tok]
		if !found {
			r.Skip()
			continue
		}

		if err := e.get(r, dst); err != nil {
			return err
		}
	}
}
