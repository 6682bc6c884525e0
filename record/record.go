// Package record implements TokenStream's dynamic generic record (spec
// §4.5): a runtime, type-erased token -> value mapping built by
// registering individual fields against already-allocated Go variables,
// rather than a compile-time schema.Map[T] bound to a single struct type.
package record

import (
	"sort"

	"github.com/scottkmaxwell/tokenstream/errs"
	"github.com/scottkmaxwell/tokenstream/stream"
)

// Codec unifies how a Record reads/writes a nested value; it has the
// same shape as schema.Codec[V], so a *schema.Map[V] or any other
// schema.Codec[V] implementation satisfies it without this package
// importing schema.
type Codec[V any] interface {
	WriteTo(w *stream.Writer, v *V) error
	ReadFrom(r *stream.Reader, v *V) error
}

// anyField is the type-erased member handle spec §4.5 describes: it owns
// (via closure capture, not a stored pointer field) the get/put behavior
// for one registered value, regardless of that value's concrete type.
type anyField struct {
	get func(r *stream.Reader) error
	put func(w *stream.Writer) error
}

// Record is a dynamic generic record: an ordered, token-unique mapping
// from token to a registered field. A zero-value Record is not usable;
// construct one with New.
//
// Record itself satisfies Codec[Record] (WriteTo/ReadFrom both ignore
// their *Record argument and operate on the receiver's own registered
// fields), so a *Record is a legal nested field value inside a
// schema.Map or another Record - spec §4.5's "a generic record is itself
// a legal nested field value."
type Record struct {
	order  []stream.Token
	fields map[stream.Token]*anyField
}

// New returns an empty Record ready for field registration.
func New() *Record {
	return &Record{fields: make(map[stream.Token]*anyField)}
}

func register(rec *Record, tok stream.Token, get func(*stream.Reader) error, put func(*stream.Writer) error) error {
	if _, exists := rec.fields[tok]; exists {
		return errs.ErrDuplicateToken
	}

	rec.fields[tok] = &anyField{get: get, put: put}
	rec.order = append(rec.order, tok)
	return nil
}

// WriteTo serializes every registered field in ascending token order
// (spec §4.5: "Writing a generic record iterates in token order").
func (rec *Record) WriteTo(w *stream.Writer, _ *Record) error {
	order := append([]stream.Token(nil), rec.order...)
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	for _, tok := range order {
		if err := rec.fields[tok].put(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrom walks the stream: decode a token, look up its registered
// field, invoke its get; an unrecognized token is silently skipped
// (spec §4.5: "requires the caller to pre-register every field they
// care to receive").
func (rec *Record) ReadFrom(r *stream.Reader, _ *Record) error {
	for {
		tok, ok, err := r.GetToken()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		f, found := rec.fields[tok]
		if !found {
			r.Skip()
			continue
		}

		if err := f.get(r); err != nil {
			return err
		}
	}
}
