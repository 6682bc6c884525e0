package schema

import (
	"github.com/scottkmaxwell/tokenstream/errs"
	"github.com/scottkmaxwell/tokenstream/internal/options"
	"github.com/scottkmaxwell/tokenstream/stream"
)

// ScalarField registers a field whose wire type is a comparable scalar
// (uint64, int64, float64, float32, bool, string): equality with def
// suppresses emission under trim-defaults. get/put are typically a
// method expression on *stream.Reader/*stream.Writer, e.g.
// (*stream.Reader).GetUint64 and (*stream.Writer).PutUint64 - see
// Uint64Field and friends below.
func ScalarField[T any, V comparable](
	tok stream.Token,
	field func(*T) *V,
	def V,
	get func(*stream.Reader) (V, error),
	put func(*stream.Writer, V, V) error,
) options.Option[*Map[T]] {
	return Field[T](tok,
		func(r *stream.Reader, v *T) error {
			val, err := get(r)
			if err != nil {
				return err
			}

			*field(v) = val
			return nil
		},
		func(w *stream.Writer, v *T) error {
			if err := w.PutToken(tok); err != nil {
				return err
			}

			return put(w, *field(v), def)
		},
	)
}

// Uint64Field registers an unsigned integer field.
func Uint64Field[T any](tok stream.Token, field func(*T) *uint64, def uint64) options.Option[*Map[T]] {
	return ScalarField[T, uint64](tok, field, def, (*stream.Reader).GetUint64, (*stream.Writer).PutUint64)
}

// Int64Field registers a signed integer field.
func Int64Field[T any](tok stream.Token, field func(*T) *int64, def int64) options.Option[*Map[T]] {
	return ScalarField[T, int64](tok, field, def, (*stream.Reader).GetInt64, (*stream.Writer).PutInt64)
}

// Float64Field registers a float64 field.
func Float64Field[T any](tok stream.Token, field func(*T) *float64, def float64) options.Option[*Map[T]] {
	return ScalarField[T, float64](tok, field, def, (*stream.Reader).GetFloat64, (*stream.Writer).PutFloat64)
}

// Float32Field registers a float32 field.
func Float32Field[T any](tok stream.Token, field func(*T) *float32, def float32) options.Option[*Map[T]] {
	return ScalarField[T, float32](tok, field, def, (*stream.Reader).GetFloat32, (*stream.Writer).PutFloat32)
}

// BoolField registers a boolean field.
func BoolField[T any](tok stream.Token, field func(*T) *bool, def bool) options.Option[*Map[T]] {
	return ScalarField[T, bool](tok, field, def, (*stream.Reader).GetBool, (*stream.Writer).PutBool)
}

// StringField registers a UTF-8 string field.
func StringField[T any](tok stream.Token, field func(*T) *string, def string) options.Option[*Map[T]] {
	return ScalarField[T, string](tok, field, def, (*stream.Reader).GetString, (*stream.Writer).PutString)
}

// BytesField registers a raw-bytes field. There is no default comparison
// (the zero value is simply an empty/nil slice); the decoded bytes are
// copied out of the Reader's backing array.
func BytesField[T any](tok stream.Token, field func(*T) *[]byte) options.Option[*Map[T]] {
	return Field[T](tok,
		func(r *stream.Reader, v *T) error {
			val, err := r.GetBytes()
			if err != nil {
				return err
			}

			*field(v) = append([]byte(nil), val...)
			return nil
		},
		func(w *stream.Writer, v *T) error {
			if err := w.PutToken(tok); err != nil {
				return err
			}

			return w.PutBytes(*field(v))
		},
	)
}

// RecordField registers a nested-record field (spec §4.4's "nested
// base"): the field's sub-stream is framed by its own token+length chunk
// and decoded/encoded through codec, which may itself be a *Map[B], a
// CodecFunc[B], or any other Codec[B] implementation.
func RecordField[T, B any](tok stream.Token, field func(*T) *B, codec Codec[B], keepStub bool) options.Option[*Map[T]] {
	return Field[T](tok,
		func(r *stream.Reader, v *T) error {
			return r.GetRecord(func(sub *stream.Reader) error {
				return codec.ReadFrom(sub, field(v))
			})
		},
		func(w *stream.Writer, v *T) error {
			return w.PutRecord(tok, func(sub *stream.Writer) error {
				return codec.WriteTo(sub, field(v))
			}, keepStub)
		},
	)
}

// RegisteredField registers a nested-record field like RecordField, but
// resolves its codec from the external registry (spec §4.4's shape 3,
// "a dedicated helper... defined outside the type") via Lookup[B] instead
// of taking one as an argument. Building the Map fails with
// errs.ErrNoCodecRegistered if no Register[B] call has installed a codec
// for B by the time this option is applied.
func RegisteredField[T, B any](tok stream.Token, field func(*T) *B, keepStub bool) options.Option[*Map[T]] {
	return options.New(func(m *Map[T]) error {
		codec, ok := Lookup[B]()
		if !ok {
			return errs.ErrNoCodecRegistered
		}

		return options.Apply(m, RecordField(tok, field, codec, keepStub))
	})
}

// SliceField registers a container (list) field of elements of type E
// (spec §4.3.1's put_container / §4.3.2's get_container), generalized
// over any element codec pair - scalar Get*/Put* method expressions for
// a list of numbers, or a closure wrapping RecordField-style framing for
// a list of nested records.
func SliceField[T, E any](
	tok stream.Token,
	field func(*T) *[]E,
	getElem func(*stream.Reader) (E, error),
	putElem func(*stream.Writer, E) error,
) options.Option[*Map[T]] {
	return Field[T](tok,
		func(r *stream.Reader, v *T) error {
			dst := field(v)
			if n := r.PeekContainerCount(); n > 0 {
				*dst = make([]E, 0, n)
			}

			first, err := getElem(r)
			if err != nil {
				return err
			}
			*dst = append(*dst, first)

			for {
				next, ok, err := r.GetToken()
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if next != tok {
					r.PushToken()
					return nil
				}

				item, err := getElem(r)
				if err != nil {
					return err
				}
				*dst = append(*dst, item)
			}
		},
		func(w *stream.Writer, v *T) error {
			items := *field(v)
			if err := w.PutContainerElementCount(tok, len(items)); err != nil {
				return err
			}

			for _, item := range items {
				if err := w.PutToken(tok); err != nil {
					return err
				}
				if err := putElem(w, item); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
