package record

import "github.com/scottkmaxwell/tokenstream/stream"

// RegisterUint64 binds an unsigned integer field under tok to ptr. def is
// compared for trim-defaults exactly as schema.Uint64Field compares it.
func RegisterUint64(rec *Record, tok stream.Token, ptr *uint64, def uint64) error {
	return registerScalar(rec, tok, ptr, def, (*stream.Reader).GetUint64, (*stream.Writer).PutUint64)
}

// RegisterInt64 binds a signed integer field under tok to ptr.
func RegisterInt64(rec *Record, tok stream.Token, ptr *int64, def int64) error {
	return registerScalar(rec, tok, ptr, def, (*stream.Reader).GetInt64, (*stream.Writer).PutInt64)
}

// RegisterFloat64 binds a float64 field under tok to ptr.
func RegisterFloat64(rec *Record, tok stream.Token, ptr *float64, def float64) error {
	return registerScalar(rec, tok, ptr, def, (*stream.Reader).GetFloat64, (*stream.Writer).PutFloat64)
}

// RegisterFloat32 binds a float32 field under tok to ptr.
func RegisterFloat32(rec *Record, tok stream.Token, ptr *float32, def float32) error {
	return registerScalar(rec, tok, ptr, def, (*stream.Reader).GetFloat32, (*stream.Writer).PutFloat32)
}

// RegisterBool binds a boolean field under tok to ptr.
func RegisterBool(rec *Record, tok stream.Token, ptr *bool, def bool) error {
	return registerScalar(rec, tok, ptr, def, (*stream.Reader).GetBool, (*stream.Writer).PutBool)
}

// RegisterString binds a UTF-8 string field under tok to ptr.
func RegisterString(rec *Record, tok stream.Token, ptr *string, def string) error {
	return registerScalar(rec, tok, ptr, def, (*stream.Reader).GetString, (*stream.Writer).PutString)
}

func registerScalar[V comparable](
	rec *Record,
	tok stream.Token,
	ptr *V,
	def V,
	get func(*stream.Reader) (V, error),
	put func(*stream.Writer, V, V) error,
) error {
	return register(rec, tok,
		func(r *stream.Reader) error {
			v, err := get(r)
			if err != nil {
				return err
			}

			*ptr = v
			return nil
		},
		func(w *stream.Writer) error {
			if err := w.PutToken(tok); err != nil {
				return err
			}

			return put(w, *ptr, def)
		},
	)
}

// RegisterBytes binds a raw-bytes field under tok to ptr. There is no
// default comparison; the decoded bytes are copied out of the Reader's
// backing array.
func RegisterBytes(rec *Record, tok stream.Token, ptr *[]byte) error {
	return register(rec, tok,
		func(r *stream.Reader) error {
			v, err := r.GetBytes()
			if err != nil {
				return err
			}

			*ptr = append([]byte(nil), v...)
			return nil
		},
		func(w *stream.Writer) error {
			if err := w.PutToken(tok); err != nil {
				return err
			}

			return w.PutBytes(*ptr)
		},
	)
}

// RegisterCodec binds a nested value under tok to ptr, serialized through
// codec's own sub-stream (spec §4.5's type-erased member handle wrapping
// an arbitrary serializable type). A *Record passed as both ptr and
// codec registers a nested generic record, since *Record implements
// Codec[Record] on itself.
func RegisterCodec[V any](rec *Record, tok stream.Token, ptr *V, codec Codec[V], keepStub bool) error {
	return register(rec, tok,
		func(r *stream.Reader) error {
			return r.GetRecord(func(sub *stream.Reader) error {
				return codec.ReadFrom(sub, ptr)
			})
		},
		func(w *stream.Writer) error {
			return w.PutRecord(tok, func(sub *stream.Writer) error {
				return codec.WriteTo(sub, ptr)
			}, keepStub)
		},
	)
}

// RegisterSlice binds a container (list) field under tok to ptr, with
// getElem/putElem supplying the per-element codec - mirroring
// schema.SliceField's generalization over element type.
func RegisterSlice[E any](
	rec *Record,
	tok stream.Token,
	ptr *[]E,
	getElem func(*stream.Reader) (E, error),
	putElem func(*stream.Writer, E) error,
) error {
	return register(rec, tok,
		func(r *stream.Reader) error {
			if n := r.PeekContainerCount(); n > 0 {
				*ptr = make([]E, 0, n)
			}

			first, err := getElem(r)
			if err != nil {
				return err
			}
			*ptr = append(*ptr, first)

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
				*ptr = append(*ptr, item)
			}
		},
		func(w *stream.Writer) error {
			items := *ptr
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
