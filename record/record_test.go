package record_test

import (
	"testing"

	"github.com/scottkmaxwell/tokenstream/record"
	"github.com/scottkmaxwell/tokenstream/schema"
	"github.com/scottkmaxwell/tokenstream/stream"
	"github.com/stretchr/testify/require"
)

func TestRecord_ScalarRoundTrip(t *testing.T) {
	var name string
	var age uint64

	in := record.New()
	require.NoError(t, record.RegisterString(in, 0x01, &name, ""))
	require.NoError(t, record.RegisterUint64(in, 0x02, &age, 0))

	name, age = "Joe", 42

	w := stream.NewMemoryWriter()
	require.NoError(t, in.WriteTo(w, nil))

	var outName string
	var outAge uint64
	out := record.New()
	require.NoError(t, record.RegisterString(out, 0x01, &outName, ""))
	require.NoError(t, record.RegisterUint64(out, 0x02, &outAge, 0))
	require.NoError(t, out.ReadFrom(stream.NewReader(w.Bytes()), nil))

	require.Equal(t, "Joe", outName)
	require.Equal(t, uint64(42), outAge)
}

func TestRecord_WritesInAscendingTokenOrder(t *testing.T) {
	var a, b, c uint64 = 1, 2, 3

	rec := record.New()
	require.NoError(t, record.RegisterUint64(rec, 0x05, &c, 0))
	require.NoError(t, record.RegisterUint64(rec, 0x01, &a, 0))
	require.NoError(t, record.RegisterUint64(rec, 0x03, &b, 0))

	w := stream.NewMemoryWriter()
	require.NoError(t, rec.WriteTo(w, nil))
	require.Equal(t, []byte{
		0x01, 0x01, 0x01,
		0x03, 0x01, 0x02,
		0x05, 0x01, 0x03,
	}, w.Bytes())
}

func TestRecord_NestedRecordViaRegisterCodec(t *testing.T) {
	var innerName string

	inner := record.New()
	require.NoError(t, record.RegisterString(inner, 0x01, &innerName, ""))
	innerName = "nested"

	outer := record.New()
	require.NoError(t, record.RegisterCodec[record.Record](outer, 0x09, inner, inner, false))

	w := stream.NewMemoryWriter()
	require.NoError(t, outer.WriteTo(w, nil))

	var decodedName string
	decodedInner := record.New()
	require.NoError(t, record.RegisterString(decodedInner, 0x01, &decodedName, ""))

	decodedOuter := record.New()
	require.NoError(t, record.RegisterCodec[record.Record](decodedOuter, 0x09, decodedInner, decodedInner, false))
	require.NoError(t, decodedOuter.ReadFrom(stream.NewReader(w.Bytes()), nil))

	require.Equal(t, "nested", decodedName)
}

type point struct {
	X uint64
	Y uint64
}

func pointMap(t *testing.T) *schema.Map[point] {
	t.Helper()
	m, err := schema.NewMap[point](
		schema.Uint64Field(0x00, func(p *point) *uint64 { return &p.X }, 0),
		schema.Uint64Field(0x01, func(p *point) *uint64 { return &p.Y }, 0),
	)
	require.NoError(t, err)
	return m
}

func TestRecord_NestedSchemaMapViaRegisterCodec(t *testing.T) {
	pm := pointMap(t)
	loc := point{X: 3, Y: 4}

	rec := record.New()
	require.NoError(t, record.RegisterCodec(rec, 0x0A, &loc, pm, false))

	w := stream.NewMemoryWriter()
	require.NoError(t, rec.WriteTo(w, nil))

	var out point
	decoded := record.New()
	require.NoError(t, record.RegisterCodec(decoded, 0x0A, &out, pm, false))
	require.NoError(t, decoded.ReadFrom(stream.NewReader(w.Bytes()), nil))

	require.Equal(t, point{X: 3, Y: 4}, out)
}

func TestRecord_SliceFieldRoundTrip(t *testing.T) {
	var scores []uint64

	rec := record.New()
	require.NoError(t, record.RegisterSlice(rec, 0x20, &scores,
		(*stream.Reader).GetUint64,
		func(w *stream.Writer, v uint64) error { return w.PutUint64(v, 0) },
	))
	scores = []uint64{1, 2, 3}

	w := stream.NewMemoryWriter()
	require.NoError(t, rec.WriteTo(w, nil))
	require.Equal(t, []byte{0xF8, 0x03, 0x20, 0x01, 0x01, 0x01, 0x02, 0x01, 0x03}, w.Bytes())

	var out []uint64
	decoded := record.New()
	require.NoError(t, record.RegisterSlice(decoded, 0x20, &out,
		(*stream.Reader).GetUint64,
		func(w *stream.Writer, v uint64) error { return w.PutUint64(v, 0) },
	))
	require.NoError(t, decoded.ReadFrom(stream.NewReader(w.Bytes()), nil))
	require.Equal(t, []uint64{1, 2, 3}, out)
}

func TestRecord_DuplicateTokenErrors(t *testing.T) {
	var a, b uint64

	rec := record.New()
	require.NoError(t, record.RegisterUint64(rec, 0x01, &a, 0))
	require.Error(t, record.RegisterUint64(rec, 0x01, &b, 0))
}

func TestRecord_UnknownTokenIsSkipped(t *testing.T) {
	var known uint64

	w := stream.NewMemoryWriter()
	require.NoError(t, w.PutToken(0x77))
	require.NoError(t, w.PutUint64(999, 0))
	require.NoError(t, w.PutToken(0x01))
	require.NoError(t, w.PutUint64(5, 0))

	rec := record.New()
	require.NoError(t, record.RegisterUint64(rec, 0x01, &known, 0))
	require.NoError(t, rec.ReadFrom(stream.NewReader(w.Bytes()), nil))

	require.Equal(t, uint64(5), known)
}

func TestRecord_BytesFieldRoundTrip(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	rec := record.New()
	require.NoError(t, record.RegisterBytes(rec, 0x30, &payload))

	w := stream.NewMemoryWriter()
	require.NoError(t, rec.WriteTo(w, nil))

	var out []byte
	decoded := record.New()
	require.NoError(t, record.RegisterBytes(decoded, 0x30, &out))
	require.NoError(t, decoded.ReadFrom(stream.NewReader(w.Bytes()), nil))

	require.Equal(t, payload, out)
}
