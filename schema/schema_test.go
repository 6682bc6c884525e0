package schema_test

import (
	"testing"

	"github.com/scottkmaxwell/tokenstream/errs"
	"github.com/scottkmaxwell/tokenstream/schema"
	"github.com/scottkmaxwell/tokenstream/stream"
	"github.com/stretchr/testify/require"
)

type date struct {
	Day   uint64
	Month uint64
	Year  uint64
}

func dateMap(t *testing.T) *schema.Map[date] {
	t.Helper()
	m, err := schema.NewMap[date](
		schema.Uint64Field(0x00, func(d *date) *uint64 { return &d.Day }, 0),
		schema.Uint64Field(0x01, func(d *date) *uint64 { return &d.Month }, 0),
		schema.Uint64Field(0x02, func(d *date) *uint64 { return &d.Year }, 0),
	)
	require.NoError(t, err)
	return m
}

func TestMap_ScenarioE_NestedRecordRoundTrip(t *testing.T) {
	dm := dateMap(t)

	type parent struct {
		Born date
	}

	pm, err := schema.NewMap[parent](
		schema.RecordField(0x03, func(p *parent) *date { return &p.Born }, dm, false),
	)
	require.NoError(t, err)

	w := stream.NewMemoryWriter()
	require.NoError(t, pm.WriteTo(w, &parent{Born: date{Day: 27, Month: 3, Year: 1966}}))
	require.Equal(t, []byte{
		0x03, 0x0A,
		0x00, 0x01, 0x1B,
		0x01, 0x01, 0x03,
		0x02, 0x02, 0x07, 0xAE,
	}, w.Bytes())

	var out parent
	r := stream.NewReader(w.Bytes())
	require.NoError(t, pm.ReadFrom(r, &out))
	require.Equal(t, date{Day: 27, Month: 3, Year: 1966}, out)
}

func TestMap_DuplicateTokenErrors(t *testing.T) {
	_, err := schema.NewMap[date](
		schema.Uint64Field(0x00, func(d *date) *uint64 { return &d.Day }, 0),
		schema.Uint64Field(0x00, func(d *date) *uint64 { return &d.Month }, 0),
	)
	require.Error(t, err)
}

func TestMap_TrimDefaultsOmitsField(t *testing.T) {
	m := dateMap(t)

	w := stream.NewMemoryWriter(stream.WithTrimDefaults(true))
	require.NoError(t, m.WriteTo(w, &date{Day: 1, Month: 0, Year: 0}))

	r := stream.NewReader(w.Bytes())
	var out date
	out.Month = 99 // pre-existing value must survive an absent field
	require.NoError(t, m.ReadFrom(r, &out))
	require.Equal(t, uint64(1), out.Day)
	require.Equal(t, uint64(99), out.Month, "absent field leaves destination untouched")
}

func TestMap_UnknownTokenIsSkipped(t *testing.T) {
	m := dateMap(t)

	w := stream.NewMemoryWriter()
	require.NoError(t, w.PutToken(0x77))
	require.NoError(t, w.PutUint64(12345, 0))
	require.NoError(t, m.WriteTo(w, &date{Day: 5}))

	var out date
	require.NoError(t, m.ReadFrom(stream.NewReader(w.Bytes()), &out))
	require.Equal(t, uint64(5), out.Day)
}

type withScores struct {
	Scores []uint64
}

func scoresMap(t *testing.T) *schema.Map[withScores] {
	t.Helper()
	m, err := schema.NewMap[withScores](
		schema.SliceField(0x20,
			func(w *withScores) *[]uint64 { return &w.Scores },
			(*stream.Reader).GetUint64,
			func(w *stream.Writer, v uint64) error { return w.PutUint64(v, 0) },
		),
	)
	require.NoError(t, err)
	return m
}

func TestMap_ScenarioD_SliceFieldRoundTrip(t *testing.T) {
	m := scoresMap(t)

	w := stream.NewMemoryWriter()
	require.NoError(t, m.WriteTo(w, &withScores{Scores: []uint64{1, 2, 3}}))
	require.Equal(t, []byte{0xF8, 0x03, 0x20, 0x01, 0x01, 0x01, 0x02, 0x01, 0x03}, w.Bytes())

	var out withScores
	require.NoError(t, m.ReadFrom(stream.NewReader(w.Bytes()), &out))
	require.Equal(t, []uint64{1, 2, 3}, out.Scores)
}

func TestMap_SliceField_EmptyIsAbsent(t *testing.T) {
	m := scoresMap(t)

	w := stream.NewMemoryWriter()
	require.NoError(t, m.WriteTo(w, &withScores{}))
	require.Empty(t, w.Bytes())
}

func TestMap_SliceField_SingleElementDegenerates(t *testing.T) {
	m := scoresMap(t)

	w := stream.NewMemoryWriter()
	require.NoError(t, m.WriteTo(w, &withScores{Scores: []uint64{42}}))
	require.NotContains(t, w.Bytes(), byte(0xF8))

	var out withScores
	require.NoError(t, m.ReadFrom(stream.NewReader(w.Bytes()), &out))
	require.Equal(t, []uint64{42}, out.Scores)
}

type coords struct {
	Lat  float64
	Long float64
}

func TestMap_RegisteredFieldRoundTrip(t *testing.T) {
	schema.Register[coords](schema.CodecFunc[coords]{
		Write: func(w *stream.Writer, v *coords) error {
			if err := w.PutToken(0x00); err != nil {
				return err
			}
			if err := w.PutFloat64(v.Lat, 0); err != nil {
				return err
			}
			if err := w.PutToken(0x01); err != nil {
				return err
			}
			return w.PutFloat64(v.Long, 0)
		},
		Read: func(r *stream.Reader, v *coords) error {
			for {
				tok, ok, err := r.GetToken()
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				switch tok {
				case 0x00:
					if v.Lat, err = r.GetFloat64(); err != nil {
						return err
					}
				case 0x01:
					if v.Long, err = r.GetFloat64(); err != nil {
						return err
					}
				default:
					r.Skip()
				}
			}
		},
	})

	type waypoint struct {
		Name     string
		Location coords
	}

	wm, err := schema.NewMap[waypoint](
		schema.StringField(0x00, func(w *waypoint) *string { return &w.Name }, ""),
		schema.RegisteredField(0x01, func(w *waypoint) *coords { return &w.Location }, false),
	)
	require.NoError(t, err)

	w := stream.NewMemoryWriter()
	in := waypoint{Name: "camp", Location: coords{Lat: 46.5, Long: -121.75}}
	require.NoError(t, wm.WriteTo(w, &in))

	var out waypoint
	require.NoError(t, wm.ReadFrom(stream.NewReader(w.Bytes()), &out))
	require.Equal(t, in, out)
}

func TestMap_RegisteredField_NoCodecRegistered(t *testing.T) {
	type unregistered struct {
		X uint64
	}
	type holder struct {
		Field unregistered
	}

	_, err := schema.NewMap[holder](
		schema.RegisteredField(0x00, func(h *holder) *unregistered { return &h.Field }, false),
	)
	require.ErrorIs(t, err, errs.ErrNoCodecRegistered)
}

func TestMap_FlattenMergesBaseEntries(t *testing.T) {
	type base struct {
		ID uint64
	}
	type derived struct {
		base
		Name string
	}

	bm, err := schema.NewMap[base](
		schema.Uint64Field(0x00, func(b *base) *uint64 { return &b.ID }, 0),
	)
	require.NoError(t, err)

	dm, err := schema.NewMap[derived](
		schema.Flatten(bm, func(d *derived) *base { return &d.base }),
		schema.StringField(0x01, func(d *derived) *string { return &d.Name }, ""),
	)
	require.NoError(t, err)

	w := stream.NewMemoryWriter()
	require.NoError(t, dm.WriteTo(w, &derived{base: base{ID: 7}, Name: "x"}))
	require.Equal(t, []byte{0x00, 0x01, 0x07, 0x01, 0x01, 0x78}, w.Bytes(), "flattening adds no sub-stream framing around base's field")

	var out derived
	require.NoError(t, dm.ReadFrom(stream.NewReader(w.Bytes()), &out))
	require.Equal(t, uint64(7), out.ID)
	require.Equal(t, "x", out.Name)
}
