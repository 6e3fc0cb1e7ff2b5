package state

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/justyntemme/clapgo/pkg/framework/param"
)

func testRegistry(t *testing.T) *param.Registry {
	t.Helper()
	r, err := param.NewRegistry(
		[]string{"gain", "mix"},
		map[string]*param.Parameter{
			"gain": param.New("gain", "Gain").Range(-60, 12).Default(0).Build(),
			"mix":  param.New("mix", "Mix").Default(1).Build(),
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSaveLoad(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		src := testRegistry(t)
		gain, _ := src.Lookup(param.HashID("gain"))
		mix, _ := src.Lookup(param.HashID("mix"))
		gain.SetNormalizedValue(0.25)
		mix.SetNormalizedValue(0.75)

		var buf bytes.Buffer
		if err := Save(&buf, src, true); err != nil {
			t.Fatal(err)
		}

		dst := testRegistry(t)
		bypassed, err := Load(&buf, dst)
		if err != nil {
			t.Fatal(err)
		}
		if !bypassed {
			t.Error("bypass flag lost")
		}
		if g, _ := dst.Lookup(param.HashID("gain")); g.NormalizedValue() != 0.25 {
			t.Errorf("gain not restored: %f", g.NormalizedValue())
		}
		if m, _ := dst.Lookup(param.HashID("mix")); m.NormalizedValue() != 0.75 {
			t.Errorf("mix not restored: %f", m.NormalizedValue())
		}
	})

	t.Run("SkipsUnknownHashes", func(t *testing.T) {
		// A state saved by a build with an extra "drive" parameter must
		// still load into a registry without it.
		wide, err := param.NewRegistry(
			[]string{"gain", "mix", "drive"},
			map[string]*param.Parameter{
				"gain":  param.New("gain", "Gain").Range(-60, 12).Default(0).Build(),
				"mix":   param.New("mix", "Mix").Default(1).Build(),
				"drive": param.New("drive", "Drive").Default(0.5).Build(),
			},
		)
		if err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := Save(&buf, wide, false); err != nil {
			t.Fatal(err)
		}

		narrow := testRegistry(t)
		if _, err := Load(&buf, narrow); err != nil {
			t.Fatalf("unknown hash should be skipped, got %v", err)
		}
		if m, _ := narrow.Lookup(param.HashID("mix")); m.NormalizedValue() != 1 {
			t.Error("known parameter not restored alongside unknown one")
		}
	})

	t.Run("RejectsForeignData", func(t *testing.T) {
		r := testRegistry(t)
		if _, err := Load(bytes.NewReader([]byte("VSTPRESETxxxx")), r); err == nil {
			t.Error("foreign stream must be rejected")
		}
	})

	t.Run("RejectsNewerVersion", func(t *testing.T) {
		var buf bytes.Buffer
		buf.Write(magic[:])
		binary.Write(&buf, binary.LittleEndian, uint32(99))
		buf.WriteByte(0)
		binary.Write(&buf, binary.LittleEndian, uint32(0))

		r := testRegistry(t)
		if _, err := Load(&buf, r); err == nil {
			t.Error("a future format version must be rejected")
		}
	})

	t.Run("TruncatedStream", func(t *testing.T) {
		src := testRegistry(t)
		var buf bytes.Buffer
		if err := Save(&buf, src, false); err != nil {
			t.Fatal(err)
		}
		truncated := buf.Bytes()[:buf.Len()-4]

		dst := testRegistry(t)
		if _, err := Load(bytes.NewReader(truncated), dst); err == nil {
			t.Error("truncated stream must fail to load")
		}
	})
}
