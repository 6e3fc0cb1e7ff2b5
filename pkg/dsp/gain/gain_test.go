package gain

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	t.Run("UnityIsZeroDb", func(t *testing.T) {
		if LinearToDb(1.0) != 0 {
			t.Errorf("expected 0 dB, got %f", LinearToDb(1.0))
		}
		if DbToLinear(0) != 1 {
			t.Errorf("expected unity, got %f", DbToLinear(0))
		}
	})

	t.Run("HalfAmplitude", func(t *testing.T) {
		db := LinearToDb(0.5)
		if math.Abs(db-(-6.0206)) > 0.001 {
			t.Errorf("expected about -6.02 dB, got %f", db)
		}
	})

	t.Run("SilenceClamps", func(t *testing.T) {
		if LinearToDb(0) != MinDB {
			t.Error("zero amplitude should clamp to MinDB")
		}
		if DbToLinear(MinDB) != 0 {
			t.Error("MinDB should convert to silence")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, v := range []float64{0.001, 0.25, 1.0, 2.0} {
			back := DbToLinear(LinearToDb(v))
			if math.Abs(back-v) > 1e-9 {
				t.Errorf("round trip drifted for %f: %f", v, back)
			}
		}
	})
}

func TestApplyBuffer(t *testing.T) {
	buf := []float32{1, -1, 0.5}
	ApplyBuffer(buf, 0.5)
	want := []float32{0.5, -0.5, 0.25}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("sample %d: expected %f, got %f", i, want[i], buf[i])
		}
	}
}

func TestPeak(t *testing.T) {
	if p := Peak([]float32{0.1, -0.9, 0.5}); p != 0.9 {
		t.Errorf("expected peak 0.9, got %f", p)
	}
	if p := Peak(nil); p != 0 {
		t.Errorf("expected zero peak for empty buffer, got %f", p)
	}
}
