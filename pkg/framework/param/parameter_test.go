package param

import (
	"math"
	"testing"
)

func TestParameter(t *testing.T) {
	t.Run("BuilderSeedsDefault", func(t *testing.T) {
		p := New("gain", "Gain").Range(-60, 12).Default(0).Unit("dB").Build()
		want := 60.0 / 72.0
		if math.Abs(p.NormalizedValue()-want) > 1e-9 {
			t.Errorf("expected default %f, got %f", want, p.NormalizedValue())
		}
	})

	t.Run("SetClampsToUnitRange", func(t *testing.T) {
		p := New("x", "X").Build()
		p.SetNormalizedValue(1.5)
		if p.NormalizedValue() != 1.0 {
			t.Errorf("expected clamp to 1, got %f", p.NormalizedValue())
		}
		p.SetNormalizedValue(-0.5)
		if p.NormalizedValue() != 0.0 {
			t.Errorf("expected clamp to 0, got %f", p.NormalizedValue())
		}
	})

	t.Run("StepCountOr1", func(t *testing.T) {
		continuous := New("a", "A").Build()
		if continuous.StepCountOr1() != 1 {
			t.Error("continuous parameter should report a step count of 1")
		}
		stepped := New("b", "B").Steps(4).Build()
		if stepped.StepCountOr1() != 4 {
			t.Error("stepped parameter should report its step count")
		}
	})

	t.Run("DisplayValue", func(t *testing.T) {
		p := New("gain", "Gain").Range(-60, 12).Build()
		if p.DisplayValue(0) != -60 || p.DisplayValue(1) != 12 {
			t.Error("display range endpoints wrong")
		}
	})

	t.Run("DefaultFormatting", func(t *testing.T) {
		p := New("gain", "Gain").Range(-60, 12).Unit("dB").Build()
		if got := p.NormalizedToString(1.0); got != "12.00 dB" {
			t.Errorf("expected \"12.00 dB\", got %q", got)
		}
		stepped := New("mode", "Mode").Range(0, 2).Steps(2).Build()
		if got := stepped.NormalizedToString(1.0); got != "2" {
			t.Errorf("expected \"2\", got %q", got)
		}
	})

	t.Run("CustomFormatter", func(t *testing.T) {
		p := New("on", "On").Formatter(
			func(v float64) string {
				if v > 0.5 {
					return "On"
				}
				return "Off"
			},
			func(s string) (float64, error) {
				if s == "On" {
					return 1, nil
				}
				return 0, nil
			},
		).Build()
		if p.NormalizedToString(1) != "On" {
			t.Error("custom formatter not used")
		}
		if v, ok := p.StringToNormalized("On"); !ok || v != 1 {
			t.Error("custom parser not used")
		}
	})

	t.Run("ParseRoundTrip", func(t *testing.T) {
		p := New("gain", "Gain").Range(-60, 12).Build()
		v, ok := p.StringToNormalized("-6")
		if !ok {
			t.Fatal("parsing a plain number should succeed")
		}
		if math.Abs(p.DisplayValue(v)-(-6)) > 1e-9 {
			t.Errorf("round trip drifted: got %f", p.DisplayValue(v))
		}
		if _, ok := p.StringToNormalized("loud"); ok {
			t.Error("nonsense text should not parse")
		}
	})

	t.Run("SmootherRampsAfterUpdate", func(t *testing.T) {
		p := New("gain", "Gain").Default(0).Build()
		p.UpdateSmoother(48000, true)

		p.SetNormalizedValue(1.0)
		p.UpdateSmoother(48000, false)

		first := p.NextSmoothed()
		if first >= 1.0 {
			t.Error("smoother should ramp, not jump")
		}
		prev := first
		for i := 0; i < 48000; i++ {
			v := p.NextSmoothed()
			if v < prev {
				t.Fatal("smoothed value went backwards")
			}
			prev = v
		}
		if prev != 1.0 {
			t.Errorf("expected to reach target within a second, got %f", prev)
		}
	})

	t.Run("SmootherResetJumps", func(t *testing.T) {
		p := New("gain", "Gain").Default(0).Build()
		p.SetNormalizedValue(0.7)
		p.UpdateSmoother(48000, true)
		if p.NextSmoothed() != 0.7 {
			t.Error("reset should snap the smoother to the current value")
		}
	})
}
