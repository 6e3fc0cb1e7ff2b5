package param

// smoothingTimeMs is how long a host-driven value change takes to settle.
const smoothingTimeMs = 20.0

// Smoother ramps a normalized value toward a target to prevent zipper
// noise. It is driven one sample at a time from the audio thread; targets
// are set from whichever thread performed the parameter update, so the
// fields the audio thread mutates (current) and the control side mutates
// (target, step) are only ever exchanged between blocks, matching the
// once-per-block event resolution of the wrapper.
type Smoother struct {
	current     float64
	target      float64
	step        float64
	isSmoothing bool
}

// SetTarget sets the value the smoother ramps toward.
func (s *Smoother) SetTarget(target float64) {
	s.target = target
	if s.step == 0 {
		// No rate known yet; jump immediately.
		s.current = target
		return
	}
	if target == s.current {
		s.isSmoothing = false
		return
	}
	s.isSmoothing = true
}

// setRateFor derives the per-sample step from the sample rate.
func (s *Smoother) setRateFor(sampleRate float64) {
	samples := sampleRate * smoothingTimeMs / 1000.0
	if samples <= 0 {
		s.step = 0
		return
	}
	s.step = 1.0 / samples
}

// Next advances the ramp one sample and returns the current value.
func (s *Smoother) Next() float64 {
	if !s.isSmoothing {
		return s.current
	}

	if s.target > s.current {
		s.current += s.step
		if s.current >= s.target {
			s.current = s.target
			s.isSmoothing = false
		}
	} else {
		s.current -= s.step
		if s.current <= s.target {
			s.current = s.target
			s.isSmoothing = false
		}
	}
	return s.current
}

// Reset forces the smoother to a value with no ramp.
func (s *Smoother) Reset(value float64) {
	s.current = value
	s.target = value
	s.isSmoothing = false
}

// IsSmoothing reports whether the smoother is still ramping.
func (s *Smoother) IsSmoothing() bool {
	return s.isSmoothing
}

// Current returns the present smoothed value without advancing the ramp.
func (s *Smoother) Current() float64 {
	return s.current
}
