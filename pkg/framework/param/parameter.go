// Package param provides parameter handles and the hash-addressed registry
// the wrapper exposes to the host.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter is one plugin-owned parameter. The value is stored normalized
// to [0, 1] and accessed atomically, so the audio thread and the main
// thread never need a shared lock for value reads and writes. Handles must
// not be copied after registration; the registry borrows them for the
// lifetime of the instance.
type Parameter struct {
	ID        string
	Name      string
	Unit      string
	Min       float64
	Max       float64
	StepCount int32 // 0 for continuous parameters

	value    atomic.Uint64 // normalized value as float64 bits
	smoother Smoother

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Builder provides a fluent API for creating parameters.
type Builder struct {
	param             *Parameter
	defaultNormalized float64
}

// New creates a new parameter builder. The id is the stable string
// identifier the host-visible hash is derived from; it must never change
// across plugin versions or saved state will stop matching.
func New(id, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:   id,
			Name: name,
			Min:  0,
			Max:  1,
		},
	}
}

// Range sets the display min and max values.
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Default sets the default value in the display range.
func (b *Builder) Default(value float64) *Builder {
	if b.param.Max > b.param.Min {
		b.defaultNormalized = (value - b.param.Min) / (b.param.Max - b.param.Min)
	}
	return b
}

// Unit sets the unit string appended by the default formatter.
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Steps makes the parameter discrete with the given number of levels.
func (b *Builder) Steps(count int32) *Builder {
	b.param.StepCount = count
	return b
}

// Formatter sets custom display-value formatting and parsing.
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter seeded at its default.
func (b *Builder) Build() *Parameter {
	b.param.SetNormalizedValue(b.defaultNormalized)
	b.param.smoother.Reset(b.defaultNormalized)
	return b.param
}

// NormalizedValue returns the current normalized value.
func (p *Parameter) NormalizedValue() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetNormalizedValue stores a normalized value, clamped to [0, 1]. It does
// not touch the smoother; callers that want smoothing follow up with
// UpdateSmoother.
func (p *Parameter) SetNormalizedValue(value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	p.value.Store(math.Float64bits(value))
}

// StepCountOr1 returns the step count, or 1 for continuous parameters.
// Plain values as the host sees them are normalized values multiplied by
// this factor.
func (p *Parameter) StepCountOr1() int32 {
	if p.StepCount > 0 {
		return p.StepCount
	}
	return 1
}

// DisplayValue converts a normalized value into the parameter's display
// range.
func (p *Parameter) DisplayValue(normalized float64) float64 {
	return p.Min + normalized*(p.Max-p.Min)
}

// NormalizedToString formats a normalized value for the host.
func (p *Parameter) NormalizedToString(normalized float64) string {
	display := p.DisplayValue(normalized)
	if p.formatFunc != nil {
		return p.formatFunc(display)
	}
	if p.StepCount > 0 {
		return fmt.Sprintf("%.0f", display)
	}
	if p.Unit != "" {
		return fmt.Sprintf("%.2f %s", display, p.Unit)
	}
	return fmt.Sprintf("%.2f", display)
}

// StringToNormalized parses host-supplied text back into a normalized
// value. The second return value is false when the text is not
// understood.
func (p *Parameter) StringToNormalized(s string) (float64, bool) {
	var display float64
	var err error
	if p.parseFunc != nil {
		display, err = p.parseFunc(s)
	} else {
		display, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return 0, false
	}
	if p.Max <= p.Min {
		return 0, false
	}
	normalized := (display - p.Min) / (p.Max - p.Min)
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	return normalized, true
}

// UpdateSmoother re-seeds the parameter's smoother from the current
// normalized value. With reset set, the smoother jumps straight to the
// value; otherwise it ramps toward it at a rate derived from the sample
// rate.
func (p *Parameter) UpdateSmoother(sampleRate float64, reset bool) {
	target := p.NormalizedValue()
	if reset {
		p.smoother.Reset(target)
		return
	}
	p.smoother.setRateFor(sampleRate)
	p.smoother.SetTarget(target)
}

// NextSmoothed advances the smoother one sample and returns the smoothed
// normalized value. Only the audio thread may call this.
func (p *Parameter) NextSmoothed() float64 {
	return p.smoother.Next()
}
