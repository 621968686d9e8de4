package legalese

import (
	"fmt"

	"github.com/moltinginstar/tekosu/internal/adapter"
)

// Slider bounds shared by both randomness controls.
const (
	SliderMin  = 0.0
	SliderMax  = 1.0
	SliderStep = 0.05

	DefaultTemperature = 0.1
	DefaultTopP        = 0.5
)

type samplingKind int

const (
	kindTemperature samplingKind = iota
	kindTopP
)

// SamplingMode is exactly one of Temperature(v) or TopP(v). The zero value
// is Temperature(0).
type SamplingMode struct {
	kind  samplingKind
	value float64
}

func Temperature(v float64) SamplingMode { return SamplingMode{kind: kindTemperature, value: v} }

func TopP(v float64) SamplingMode { return SamplingMode{kind: kindTopP, value: v} }

// NewSampling picks the variant selected by the nucleus-sampling toggle and
// drops the other slider's value.
func NewSampling(useTopP bool, temperature, topP float64) SamplingMode {
	if useTopP {
		return TopP(topP)
	}
	return Temperature(temperature)
}

func (s SamplingMode) IsTopP() bool { return s.kind == kindTopP }

func (s SamplingMode) Value() float64 { return s.value }

// Field is the wire name of the active parameter.
func (s SamplingMode) Field() string {
	if s.IsTopP() {
		return "top_p"
	}
	return "temperature"
}

func (s SamplingMode) String() string {
	return fmt.Sprintf("%s=%g", s.Field(), s.value)
}

// Validate rejects values outside the slider range.
func (s SamplingMode) Validate() error {
	if s.value < SliderMin || s.value > SliderMax {
		return &adapter.RequestError{
			Message: fmt.Sprintf("%g is not within [%g, %g] - '%s'", s.value, SliderMin, SliderMax, s.Field()),
		}
	}
	return nil
}

// apply sets the single wire field for the active variant and clears the other.
func (s SamplingMode) apply(req *adapter.CompletionRequest) {
	v := s.value
	req.Temperature, req.TopP = nil, nil
	if s.IsTopP() {
		req.TopP = &v
		return
	}
	req.Temperature = &v
}
