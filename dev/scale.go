package dev

type number interface {
	float32 | float64
}

// Approximator converts raw ADC counts into an engineering value.
type Approximator[T number] interface {
	Convert(uint16) T
}

// UnitScaler maps a raw ADC reading onto [0,1] by dividing by the span of
// a calibrated range and clamping. The zero-offset full-scale form is the
// common case; a two-point form covers sensors that never reach the rails.
type UnitScaler[T number] struct {
	lo   uint16
	span T
}

// NewUnitScaler creates a scaler over the full range [0, fullScale].
func NewUnitScaler[T number](fullScale uint16) (UnitScaler[T], error) {
	return NewUnitScalerFromRange[T](0, fullScale)
}

// NewUnitScalerFromRange creates a scaler mapping [lo, hi] onto [0,1].
// Readings outside the range clamp to the nearest bound.
func NewUnitScalerFromRange[T number](lo, hi uint16) (UnitScaler[T], error) {
	if hi <= lo {
		return UnitScaler[T]{}, ErrScalerRange
	}
	return UnitScaler[T]{
		lo:   lo,
		span: T(hi - lo),
	}, nil
}

// Convert transforms a raw ADC value into a clamped [0,1] fraction.
func (us UnitScaler[T]) Convert(raw uint16) T {
	if raw <= us.lo {
		return 0
	}
	f := T(raw-us.lo) / us.span
	if f > 1 {
		return 1
	}
	return f
}
