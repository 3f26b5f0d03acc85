package lights

import "fmt"

// Attenuation holds the distance falloff coefficients kc, kl and kq
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// NoAttenuation keeps intensity constant over distance
var NoAttenuation = Attenuation{Constant: 1}

// Factor returns kc + kl·d + kq·d²
func (a Attenuation) Factor(distance float64) float64 {
	return a.Constant + a.Linear*distance + a.Quadratic*distance*distance
}

// Validate requires non-negative coefficients with at least one of them positive
func (a Attenuation) Validate() error {
	if !(a.Constant >= 0) || !(a.Linear >= 0) || !(a.Quadratic >= 0) {
		return fmt.Errorf("attenuation %+v has negative coefficients: %w", a, ErrInvalidLight)
	}
	if a.Constant == 0 && a.Linear == 0 && a.Quadratic == 0 {
		return fmt.Errorf("attenuation coefficients are all zero: %w", ErrInvalidLight)
	}
	return nil
}
