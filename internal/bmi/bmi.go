// Package bmi implements the body-mass-index computation and the
// classification rule used across the application. It is a pure
// package with no dependencies so it can be exercised directly in
// tests and reused by any layer that needs to derive an index value.
package bmi

import "math"

// Category labels. These are the exact strings persisted with each
// measurement and returned over the API.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// Calculate computes the BMI for a weight in kilograms and a height in
// centimeters. It returns the index value rounded to 2 decimal places
// together with its category label.
//
// Classification happens on the unrounded ratio so that values just
// below a cutoff are never pushed over it by rounding (e.g. a raw
// ratio of 24.996 rounds to 25.00 but is still "Normal weight").
// Inputs are assumed positive; validation is the caller's job.
func Calculate(weight, height float64) (float64, string) {
	meters := height / 100
	raw := weight / (meters * meters)
	return math.Round(raw*100) / 100, Classify(raw)
}

// Classify maps a raw BMI value onto its category label using
// half-open bands: the lower bound is inclusive, the upper exclusive.
func Classify(value float64) string {
	switch {
	case value < 18.5:
		return CategoryUnderweight
	case value < 25:
		return CategoryNormal
	case value < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
