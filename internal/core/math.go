// Package core provides fundamental types and utilities for the word game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// NonNegative returns val, or 0 when val is negative.
// Scores may drop below zero internally but are never shown that way.
func NonNegative(val int) int {
	if val < 0 {
		return 0
	}
	return val
}
