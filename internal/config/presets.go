package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep rules exactly as loaded
)

// Presets lists the presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", ErrInvalid, s)
}

// ApplyPreset modifies the rules based on a difficulty preset.
// Scoring points and word length are left untouched.
func ApplyPreset(r *Rules, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		r.MaxGuesses = 8
		r.MaxHints = 4
		r.HintPenalties = []int{5, 10, 15, 20}
	case DifficultyNormal:
		d := DefaultRules()
		r.MaxGuesses = d.MaxGuesses
		r.MaxHints = d.MaxHints
		r.HintPenalties = d.HintPenalties
	case DifficultyHard:
		r.MaxGuesses = 5
		r.MaxHints = 2
		r.HintPenalties = []int{15, 25}
	}
}
