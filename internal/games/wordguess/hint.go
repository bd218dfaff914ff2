package wordguess

// Hint is a revealed letter of the secret.
type Hint struct {
	Position int // 0-based
	Letter   rune
}

// NextHint reveals the lowest-index position of secret not marked in
// revealed. revealed may be shorter than the secret; missing entries count
// as hidden. Order is strictly left to right so play stays reproducible.
func NextHint(secret string, revealed []bool, hintsUsed, maxHints int) (Hint, error) {
	if hintsUsed >= maxHints {
		return Hint{}, ErrNoHintsLeft
	}
	for i, r := range []rune(secret) {
		if i < len(revealed) && revealed[i] {
			continue
		}
		return Hint{Position: i, Letter: r}, nil
	}
	return Hint{}, ErrNothingToReveal
}
