// internal/game/engine.go
//
// Guess evaluation for the word-guessing game.
// Responsibilities:
//   - Score a guess against a secret using the two-pass consume-on-match
//     algorithm (exact matches first, then leftover-letter matches).
//
// Notes:
//   - Evaluate is a pure function; callers validate length/charset first.
//   - Consumption guarantees a secret letter occurrence yields at most one
//     non-absent mark, which is what makes repeated letters score correctly
//     (secret "apple", guess "ppppp" credits exactly two p's).
package game

// Evaluate scores guess against secret, producing one Mark per position.
// Both inputs must be lowercase, alphabetic, and of equal length.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) secret letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for
//     that letter, mark Present and decrement; otherwise mark Absent.
func Evaluate(secret, guess string) []Mark {
	secretRunes := []rune(secret)
	guessRunes := []rune(guess)
	n := len(guessRunes)
	res := make([]Mark, n)

	// Letter frequency for the non-correct positions (a-z).
	var counts [26]int

	// First pass: exact matches, collect counts of unconsumed secret letters.
	for i, s := range secretRunes {
		if i < n && guessRunes[i] == s {
			res[i] = MarkCorrect
		} else if j := idx(s); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	// Second pass: resolve present/absent for the remaining tiles.
	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guessRunes[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter rune to 0..25.
// Assumes inputs are validated to a-z elsewhere.
func idx(r rune) int { return int(r - 'a') }

// isAlpha reports whether s is non-empty and contains only lowercase
// ASCII letters. Guesses and chosen words must pass this before scoring.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// allCorrect returns true if every mark is Correct.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}
