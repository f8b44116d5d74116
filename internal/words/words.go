// internal/words/words.go
//
// Word source for round secrets.
//
// Responsibilities:
//   - Load a flat word list from an environment-provided file or fall back
//     to a small embedded default, so the server always starts.
//   - Supply random picks for rounds the host starts without a chosen word.
//
// Word list format:
//   - One word per line, lowercased on load, blank lines skipped.
//   - Only alphabetic (a-z) entries are kept; lengths may vary, the
//     secret's length is what drives guess validation.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"math/big"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// List is an immutable, loaded word list. It satisfies the state
// machine's WordSource contract.
type List struct {
	words []string
}

// Load builds a List from the WORDS_FILE env var if set, otherwise from
// the embedded defaults. Returns an error if the result is empty.
func Load() (*List, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return LoadFile(path)
	}
	return newList(normalizeLines(embeddedWords))
}

// LoadFile reads one word per line from path.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := normalize(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return newList(out)
}

func newList(ws []string) (*List, error) {
	if len(ws) == 0 {
		return nil, errors.New("words: list is empty")
	}
	return &List{words: ws}, nil
}

// normalizeLines processes an embedded multiline string.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w := normalize(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// normalize lowercases and trims one entry; non-alphabetic entries are
// dropped entirely.
func normalize(line string) string {
	w := strings.TrimSpace(strings.ToLower(line))
	if w == "" || !isAlpha(w) {
		return ""
	}
	return w
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Random returns a cryptographically random word from the list.
func (l *List) Random() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	return l.words[nBig.Int64()]
}

// Len reports how many words are loaded.
func (l *List) Len() int { return len(l.words) }
