// internal/rooms/codegen.go
//
// Room code generation. Codes are short, human-typeable identifiers drawn
// from an alphabet that excludes visually ambiguous characters (no I/L/O/0/1).

package rooms

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// DefaultCodeLength matches the reference server's 5-character codes.
const DefaultCodeLength = 5

type randomCodes struct {
	length int
}

// NewCodeGenerator returns a crypto/rand-backed generator producing codes
// of the given length (DefaultCodeLength if n <= 0).
func NewCodeGenerator(n int) CodeGenerator {
	if n <= 0 {
		n = DefaultCodeLength
	}
	return &randomCodes{length: n}
}

// NewCode mints one candidate code. Uniqueness against live rooms is the
// registry's job; at this length/alphabet the collision odds are negligible.
func (g *randomCodes) NewCode() string {
	b := make([]byte, g.length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range b {
		n, _ := rand.Int(rand.Reader, max)
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b)
}
