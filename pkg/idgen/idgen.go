// Package idgen produces the public identifiers used across the bank:
// account numbers, sort codes, transaction ids and user ids.
//
// Generation is pure and always succeeds. Uniqueness is not enforced here;
// callers that need it (account creation) retry against their store.
package idgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountNumberPrefix is the fixed prefix of every account number.
const AccountNumberPrefix = "01"

// TransactionIDPrefix is the fixed prefix of every transaction id.
const TransactionIDPrefix = "tan-"

// UserIDPrefix is the fixed prefix of every user id.
const UserIDPrefix = "usr-"

// Generator produces identifiers from an injected random source, so it can
// be seeded deterministically in tests and never touches process-global
// state.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator backed by the given source.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewDefault returns a Generator seeded from the wall clock.
func NewDefault() *Generator {
	return New(rand.NewSource(time.Now().UnixNano()))
}

// AccountNumber returns "01" followed by six uniformly random decimal digits.
func (g *Generator) AccountNumber() string {
	return fmt.Sprintf("%s%06d", AccountNumberPrefix, g.rng.Intn(1000000))
}

// SortCode returns a sort code of the form DD-DD-DD, each pair uniform in
// [00, 99].
func (g *Generator) SortCode() string {
	return fmt.Sprintf("%02d-%02d-%02d",
		g.rng.Intn(100),
		g.rng.Intn(100),
		g.rng.Intn(100))
}

// TransactionID returns "tan-" plus a short alphanumeric suffix taken from a
// fresh UUID.
func (g *Generator) TransactionID() string {
	return TransactionIDPrefix + uuidHex(6)
}

// UserID returns "usr-" plus a 12 character alphanumeric suffix taken from a
// fresh UUID.
func (g *Generator) UserID() string {
	return UserIDPrefix + uuidHex(12)
}

func uuidHex(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s[:n]
}
