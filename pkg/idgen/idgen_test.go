package idgen_test

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/eaglebank/eaglebank/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accountNumberRe = regexp.MustCompile(`^01\d{6}$`)
	sortCodeRe      = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}$`)
	transactionIDRe = regexp.MustCompile(`^tan-[A-Za-z0-9]{6}$`)
	userIDRe        = regexp.MustCompile(`^usr-[A-Za-z0-9]{12}$`)
)

func TestAccountNumberFormat(t *testing.T) {
	t.Parallel()
	g := idgen.NewDefault()
	for range 100 {
		n := g.AccountNumber()
		assert.Regexp(t, accountNumberRe, n)
	}
}

func TestSortCodeFormat(t *testing.T) {
	t.Parallel()
	g := idgen.NewDefault()
	for range 100 {
		assert.Regexp(t, sortCodeRe, g.SortCode())
	}
}

func TestTransactionIDFormat(t *testing.T) {
	t.Parallel()
	g := idgen.NewDefault()
	assert.Regexp(t, transactionIDRe, g.TransactionID())
}

func TestUserIDFormat(t *testing.T) {
	t.Parallel()
	g := idgen.NewDefault()
	assert.Regexp(t, userIDRe, g.UserID())
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	t.Parallel()
	a := idgen.New(rand.NewSource(42))
	b := idgen.New(rand.NewSource(42))
	require.Equal(t, a.AccountNumber(), b.AccountNumber())
	require.Equal(t, a.SortCode(), b.SortCode())
}
