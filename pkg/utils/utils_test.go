package utils_test

import (
	"testing"

	"github.com/eaglebank/eaglebank/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("hunter22", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, utils.IsEmail("jane@example.com"))
	assert.False(t, utils.IsEmail("jane@"))
	assert.False(t, utils.IsEmail("not-an-email"))
}
