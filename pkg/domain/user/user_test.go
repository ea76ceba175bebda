package user_test

import (
	"testing"

	"github.com/eaglebank/eaglebank/pkg/domain/user"
	"github.com/eaglebank/eaglebank/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	u, err := user.New("usr-abc123def456", "Jane Doe", "jane@example.com",
		"hunter22", "+447700900123", user.Address{Line1: "1 High Street", Town: "London"})
	require.NoError(t, err)

	assert.Equal(t, "usr-abc123def456", u.ID)
	assert.NotEqual(t, "hunter22", u.Password)
	assert.True(t, utils.CheckPasswordHash("hunter22", u.Password))
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	assert.Equal(t, "UTC", u.CreatedAt.Location().String())
}

func TestNew_Invalid(t *testing.T) {
	_, err := user.New("usr-abc123def456", "", "jane@example.com", "pw", "+44", user.Address{})
	assert.Error(t, err)

	_, err = user.New("usr-abc123def456", "Jane", "not-an-email", "pw", "+44", user.Address{})
	assert.Error(t, err)
}
