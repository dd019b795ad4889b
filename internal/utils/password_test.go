package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotEqual(t, "s3cret-password", hash)
	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("s3cret-password", "not-a-bcrypt-hash"))
}
