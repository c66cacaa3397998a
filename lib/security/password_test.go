package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub/finhub.go/lib/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := security.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, security.VerifyPassword(hashed, "correct horse battery staple"))
	assert.False(t, security.VerifyPassword(hashed, "wrong password"))
}
