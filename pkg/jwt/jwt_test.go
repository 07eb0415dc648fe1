package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := Generate("segredo", "u1", "estoque-api", 5)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := Parse("segredo", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestParse_SegredoErrado(t *testing.T) {
	token, err := Generate("segredo", "u1", "estoque-api", 5)
	require.NoError(t, err)

	_, err = Parse("outro", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate("segredo", "u1", "estoque-api", -1)
	require.NoError(t, err)

	_, err = Parse("segredo", token)
	assert.Error(t, err)
}

func TestGenerate_SemSegredo(t *testing.T) {
	_, err := Generate("", "u1", "estoque-api", 5)
	assert.Error(t, err)
}
