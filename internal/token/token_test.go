package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("super-secret", time.Hour)

	tok, err := m.Issue(42, "amy", "Client")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "amy", claims.Username)
	assert.Equal(t, "Client", claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewManager("super-secret", -time.Second)

	tok, err := issuer.Issue(1, "amy", "Client")
	require.NoError(t, err)

	verifier := NewManager("super-secret", time.Hour)
	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	m := NewManager("right-secret", time.Hour)

	tok, err := m.Issue(1, "amy", "Client")
	require.NoError(t, err)

	other := NewManager("wrong-secret", time.Hour)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	m := NewManager("super-secret", time.Hour)

	_, err := m.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmptyToken(t *testing.T) {
	m := NewManager("super-secret", time.Hour)

	_, err := m.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
