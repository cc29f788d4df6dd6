package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret"), time.Hour)

	tok, err := m.Issue(42, "a@app.com")
	require.NoError(t, err)

	userID, email, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "a@app.com", email)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("secret"), -1*time.Second)

	tok, err := m.Issue(1, "a@app.com")
	require.NoError(t, err)

	_, _, err = m.Parse(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager([]byte("right-secret"), time.Hour).Issue(1, "a@app.com")
	require.NoError(t, err)

	_, _, err = NewTokenManager([]byte("wrong-secret"), time.Hour).Parse(tok)
	assert.Error(t, err)
}

func TestParse_TamperedSignature(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("secret"), time.Hour)
	tok, err := m.Issue(1, "a@app.com")
	require.NoError(t, err)

	// Flip one byte of the signature part.
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, _, err = m.Parse(tampered)
	assert.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("k"), time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, _, err := m.Parse(tok)
		assert.Error(t, err, "token %q", tok)
	}
}

func TestParse_NonNumericSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "a@app.com",
	})
	tok, err := raw.SignedString(secret)
	require.NoError(t, err)

	_, _, err = NewTokenManager(secret, time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
