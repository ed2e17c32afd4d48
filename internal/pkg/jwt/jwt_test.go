package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidate(t *testing.T) {
	s := New("unit-test-secret", time.Hour)

	token, err := s.GenerateToken(42, "customer")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestValidate_WrongSecret(t *testing.T) {
	s := New("unit-test-secret", time.Hour)
	other := New("different-secret", time.Hour)

	token, err := s.GenerateToken(42, "customer")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	s := New("unit-test-secret", -time.Minute)

	token, err := s.GenerateToken(42, "customer")
	assert.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	s := New("unit-test-secret", time.Hour)

	_, err := s.ValidateToken("not.a.token")
	assert.Error(t, err)
}
