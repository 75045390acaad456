package jwtservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := New("secret", time.Hour)
	user := &entity.User{ID: uuid.New(), Name: "anna", Role: entity.RoleStudentClass1, ClassCode: "KLAS1"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, entity.RoleStudentClass1, claims.Role)
	assert.Equal(t, "KLAS1", claims.ClassCode)
}

func TestParseTokenRejects(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "anna"}
	s := New("secret", time.Hour)
	testCases := []struct {
		Desc  string
		Token func() string
	}{
		{
			Desc: "other secret",
			Token: func() string {
				token, _ := New("other", time.Hour).GenerateToken(user)
				return token
			},
		},
		{
			Desc: "expired",
			Token: func() string {
				old := New("secret", time.Minute)
				old.now = func() time.Time { return time.Now().Add(-time.Hour) }
				token, _ := old.GenerateToken(user)
				return token
			},
		},
		{
			Desc: "wrong algorithm",
			Token: func() string {
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Issuer: issuer}).SignedString([]byte("secret"))
				return token
			},
		},
		{
			Desc:  "garbage",
			Token: func() string { return "not.a.token" },
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token())
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
