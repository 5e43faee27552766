package jwt_test

import (
	"testing"
	"time"

	"rooming/config"
	"rooming/infras/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpireMin = expireMin
	cfg.JWT.Issuer = "rooming-test"

	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.New(newConfig("secret", 60))

	token, err := svc.GenerateToken(42, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "rooming-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := jwt.New(newConfig("secret", 60)).GenerateToken(1, "alice")
	require.NoError(t, err)

	_, err = jwt.New(newConfig("other", 60)).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	claims := jwt.Claims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(past),
			ExpiresAt: gojwt.NewNumericDate(past.Add(time.Minute)),
		},
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = jwt.New(newConfig("secret", 60)).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_MissingClaims(t *testing.T) {
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = jwt.New(newConfig("secret", 60)).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := jwt.New(newConfig("secret", 60)).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def", want: "abc.def"},
		{name: "empty header", header: "", wantErr: jwt.ErrMissingHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: jwt.ErrHeaderFormat},
		{name: "prefix only", header: "Bearer ", wantErr: jwt.ErrHeaderFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
