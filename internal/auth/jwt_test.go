package auth

import (
	"testing"
	"time"

	"github.com/azhuravlev/diplomdocs/internal/config"
	"github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/golang-jwt/jwt/v5"
)

// Perform token generation and verify the generated tokens to ensure VerifyJwtToken is correct
func TestJWT(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)

	payload := JWTPayload{
		ID:        "id1234",
		Email:     "test@gmail.com",
		FirstName: "Test",
		LastName:  "User",
		IsStaff:   true,
	}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(payload)
	if err != nil {
		t.Fatalf("An error occurred during refresh token and access token generation. Error: %v", err)
	}

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	if err != nil {
		t.Errorf("An error occurred during refresh token verification. Error: %v", err)
	}
	if refreshClaims.Type != constant.JWT_TYPE_REFRESH {
		t.Errorf("refresh token type = %q, expected %q", refreshClaims.Type, constant.JWT_TYPE_REFRESH)
	}

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	if err != nil {
		t.Errorf("An error occurred during access token verification. Error: %v", err)
	}
	if accessClaims.Type != constant.JWT_TYPE_ACCESS {
		t.Errorf("access token type = %q, expected %q", accessClaims.Type, constant.JWT_TYPE_ACCESS)
	}
	if accessClaims.User != payload {
		t.Errorf("claims user = %+v, expected %+v", accessClaims.User, payload)
	}
}

func TestVerifyJwtTokenRejectsWrongSecret(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)
	other := NewJwt(config.AuthConfig{JWT_SECRET: "other-secret"}, nil)

	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{ID: "id1234", Email: "test@gmail.com", FirstName: "Test", LastName: "User"})
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	if _, err := other.VerifyJwtToken(*accessToken); err == nil {
		t.Errorf("expected verification to fail with a different secret")
	}
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

// Tokens signed with the right secret but carrying wrong claim types must be
// rejected with an error instead of panicking.
func TestVerifyJwtTokenRejectsMalformedClaims(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)

	validUser := map[string]interface{}{
		"id": "id1234", "email": "test@gmail.com", "firstName": "Test", "lastName": "User", "isStaff": false,
	}
	iat := time.Now().Unix()
	exp := time.Now().Add(15 * time.Minute).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"user claim is not an object", jwt.MapClaims{"user": "id1234", "type": constant.JWT_TYPE_ACCESS, "iat": iat, "exp": exp}},
		{"user id is numeric", jwt.MapClaims{"user": map[string]interface{}{"id": 42, "email": "test@gmail.com", "firstName": "Test", "lastName": "User"}, "type": constant.JWT_TYPE_ACCESS, "iat": iat, "exp": exp}},
		{"user email missing", jwt.MapClaims{"user": map[string]interface{}{"id": "id1234", "firstName": "Test", "lastName": "User"}, "type": constant.JWT_TYPE_ACCESS, "iat": iat, "exp": exp}},
		{"type claim missing", jwt.MapClaims{"user": validUser, "iat": iat, "exp": exp}},
		{"iat claim is a string", jwt.MapClaims{"user": validUser, "type": constant.JWT_TYPE_ACCESS, "iat": "now", "exp": exp}},
		{"exp claim missing", jwt.MapClaims{"user": validUser, "type": constant.JWT_TYPE_ACCESS, "iat": iat}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signTestToken(t, "test-secret", tt.claims)
			if _, err := jwtService.VerifyJwtToken(token); err == nil {
				t.Errorf("expected verification error for %s", tt.name)
			}
		})
	}
}
