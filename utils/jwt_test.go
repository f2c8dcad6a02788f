package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/config"
	"github.com/videomotion/video-motion-api/entity"
)

func testEnvConfig() *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpire = 3600
	cfg.JWT.RefreshExpire = 86400
	return cfg
}

func testUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "channelone",
		Email:    "channel@example.com",
		Fullname: "Channel One",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testEnvConfig()
	user := testUser()

	tokenStr, err := GenerateAccessToken(user, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ParseAccessToken(tokenStr, cfg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("expected token to be valid")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}

	userID, err := UserIDFromClaims(claims)
	if err != nil {
		t.Fatalf("user id from claims: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected user id %s got %s", user.ID, userID)
	}

	if TokenJTI(claims) == "" {
		t.Fatal("expected non-empty jti")
	}

	ttl := TokenRemainingTTL(claims)
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected ttl %v", ttl)
	}
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := testEnvConfig()
	user := testUser()

	tokenStr, err := GenerateAccessToken(user, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := testEnvConfig()
	other.JWT.AccessSecret = "another-secret"

	parsed, err := ParseAccessToken(tokenStr, other)
	if err == nil && parsed.Valid {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	cfg := testEnvConfig()
	user := testUser()

	tokenStr, err := GenerateRefreshToken(user, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ParseRefreshToken(tokenStr, cfg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)

	if _, ok := claims["username"]; ok {
		t.Fatal("refresh token should not carry username")
	}
	userID, err := UserIDFromClaims(claims)
	if err != nil {
		t.Fatalf("user id from claims: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected user id %s got %s", user.ID, userID)
	}
}

func TestExtractAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    string
	}{
		{
			name: "from cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "accessToken", Value: "cookie-token"})
			},
			want: "cookie-token",
		},
		{
			name: "from bearer header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
			},
			want: "header-token",
		},
		{
			name: "cookie wins over header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "accessToken", Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			want: "cookie-token",
		},
		{
			name: "malformed header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "header-token")
			},
			want: "",
		},
		{
			name:    "absent",
			prepare: func(r *http.Request) {},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(c.Request)

			if got := ExtractAccessToken(c); got != tt.want {
				t.Fatalf("expected %q got %q", tt.want, got)
			}
		})
	}
}

func TestGetUserFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if _, err := GetUserFromContext(c); err == nil {
		t.Fatal("expected error when user is missing")
	}

	c.Set("user", "not-a-user")
	if _, err := GetUserFromContext(c); err == nil {
		t.Fatal("expected error for wrong type")
	}

	user := testUser()
	c.Set("user", user)
	got, err := GetUserFromContext(c)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %s got %s", user.ID, got.ID)
	}
}
