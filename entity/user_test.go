package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUserSerializationHidesSecrets(t *testing.T) {
	user := User{
		ID:           uuid.New(),
		Username:     "channelone",
		Email:        "channel@example.com",
		Fullname:     "Channel One",
		Password:     "$2a$10$secret-hash",
		RefreshToken: "refresh-token-value",
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(raw)
	if strings.Contains(body, "secret-hash") || strings.Contains(body, "refresh-token-value") {
		t.Fatalf("serialized user leaks credentials: %s", body)
	}
}

func TestPublicProjection(t *testing.T) {
	user := User{
		ID:       uuid.New(),
		Username: "channelone",
		Fullname: "Channel One",
		Avatar:   "http://cdn/avatar.png",
	}

	public := user.Public()
	if public.ID != user.ID || public.Username != user.Username {
		t.Fatalf("projection mismatch: %+v", public)
	}

	ref := user.Ref()
	if ref.ID != user.ID || ref.Avatar != user.Avatar {
		t.Fatalf("owner ref mismatch: %+v", ref)
	}
}
