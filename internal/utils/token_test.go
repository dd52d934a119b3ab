package utils

import (
	"encoding/base64"
	"testing"
)

func TestNewSessionToken(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		token, err := NewSessionToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		raw, err := base64.RawURLEncoding.DecodeString(token)
		if err != nil {
			t.Fatalf("token is not base64url: %v", err)
		}
		if len(raw) != 32 {
			t.Fatalf("expected 32 bytes of entropy, got %d", len(raw))
		}

		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = struct{}{}
	}
}

func TestHashSessionToken(t *testing.T) {
	// sha256("abc")
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	if got := HashSessionToken("abc"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if HashSessionToken("abc") == HashSessionToken("abd") {
		t.Error("different tokens must produce different digests")
	}
}
