package security

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSealRoundTrip(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "state.key")
	k, err := NewKeeper(keyPath)
	if err != nil {
		t.Fatalf("NewKeeper: %v", err)
	}

	plaintext := []byte(`{"userId":1,"token":"abc"}`)
	sealed, err := k.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Contains(sealed, []byte("token")) {
		t.Error("sealed payload leaks plaintext")
	}

	opened, err := k.Open(sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("Open = %q, want %q", opened, plaintext)
	}
}

func TestKeeperReloadsKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "state.key")
	first, err := NewKeeper(keyPath)
	if err != nil {
		t.Fatalf("NewKeeper: %v", err)
	}
	sealed, err := first.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	second, err := NewKeeper(keyPath)
	if err != nil {
		t.Fatalf("NewKeeper (reload): %v", err)
	}
	opened, err := second.Open(sealed)
	if err != nil {
		t.Fatalf("Open with reloaded key: %v", err)
	}
	if string(opened) != "payload" {
		t.Errorf("Open = %q", opened)
	}
}

func TestOpenRejectsTamperedPayload(t *testing.T) {
	k, err := NewKeeper(filepath.Join(t.TempDir(), "state.key"))
	if err != nil {
		t.Fatalf("NewKeeper: %v", err)
	}
	sealed, err := k.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	sealed[len(sealed)-1] ^= 0xff
	if _, err := k.Open(sealed); !errors.Is(err, ErrSealedPayload) {
		t.Errorf("Open(tampered) = %v, want ErrSealedPayload", err)
	}
	if _, err := k.Open([]byte("short")); !errors.Is(err, ErrSealedPayload) {
		t.Errorf("Open(short) = %v, want ErrSealedPayload", err)
	}
}

func TestNewKeeperRejectsBadKeyFile(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "state.key")
	if err := os.WriteFile(keyPath, []byte("too short"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := NewKeeper(keyPath); err == nil {
		t.Error("expected error for truncated key file")
	}
}
