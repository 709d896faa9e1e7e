package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestGenerateEncryptionSalt_LengthAndRandomness(t *testing.T) {
	kd := NewKeyDeriver()

	s1, err := kd.GenerateEncryptionSalt()
	if err != nil {
		t.Fatalf("GenerateEncryptionSalt error: %v", err)
	}
	s2, err := kd.GenerateEncryptionSalt()
	if err != nil {
		t.Fatalf("GenerateEncryptionSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kd := NewKeyDeriver()

	password := "correcthorsebattery"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := kd.DeriveKey(password, salt)
	k2 := kd.DeriveKey(password, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentInputsProduceDifferentKeys(t *testing.T) {
	kd := NewKeyDeriver()

	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	base := kd.DeriveKey("password", salt1)

	if bytes.Equal(base, kd.DeriveKey("password", salt2)) {
		t.Errorf("different salt produced the same key")
	}
	if bytes.Equal(base, kd.DeriveKey("Password", salt1)) {
		t.Errorf("different password produced the same key")
	}
}

func TestDeriveKey_FeedsEnvelopeCipher(t *testing.T) {
	kd := NewKeyDeriver()
	c := NewEnvelopeCipher()

	salt, err := kd.GenerateEncryptionSalt()
	if err != nil {
		t.Fatalf("GenerateEncryptionSalt error: %v", err)
	}
	key := kd.DeriveKey("master password", salt)

	blob, err := c.Seal("payload", key)
	if err != nil {
		t.Fatalf("Seal with derived key: %v", err)
	}

	// re-derive, as a second login would
	rederived := kd.DeriveKey("master password", salt)
	opened, err := c.Open(blob, rederived)
	if err != nil {
		t.Fatalf("Open with re-derived key: %v", err)
	}
	if opened != "payload" {
		t.Fatalf("got %q, want %q", opened, "payload")
	}
}

func TestGenerateSessionToken_HexAndUnique(t *testing.T) {
	kd := NewKeyDeriver()

	t1, err := kd.GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}
	t2, err := kd.GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	raw, err := hex.DecodeString(t1)
	if err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
	if len(raw) != 32 {
		t.Fatalf("token length = %d bytes, want 32", len(raw))
	}
	if t1 == t2 {
		t.Fatalf("expected tokens to differ")
	}
}
