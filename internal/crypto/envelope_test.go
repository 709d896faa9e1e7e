package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	c := NewEnvelopeCipher()
	key := testKey(0x42)

	for _, plaintext := range []string{"s3cr3t!", "", "пароль", strings.Repeat("x", 4096)} {
		blob, err := c.Seal(plaintext, key)
		if err != nil {
			t.Fatalf("Seal error: %v", err)
		}

		opened, err := c.Open(blob, key)
		if err != nil {
			t.Fatalf("Open error: %v", err)
		}
		if opened != plaintext {
			t.Fatalf("round trip mismatch: got %q, want %q", opened, plaintext)
		}
	}
}

func TestSeal_FreshSaltAndIVPerCall(t *testing.T) {
	c := NewEnvelopeCipher()
	key := testKey(0x01)

	b1, err := c.Seal("same input", key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := c.Seal("same input", key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected two seals of identical input to differ")
	}

	p1 := strings.Split(b1, ":")
	p2 := strings.Split(b2, ":")
	if p1[0] == p2[0] {
		t.Errorf("salt was reused across calls")
	}
	if p1[1] == p2[1] {
		t.Errorf("iv was reused across calls")
	}
}

func TestSeal_BlobFormat(t *testing.T) {
	c := NewEnvelopeCipher()

	blob, err := c.Seal("secret", testKey(0x07))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	parts := strings.Split(blob, ":")
	if len(parts) != 4 {
		t.Fatalf("blob field count = %d, want 4", len(parts))
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil || len(salt) != 64 {
		t.Fatalf("salt field: err=%v len=%d, want 64 bytes of hex", err, len(salt))
	}
	iv, err := hex.DecodeString(parts[1])
	if err != nil || len(iv) != 16 {
		t.Fatalf("iv field: err=%v len=%d, want 16 bytes of hex", err, len(iv))
	}
	tag, err := hex.DecodeString(parts[2])
	if err != nil || len(tag) != 16 {
		t.Fatalf("tag field: err=%v len=%d, want 16 bytes of hex", err, len(tag))
	}
}

func TestOpen_WrongKey(t *testing.T) {
	c := NewEnvelopeCipher()

	blob, err := c.Seal("secret", testKey(0x11))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = c.Open(blob, testKey(0x22))
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestOpen_TamperedCiphertextAndTag(t *testing.T) {
	c := NewEnvelopeCipher()
	key := testKey(0x33)

	blob, err := c.Seal("secret payload", key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	parts := strings.Split(blob, ":")

	// flip one byte in every authenticated field
	for _, fieldIdx := range []int{2, 3} {
		raw, _ := hex.DecodeString(parts[fieldIdx])
		for byteIdx := range raw {
			flipped := make([]byte, len(raw))
			copy(flipped, raw)
			flipped[byteIdx] ^= 0x01

			tampered := make([]string, 4)
			copy(tampered, parts)
			tampered[fieldIdx] = hex.EncodeToString(flipped)

			_, err := c.Open(strings.Join(tampered, ":"), key)
			if !errors.Is(err, ErrAuthenticationFailed) {
				t.Fatalf("field %d byte %d: expected ErrAuthenticationFailed, got %v", fieldIdx, byteIdx, err)
			}
		}
	}
}

func TestOpen_MalformedBlob(t *testing.T) {
	c := NewEnvelopeCipher()
	key := testKey(0x44)

	blob, err := c.Seal("secret", key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	parts := strings.Split(blob, ":")

	cases := map[string]string{
		"empty":           "",
		"one field":       parts[0],
		"three fields":    strings.Join(parts[:3], ":"),
		"five fields":     blob + ":extra",
		"non-hex field":   "zz" + blob[2:],
		"bare delimiters": ":::",
	}

	for name, malformed := range cases {
		if name == "bare delimiters" {
			// four empty fields parse as hex but fail the length check
			if _, err := c.Open(malformed, key); !errors.Is(err, ErrMalformedBlob) {
				t.Fatalf("%s: expected ErrMalformedBlob, got %v", name, err)
			}
			continue
		}
		if _, err := c.Open(malformed, key); !errors.Is(err, ErrMalformedBlob) {
			t.Fatalf("%s: expected ErrMalformedBlob, got %v", name, err)
		}
	}
}

func TestOpen_EmbeddedSaltIgnored(t *testing.T) {
	c := NewEnvelopeCipher()
	key := testKey(0x55)

	blob, err := c.Seal("secret", key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	// replacing the salt field must not affect decryption: the salt is
	// carried for format symmetry only
	parts := strings.Split(blob, ":")
	parts[0] = strings.Repeat("00", 64)

	opened, err := c.Open(strings.Join(parts, ":"), key)
	if err != nil {
		t.Fatalf("Open with replaced salt: %v", err)
	}
	if opened != "secret" {
		t.Fatalf("got %q, want %q", opened, "secret")
	}
}
