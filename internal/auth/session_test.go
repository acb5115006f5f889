package auth

import (
	"strings"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec("test-key")
	in := Session{UserID: "u1", Role: RoleShelter, ShelterID: "s1", Verified: true, IsActive: true}
	tok, err := c.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := c.Decode(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *out != in {
		t.Fatalf("round trip mismatch: %+v vs %+v", *out, in)
	}
}

func TestCodecRejectsTampering(t *testing.T) {
	c := NewCodec("test-key")
	tok, err := c.Encode(Session{UserID: "u1", Role: RoleAdopter, IsActive: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Flip a payload byte; the signature no longer matches.
	mutated := "A" + tok[1:]
	if _, err := c.Decode(mutated); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
	// A token signed with a different key is rejected too.
	other, err := NewCodec("other-key").Encode(Session{UserID: "u1", Role: RoleAdmin, IsActive: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := c.Decode(other); err == nil {
		t.Fatalf("expected foreign-key token to be rejected")
	}
}

func TestCodecRejectsMalformed(t *testing.T) {
	c := NewCodec("test-key")
	for _, tok := range []string{"", "abc", "a.b.c", strings.Repeat(".", 3), "!!!.???"} {
		if _, err := c.Decode(tok); err == nil {
			t.Fatalf("expected %q to be rejected", tok)
		}
	}
}
