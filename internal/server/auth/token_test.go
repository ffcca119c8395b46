package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

func newTestCodec(t *testing.T, validity time.Duration) *Codec {
	t.Helper()
	c, err := NewCodec("super-secret", validity)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	return c
}

func TestNewCodec_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewCodec("", time.Hour)
	if !errors.Is(err, common.ErrorSecretKeyMissing) {
		t.Fatalf("expected ErrorSecretKeyMissing, got %v", err)
	}
}

func TestCodec_IssueAndParse(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)

	tok, err := c.Issue("user-123", "a@b.com", "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, ok := c.Parse(tok)
	if !ok {
		t.Fatalf("Parse failed for a freshly issued token")
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("Email mismatch: got %q", claims.Email)
	}
	if claims.FirstName != "Ada" || claims.LastName != "Lovelace" {
		t.Fatalf("name mismatch: %q %q", claims.FirstName, claims.LastName)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Fatalf("expiry must be at most one hour from now")
	}
}

func TestCodec_Issue_DistinctTokens(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)

	// same user, same second: the tokens must still differ, otherwise
	// revoking one session would revoke the other
	tok1, err := c.Issue("user-123", "a@b.com", "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	tok2, err := c.Issue("user-123", "a@b.com", "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok1 == tok2 {
		t.Fatalf("two issuances produced the same token string")
	}

	claims1, ok := c.Parse(tok1)
	if !ok {
		t.Fatalf("Parse failed for tok1")
	}
	claims2, ok := c.Parse(tok2)
	if !ok {
		t.Fatalf("Parse failed for tok2")
	}
	if claims1.ID == "" || claims1.ID == claims2.ID {
		t.Fatalf("token ids must be unique per issuance: %q vs %q", claims1.ID, claims2.ID)
	}
}

func TestCodec_ValidityHonored(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, 30*time.Minute)

	tok, err := c.Issue("u1", "a@b.com", "", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, ok := c.Parse(tok)
	if !ok {
		t.Fatalf("Parse failed for a freshly issued token")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 30*time.Minute || ttl < 29*time.Minute {
		t.Fatalf("expiry must reflect the configured validity, got %v", ttl)
	}
}

func TestCodec_Parse_TamperedSignature(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)

	tok, err := c.Issue("u1", "a@b.com", "", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// flip one character of the signature segment
	last := tok[len(tok)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := tok[:len(tok)-1] + string(flipped)

	if _, ok := c.Parse(tampered); ok {
		t.Fatalf("Parse must reject a tampered signature")
	}
}

func TestCodec_Parse_TamperedPayload(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)

	tok, err := c.Issue("u1", "a@b.com", "", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	parts[1] = parts[1][:len(parts[1])-2] + "xx"

	if _, ok := c.Parse(strings.Join(parts, ".")); ok {
		t.Fatalf("Parse must reject a tampered payload")
	}
}

func TestCodec_Parse_Expired(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, -1*time.Second)

	tok, err := c.Issue("u1", "a@b.com", "", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, ok := c.Parse(tok); ok {
		t.Fatalf("Parse must reject an expired token")
	}
}

func TestCodec_Parse_WrongSecret(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)
	other, err := NewCodec("different-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	tok, err := c.Issue("u1", "a@b.com", "", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, ok := other.Parse(tok); ok {
		t.Fatalf("Parse must reject a token signed with another key")
	}
}

func TestCodec_Parse_Malformed(t *testing.T) {
	t.Parallel()

	c := newTestCodec(t, time.Hour)

	if _, ok := c.Parse("not.a.jwt"); ok {
		t.Fatalf("Parse must reject a malformed token")
	}
}
