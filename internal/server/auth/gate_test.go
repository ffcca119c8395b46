package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

type fakeDenylist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeDenylist) Revoke(ctx context.Context, token string) error {
	if f.err != nil {
		return f.err
	}
	if f.revoked == nil {
		f.revoked = map[string]bool{}
	}
	f.revoked[token] = true
	return nil
}

func (f *fakeDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[token], nil
}

func newTestGate(t *testing.T, denylist *fakeDenylist) (*Gate, *Codec) {
	t.Helper()
	codec := newTestCodec(t, time.Hour)
	return NewGate(codec, denylist), codec
}

func TestGate_Authorize_Success(t *testing.T) {
	t.Parallel()

	gate, codec := newTestGate(t, &fakeDenylist{})

	tok, err := codec.Issue("user-1", "a@b.com", "", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	userID, err := gate.Authorize(context.Background(), "Bearer "+tok)
	if err != nil {
		t.Fatalf("Authorize error: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("userID mismatch: got %q", userID)
	}
}

func TestGate_Authorize_MissingHeader(t *testing.T) {
	t.Parallel()

	gate, _ := newTestGate(t, &fakeDenylist{})

	_, err := gate.Authorize(context.Background(), "")
	if !errors.Is(err, common.ErrorMissingToken) {
		t.Fatalf("expected ErrorMissingToken, got %v", err)
	}
}

func TestGate_Authorize_WrongScheme(t *testing.T) {
	t.Parallel()

	gate, _ := newTestGate(t, &fakeDenylist{})

	_, err := gate.Authorize(context.Background(), "Token abc")
	if !errors.Is(err, common.ErrorMissingToken) {
		t.Fatalf("expected ErrorMissingToken for wrong scheme, got %v", err)
	}
}

func TestGate_Authorize_GarbageToken(t *testing.T) {
	t.Parallel()

	gate, _ := newTestGate(t, &fakeDenylist{})

	_, err := gate.Authorize(context.Background(), "Bearer garbage")
	if !errors.Is(err, common.ErrorTokenInvalid) {
		t.Fatalf("expected ErrorTokenInvalid, got %v", err)
	}
}

func TestGate_Authorize_Revoked(t *testing.T) {
	t.Parallel()

	denylist := &fakeDenylist{}
	gate, codec := newTestGate(t, denylist)

	tok, err := codec.Issue("user-1", "a@b.com", "", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if err := denylist.Revoke(context.Background(), tok); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}

	_, err = gate.Authorize(context.Background(), "Bearer "+tok)
	if !errors.Is(err, common.ErrorTokenRevoked) {
		t.Fatalf("expected ErrorTokenRevoked, got %v", err)
	}
}

// the revocation check runs before parsing, so even a revoked garbage token
// reports revoked rather than invalid
func TestGate_Authorize_RevokedBeforeParse(t *testing.T) {
	t.Parallel()

	denylist := &fakeDenylist{revoked: map[string]bool{"garbage": true}}
	gate, _ := newTestGate(t, denylist)

	_, err := gate.Authorize(context.Background(), "Bearer garbage")
	if !errors.Is(err, common.ErrorTokenRevoked) {
		t.Fatalf("expected ErrorTokenRevoked, got %v", err)
	}
}

func TestGate_Authorize_StoreUnavailable(t *testing.T) {
	t.Parallel()

	denylist := &fakeDenylist{err: errors.New("connection refused")}
	gate, codec := newTestGate(t, denylist)

	tok, err := codec.Issue("user-1", "a@b.com", "", "")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = gate.Authorize(context.Background(), "Bearer "+tok)
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
	if errors.Is(err, common.ErrorTokenInvalid) || errors.Is(err, common.ErrorTokenRevoked) {
		t.Fatalf("store outage must not look like a credential failure: %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer tok", "tok", true},
		{"empty", "", "", false},
		{"wrong scheme", "Token abc", "", false},
		{"scheme only", "Bearer", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractBearerToken(tc.header)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ExtractBearerToken(%q) = (%q, %v), want (%q, %v)",
					tc.header, got, ok, tc.want, tc.ok)
			}
		})
	}
}
