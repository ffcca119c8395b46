// Package revocation stores tokens invalidated before their natural expiry.
// Entries self-expire after one token lifetime, which bounds store growth to
// roughly one lifetime's worth of logouts.
package revocation

import "context"

type Store interface {
	// Revoke records the token as invalidated. Revoking an already revoked
	// token is a no-op.
	Revoke(ctx context.Context, token string) error

	// IsRevoked reports whether the token is currently on the denylist.
	// Expired entries count as not revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}
