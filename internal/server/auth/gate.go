package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/server/revocation"
)

const bearerScheme = "Bearer"

// ExtractBearerToken returns the token part of an "Authorization: Bearer x"
// header value. ok is false when the header is absent or uses another scheme.
func ExtractBearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", false
	}
	return parts[1], true
}

// Gate makes the single admission decision for requests presenting a bearer
// credential. It composes the token codec with the revocation denylist and
// never mutates any state.
type Gate struct {
	codec    *Codec
	denylist revocation.Store
}

func NewGate(codec *Codec, denylist revocation.Store) *Gate {
	return &Gate{codec: codec, denylist: denylist}
}

// Authorize validates the Authorization header and returns the subject user
// ID. Checks run in strict order: header shape, denylist, signature/expiry.
// A denylist outage surfaces as ErrorInternal so callers can distinguish
// "your credential is bad" from "the system is unavailable".
func (g *Gate) Authorize(ctx context.Context, header string) (string, error) {
	token, ok := ExtractBearerToken(header)
	if !ok {
		return "", common.ErrorMissingToken
	}

	revoked, err := g.denylist.IsRevoked(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: checking revoked tokens: %v", common.ErrorInternal, err)
	}
	if revoked {
		return "", common.ErrorTokenRevoked
	}

	claims, ok := g.codec.Parse(token)
	if !ok {
		return "", common.ErrorTokenInvalid
	}

	return claims.UserID, nil
}
