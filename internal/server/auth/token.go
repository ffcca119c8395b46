package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

// DefaultTokenValidity is the session token lifetime. Revoked-token
// retention in the denylist must stay aligned with it.
const DefaultTokenValidity = 1 * time.Hour

// Claims is the session token payload: the subject user plus the identity
// attributes issued at login/registration.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Codec signs and parses session tokens with an HS256 symmetric key.
type Codec struct {
	secretKey []byte
	validity  time.Duration
}

// NewCodec returns a Codec for the given secret and validity. An empty secret
// is a fatal configuration error: the process must not serve auth traffic
// without one. The validity is taken as given.
func NewCodec(secretKey string, validity time.Duration) (*Codec, error) {
	if secretKey == "" {
		return nil, common.ErrorSecretKeyMissing
	}
	return &Codec{secretKey: []byte(secretKey), validity: validity}, nil
}

// Issue creates a signed token carrying the user identity, expiring after
// the configured validity. Each token gets a fresh jti, so two tokens issued
// to the same user in the same second are still distinct strings and can be
// revoked independently.
func (c *Codec) Issue(userID, email, firstName, lastName string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:    userID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	})

	tokenString, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse verifies the signature and expiry of a token string and returns its
// claims. A forged, corrupt or expired token yields ok=false; the caller
// cannot tell those cases apart.
func (c *Codec) Parse(tokenString string) (*Claims, bool) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, false
	}

	return claims, true
}
