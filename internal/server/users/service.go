// Package users implements the identity service: registration, login and
// logout on top of the user repository, the password hasher, the token codec
// and the revocation denylist.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/server/auth"
	"github.com/dmitrijs2005/staffdesk/internal/server/revocation"
)

type Service struct {
	repo     Repository
	hasher   *auth.Hasher
	codec    *auth.Codec
	denylist revocation.Store
}

func NewService(repo Repository, hasher *auth.Hasher, codec *auth.Codec, denylist revocation.Store) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		codec:    codec,
		denylist: denylist,
	}
}

// NormalizeEmail trims whitespace and lowercases, so lookups and the unique
// index treat addresses case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns it together with a session token.
// The password is hashed here, explicitly, before anything is persisted;
// the repository never sees the plaintext.
func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) (*User, string, error) {

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("error preparing user record: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, "", common.ErrorEmailTaken
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.codec.Issue(user.ID, user.Email, user.FirstName, user.LastName)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password both fail with ErrorInvalidCredentials so the caller
// cannot tell which check failed.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {

	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Email, user.FirstName, user.LastName)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Logout revokes the bearer token carried by the Authorization header.
// A missing or malformed header is not an error: logout always succeeds for
// the caller, there is just nothing to revoke.
func (s *Service) Logout(ctx context.Context, authHeader string) error {

	token, ok := auth.ExtractBearerToken(authHeader)
	if !ok {
		return nil
	}

	if err := s.denylist.Revoke(ctx, token); err != nil {
		return fmt.Errorf("%w: revoking token: %v", common.ErrorInternal, err)
	}

	return nil
}
