// Package services contains the application services of the termvault client.
// This file defines the authentication service: signup and login against the
// local credential store.
package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/termvault/internal/client/models"
	"github.com/dmitrijs2005/termvault/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/termvault/internal/common"
	"github.com/dmitrijs2005/termvault/internal/cryptox"
	"github.com/dmitrijs2005/termvault/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - CheckUsername: report whether a username could be registered right now.
//   - Signup: validate the form, hash the password and persist the new user.
//   - Login: verify a username/password pair against the stored hash.
//
// Every call loads the store afresh. Failures are reported through the
// returned Outcome and never as a Go error.
type AuthService interface {
	CheckUsername(ctx context.Context, username string) Outcome
	Signup(ctx context.Context, username, password, passwordConfirm string) Outcome
	Login(ctx context.Context, username, password string) Outcome
}

// authService is the concrete AuthService backed by a credential repository
// and a password hasher.
type authService struct {
	repo     credentials.Repository
	hasher   cryptox.Hasher
	validate *validator.Validate
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given store and hasher.
func NewAuthService(repo credentials.Repository, hasher cryptox.Hasher, log logging.Logger) AuthService {
	return &authService{
		repo:     repo,
		hasher:   hasher,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With("component", "auth"),
	}
}

var validationKinds = map[error]OutcomeKind{
	common.ErrEmptyUsername:    OutcomeEmptyUsername,
	common.ErrUsernameTaken:    OutcomeUsernameTaken,
	common.ErrEmptyPassword:    OutcomeEmptyPassword,
	common.ErrPasswordMismatch: OutcomePasswordMismatch,
}

func validationKind(err error) OutcomeKind {
	if k, ok := validationKinds[err]; ok {
		return k
	}
	return OutcomeInvalidForm
}

// CheckUsername applies the username rules of Signup without touching the
// password, so the caller can reject a name before asking for secrets.
func (s *authService) CheckUsername(ctx context.Context, username string) Outcome {
	store, err := s.repo.Load(ctx)
	if err != nil {
		return s.report(ctx, "check username", Outcome{Kind: OutcomeLoadFailure, Username: username, Err: err})
	}
	if err := checkUsername(store, username); err != nil {
		return s.report(ctx, "check username", Outcome{Kind: validationKind(err), Username: username, Err: err})
	}
	return Outcome{Kind: OutcomeUsernameAvailable, Username: username}
}

// Signup registers username under an exclusive store lock. Nothing is written
// unless every rule passes and hashing succeeds.
func (s *authService) Signup(ctx context.Context, username, password, passwordConfirm string) Outcome {
	form := models.SignupForm{Username: username, Password: password, PasswordConfirm: passwordConfirm}

	var out Outcome
	err := s.repo.WithLock(ctx, func(ctx context.Context) error {
		out = s.signup(ctx, form)
		return nil
	})
	if err != nil {
		out = Outcome{Kind: OutcomeLoadFailure, Username: username, Err: err}
	}
	return s.report(ctx, "signup", out)
}

func (s *authService) signup(ctx context.Context, form models.SignupForm) Outcome {
	store, err := s.repo.Load(ctx)
	if err != nil {
		return Outcome{Kind: OutcomeLoadFailure, Username: form.Username, Err: err}
	}

	if err := s.validateSignup(store, form); err != nil {
		return Outcome{Kind: validationKind(err), Username: form.Username, Err: err}
	}

	hash, err := s.hasher.Hash(form.Password)
	if err != nil {
		return Outcome{Kind: OutcomeHashFailure, Username: form.Username, Err: err}
	}

	// The loaded store stays untouched if saving fails.
	next := store.Clone()
	next[form.Username] = models.Credential{PasswordHash: hash}
	if err := s.repo.Save(ctx, next); err != nil {
		return Outcome{Kind: OutcomeSaveFailure, Username: form.Username, Err: err}
	}

	return Outcome{Kind: OutcomeSignedUp, Username: form.Username}
}

// Login checks password against the stored hash of username. An unknown
// username is rejected without consulting the hasher.
func (s *authService) Login(ctx context.Context, username, password string) Outcome {
	store, err := s.repo.Load(ctx)
	if err != nil {
		return s.report(ctx, "login", Outcome{Kind: OutcomeLoadFailure, Username: username, Err: err})
	}

	cred, ok := store[username]
	if !ok {
		return s.report(ctx, "login", Outcome{Kind: OutcomeUnknownUser, Username: username, Err: common.ErrUnknownUser})
	}

	if !s.hasher.Verify(password, cred.PasswordHash) {
		return s.report(ctx, "login", Outcome{Kind: OutcomeWrongPassword, Username: username, Err: common.ErrInvalidCredential})
	}

	return s.report(ctx, "login", Outcome{Kind: OutcomeLoggedIn, Username: username})
}

// validateSignup returns the first broken rule in this order: empty username,
// taken username, empty password, confirmation mismatch.
func (s *authService) validateSignup(store models.CredentialStore, form models.SignupForm) error {
	failed := make(map[string]bool)
	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			failed[fe.Field()] = true
		}
	}

	switch {
	case failed["Username"]:
		return common.ErrEmptyUsername
	case store.Has(form.Username):
		return common.ErrUsernameTaken
	case failed["Password"]:
		return common.ErrEmptyPassword
	case failed["PasswordConfirm"]:
		return common.ErrPasswordMismatch
	}
	return nil
}

func checkUsername(store models.CredentialStore, username string) error {
	if username == "" {
		return common.ErrEmptyUsername
	}
	if store.Has(username) {
		return common.ErrUsernameTaken
	}
	return nil
}

func (s *authService) report(ctx context.Context, op string, out Outcome) Outcome {
	args := []any{"op", op, "username", out.Username, "outcome", out.Kind.String()}
	switch {
	case out.Success():
		s.log.Info(ctx, "auth operation succeeded", args...)
	case errors.Is(out.Err, common.ErrValidation):
		s.log.Info(ctx, "auth operation rejected", append(args, "reason", out.Err)...)
	default:
		s.log.Error(ctx, "auth operation failed", append(args, "error", out.Err)...)
	}
	return out
}
