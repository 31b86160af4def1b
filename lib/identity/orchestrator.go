// Package identity implements the authentication orchestration over the
// Cognito directory: anonymous guest login, signup with automatic login, and
// returning-user login keyed by document number (CPF).
package identity

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"totem-auth/lib/data"
	"totem-auth/lib/models"
	"totem-auth/lib/util"
)

var errInvalidDocument = errors.New("Documento inválido.")

// Orchestrator sequences the directory calls for the three login flows and
// translates their outcomes into AuthResult or a typed failure. It holds no
// state of its own; every invocation is a short sequential chain of remote
// calls with no retries.
type Orchestrator struct {
	Directory data.DirectoryRepository
	Logger    *logrus.Logger
}

// RegisterAndLogin registers the user if absent, then authenticates. The
// existence pre-check only decides the outcome tag (created vs existing);
// losing the check-then-create race is harmless because a conflict from the
// create step falls through to login as an existing user.
func (o *Orchestrator) RegisterAndLogin(ctx context.Context, user models.UserIdentity) (models.AuthResult, error) {
	document := util.NormalizeDocument(user.DocumentNumber)
	if !util.ValidDocument(document) {
		return models.AuthResult{}, &RegistrationError{Cause: errInvalidDocument}
	}
	user.DocumentNumber = document

	exists, err := o.Directory.UserExists(ctx, document)
	if err != nil {
		return models.AuthResult{}, &RegistrationError{Cause: err}
	}

	outcome := models.OutcomeExisting
	if !exists {
		switch err := o.Directory.CreateUser(ctx, user); {
		case err == nil:
			outcome = models.OutcomeCreated
		case errors.Is(err, data.ErrAlreadyExists):
			// Lost the race to a concurrent signup; login still works.
			o.Logger.WithFields(logrus.Fields{
				"operation": "RegisterAndLogin",
				"username":  document,
			}).Info("User created concurrently, proceeding to login")
		default:
			return models.AuthResult{}, &RegistrationError{Cause: err}
		}
	}

	token, err := o.Directory.Authenticate(ctx, document)
	if err != nil {
		return models.AuthResult{}, &AuthenticationError{Cause: err}
	}

	return models.AuthResult{Success: true, Token: token, Outcome: outcome}, nil
}

// LoginAnonymous mints a fresh guest identity, registers it without any
// existence check, and authenticates it. A create failure is terminal for the
// call; no second suffix is tried.
func (o *Orchestrator) LoginAnonymous(ctx context.Context) (models.AuthResult, error) {
	guest := models.NewAnonymousIdentity()

	o.Logger.WithFields(logrus.Fields{
		"operation": "LoginAnonymous",
		"username":  guest.DocumentNumber,
	}).Debug("Provisioning guest account")

	if err := o.Directory.CreateUser(ctx, guest); err != nil {
		return models.AuthResult{}, &AnonymousRegistrationError{Cause: err}
	}

	token, err := o.Directory.Authenticate(ctx, guest.DocumentNumber)
	if err != nil {
		return models.AuthResult{}, &AuthenticationError{Cause: err}
	}

	return models.AuthResult{Success: true, Token: token, Outcome: models.OutcomeCreated}, nil
}

// LoginByDocument authenticates an already-registered user. Unlike the other
// flows a directory failure here is a structured result, not an error: the
// caller distinguishes business failure (wrong user state) from transport
// failure by the nil error.
func (o *Orchestrator) LoginByDocument(ctx context.Context, documentNumber string) (models.AuthResult, error) {
	document := util.NormalizeDocument(documentNumber)
	if !util.ValidDocument(document) {
		return models.AuthResult{}, errInvalidDocument
	}

	token, err := o.Directory.Authenticate(ctx, document)
	if err != nil {
		return models.AuthResult{Success: false, Message: err.Error()}, nil
	}

	return models.AuthResult{Success: true, Token: token, Outcome: models.OutcomeExisting}, nil
}

// Register creates and confirms the account without logging in. Kept for the
// signup-only endpoint; uses the same typed failure contract as the combined
// flow.
func (o *Orchestrator) Register(ctx context.Context, user models.UserIdentity) error {
	document := util.NormalizeDocument(user.DocumentNumber)
	if !util.ValidDocument(document) {
		return &RegistrationError{Cause: errInvalidDocument}
	}
	user.DocumentNumber = document

	if err := o.Directory.CreateUser(ctx, user); err != nil {
		return &RegistrationError{Cause: err}
	}
	return nil
}
