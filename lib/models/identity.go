package models

import (
	"strings"

	"github.com/google/uuid"
)

// AnonymousDisplayName is the fixed display name given to guest accounts.
const AnonymousDisplayName = "Visitante"

// UserIdentity represents an account in the Cognito directory. The document
// number (CPF, digits only) is the directory username; Email may be empty for
// anonymous identities.
type UserIdentity struct {
	DocumentNumber string `json:"documentNumber"`
	DisplayName    string `json:"name"`
	Email          string `json:"email,omitempty"`
}

// NewAnonymousIdentity mints a disposable guest identity. The username is
// "anon_" plus the first 8 hex characters of a v4 UUID; guests are created
// fresh per request and never looked up again.
func NewAnonymousIdentity() UserIdentity {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return UserIdentity{
		DocumentNumber: "anon_" + suffix,
		DisplayName:    AnonymousDisplayName,
	}
}

// IsAnonymous reports whether the identity is a generated guest account.
func (u UserIdentity) IsAnonymous() bool {
	return strings.HasPrefix(u.DocumentNumber, "anon_")
}
