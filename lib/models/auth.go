package models

// AuthOutcome distinguishes how a successful login came about. The HTTP layer
// maps OutcomeCreated to 201 and OutcomeExisting to 200.
type AuthOutcome string

const (
	// OutcomeCreated means this call registered the user before logging in.
	OutcomeCreated AuthOutcome = "created"
	// OutcomeExisting means the user was already registered.
	OutcomeExisting AuthOutcome = "existing"
)

// TokenPair carries the tokens issued by a successful password grant.
type TokenPair struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
}

// AuthResult is the orchestrator's answer for every flow. It is produced per
// request and never persisted. Token is nil when Success is false.
type AuthResult struct {
	Success bool        `json:"success"`
	Token   *TokenPair  `json:"token,omitempty"`
	Message string      `json:"message,omitempty"`
	Outcome AuthOutcome `json:"outcome,omitempty"`
}
