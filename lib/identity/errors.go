package identity

// Typed failures raised by the orchestrator. Each carries the directory's
// message verbatim; the api package maps the types to HTTP status codes so no
// handler invents its own mapping.

// RegistrationError means the create-user step failed for a named user.
type RegistrationError struct {
	Cause error
}

func (e *RegistrationError) Error() string { return e.Cause.Error() }
func (e *RegistrationError) Unwrap() error { return e.Cause }

// AnonymousRegistrationError means guest provisioning failed. Not user-caused,
// so it maps to a server-side status.
type AnonymousRegistrationError struct {
	Cause error
}

func (e *AnonymousRegistrationError) Error() string { return e.Cause.Error() }
func (e *AnonymousRegistrationError) Unwrap() error { return e.Cause }

// AuthenticationError means the password grant failed after any creation
// steps succeeded.
type AuthenticationError struct {
	Cause error
}

func (e *AuthenticationError) Error() string { return e.Cause.Error() }
func (e *AuthenticationError) Unwrap() error { return e.Cause }
