package models

// DirectoryConfig holds the Cognito user pool connection parameters.
// Loaded once per cold start, either from environment variables or from
// the SSM parameter store.
type DirectoryConfig struct {
	Region      string `json:"region"`
	UserPoolID  string `json:"user_pool_id"`
	AppClientID string `json:"app_client_id"`
}
