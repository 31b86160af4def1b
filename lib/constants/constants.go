package constants

// SSM parameter store keys. All Cognito parameters live under one path so a
// single GetParametersByPath call fetches the whole configuration.
const (
	SSM_PATH_PREFIX      = "/cognito"
	SSM_USER_POOL_ID     = "/cognito/user_pool_id"
	SSM_APP_CLIENT_ID    = "/cognito/app_client_id"
	SSM_DEFAULT_PASSWORD = "/cognito/default_password"
)

// Environment variable names for the env-based configuration strategy.
const (
	ENV_USER_POOL_ID     = "COGNITO_USER_POOL_ID"
	ENV_APP_CLIENT_ID    = "COGNITO_APP_CLIENT_ID"
	ENV_REGION           = "AWS_REGION"
	ENV_DEFAULT_PASSWORD = "COGNITO_DEFAULT_PASSWORD"
)

// Defaults usable only outside production.
const (
	DEFAULT_USER_POOL_ID  = "teste-pool-id"
	DEFAULT_APP_CLIENT_ID = "teste-app-client-id"
	DEFAULT_REGION        = "us-east-1"

	// Legacy shared directory password, kept as the last-resort fallback
	// behind data.SecretRepository.
	DEFAULT_PASSWORD = "SoatChallenge#01"
)
