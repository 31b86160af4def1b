package data

import (
	"fmt"
	"os"

	"totem-auth/lib/constants"
	"totem-auth/lib/models"
)

// ConfigurationError indicates the pool identifiers are missing after
// defaulting. Fatal at cold start, 500-equivalent if hit per request.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration parameter %s is not set", e.Missing)
}

// ConfigRepository supplies the Cognito connection parameters. Two
// interchangeable strategies exist: process environment (local/dev) and the
// SSM parameter store (production). The orchestrator never knows which one
// produced its config.
type ConfigRepository interface {
	GetDirectoryConfig() (models.DirectoryConfig, error)
}

// EnvConfigDao reads the configuration from environment variables, falling
// back to non-production defaults.
type EnvConfigDao struct{}

func (dao *EnvConfigDao) GetDirectoryConfig() (models.DirectoryConfig, error) {
	cfg := models.DirectoryConfig{
		Region:      os.Getenv(constants.ENV_REGION),
		UserPoolID:  os.Getenv(constants.ENV_USER_POOL_ID),
		AppClientID: os.Getenv(constants.ENV_APP_CLIENT_ID),
	}
	if cfg.Region == "" {
		cfg.Region = constants.DEFAULT_REGION
	}
	if cfg.UserPoolID == "" {
		cfg.UserPoolID = constants.DEFAULT_USER_POOL_ID
	}
	if cfg.AppClientID == "" {
		cfg.AppClientID = constants.DEFAULT_APP_CLIENT_ID
	}
	return validateConfig(cfg)
}

// SSMConfigDao builds the configuration from parameter-store values fetched
// by an SSMRepository. The region still comes from the environment since the
// SSM client itself needs it before any parameter can be read.
type SSMConfigDao struct {
	SSM SSMRepository
}

func (dao *SSMConfigDao) GetDirectoryConfig() (models.DirectoryConfig, error) {
	params, err := dao.SSM.GetParameters()
	if err != nil {
		return models.DirectoryConfig{}, fmt.Errorf("failed to fetch parameters: %w", err)
	}

	region := os.Getenv(constants.ENV_REGION)
	if region == "" {
		region = constants.DEFAULT_REGION
	}

	return validateConfig(models.DirectoryConfig{
		Region:      region,
		UserPoolID:  params[constants.SSM_USER_POOL_ID],
		AppClientID: params[constants.SSM_APP_CLIENT_ID],
	})
}

func validateConfig(cfg models.DirectoryConfig) (models.DirectoryConfig, error) {
	if cfg.UserPoolID == "" {
		return models.DirectoryConfig{}, &ConfigurationError{Missing: constants.ENV_USER_POOL_ID}
	}
	if cfg.AppClientID == "" {
		return models.DirectoryConfig{}, &ConfigurationError{Missing: constants.ENV_APP_CLIENT_ID}
	}
	return cfg, nil
}
