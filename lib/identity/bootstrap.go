package identity

import (
	"os"

	"github.com/sirupsen/logrus"

	"totem-auth/lib/clients"
	"totem-auth/lib/constants"
	"totem-auth/lib/data"
)

// NewFromEnvironment wires configuration, the shared credential, and the
// Cognito client into an orchestrator during Lambda cold start. Configuration
// comes from the SSM parameter store when CONFIG_SOURCE=ssm, otherwise from
// the environment with non-production defaults. Missing identifiers are fatal.
func NewFromEnvironment(logger *logrus.Logger, isLocal bool) *Orchestrator {
	var configRepository data.ConfigRepository
	var secretRepository data.SecretRepository

	if os.Getenv("CONFIG_SOURCE") == "ssm" {
		region := os.Getenv(constants.ENV_REGION)
		if region == "" {
			region = constants.DEFAULT_REGION
		}
		ssmRepository := &data.SSMDao{
			SSM:    clients.NewSSMClient(region, isLocal),
			Logger: logger,
		}
		configRepository = &data.SSMConfigDao{SSM: ssmRepository}
		secretRepository = &data.SSMSecretDao{SSM: ssmRepository}
	} else {
		configRepository = &data.EnvConfigDao{}
		secretRepository = &data.StaticSecretDao{}
	}

	cfg, err := configRepository.GetDirectoryConfig()
	if err != nil {
		logger.WithFields(logrus.Fields{
			"operation": "init",
			"error":     err.Error(),
		}).Fatal("Error loading Cognito configuration")
	}

	password, err := secretRepository.GetDirectoryPassword()
	if err != nil {
		logger.WithFields(logrus.Fields{
			"operation": "init",
			"error":     err.Error(),
		}).Fatal("Error loading directory credential")
	}

	return &Orchestrator{
		Directory: &data.CognitoDao{
			Cognito:  clients.NewCognitoClient(cfg.Region, isLocal),
			Config:   cfg,
			Password: password,
			Logger:   logger,
		},
		Logger: logger,
	}
}
