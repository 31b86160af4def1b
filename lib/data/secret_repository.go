package data

import (
	"os"

	"totem-auth/lib/constants"
)

// SecretRepository supplies the shared directory credential. Every account in
// the pool is provisioned with the same password; injecting it here instead
// of hardcoding it lets the value rotate per environment without a deploy.
type SecretRepository interface {
	GetDirectoryPassword() (string, error)
}

// SSMSecretDao resolves the credential from the parameter store, then the
// environment, then the static fallback. The fallback is only acceptable
// outside production.
type SSMSecretDao struct {
	SSM SSMRepository
}

func (dao *SSMSecretDao) GetDirectoryPassword() (string, error) {
	params, err := dao.SSM.GetParameters()
	if err != nil {
		return "", err
	}
	if password := params[constants.SSM_DEFAULT_PASSWORD]; password != "" {
		return password, nil
	}
	return (&StaticSecretDao{}).GetDirectoryPassword()
}

// StaticSecretDao reads the credential from the environment with the legacy
// constant as fallback.
type StaticSecretDao struct{}

func (dao *StaticSecretDao) GetDirectoryPassword() (string, error) {
	if password := os.Getenv(constants.ENV_DEFAULT_PASSWORD); password != "" {
		return password, nil
	}
	return constants.DEFAULT_PASSWORD, nil
}
