package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"totem-auth/lib/constants"
)

func Test_SSMSecret_ParameterWins(t *testing.T) {
	//Arrange
	t.Setenv(constants.ENV_DEFAULT_PASSWORD, "env-secret")
	dao := &SSMSecretDao{SSM: &stubSSMRepository{params: map[string]string{
		constants.SSM_DEFAULT_PASSWORD: "ssm-secret",
	}}}

	//Act
	password, err := dao.GetDirectoryPassword()

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "ssm-secret", password)
}

func Test_SSMSecret_FallsBackToEnvironment(t *testing.T) {
	//Arrange
	t.Setenv(constants.ENV_DEFAULT_PASSWORD, "env-secret")
	dao := &SSMSecretDao{SSM: &stubSSMRepository{params: map[string]string{}}}

	//Act
	password, err := dao.GetDirectoryPassword()

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "env-secret", password)
}

func Test_StaticSecret_Fallback(t *testing.T) {
	//Arrange
	t.Setenv(constants.ENV_DEFAULT_PASSWORD, "")

	//Act
	password, err := (&StaticSecretDao{}).GetDirectoryPassword()

	//Assert
	require.NoError(t, err)
	assert.Equal(t, constants.DEFAULT_PASSWORD, password)
}
