package data

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"totem-auth/lib/models"
)

// MockCognitoClient records calls and returns the configured error per
// operation.
type MockCognitoClient struct {
	SignUpErr  error
	ConfirmErr error
	GetUserErr error
	AuthErr    error
	AuthOutput *cognitoidentityprovider.AdminInitiateAuthOutput

	SignUpCalls  []cognitoidentityprovider.SignUpInput
	ConfirmCalls []cognitoidentityprovider.AdminConfirmSignUpInput
	GetUserCalls []cognitoidentityprovider.AdminGetUserInput
	AuthCalls    []cognitoidentityprovider.AdminInitiateAuthInput
}

func (m *MockCognitoClient) SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error) {
	m.SignUpCalls = append(m.SignUpCalls, *params)
	if m.SignUpErr != nil {
		return nil, m.SignUpErr
	}
	return &cognitoidentityprovider.SignUpOutput{}, nil
}

func (m *MockCognitoClient) AdminConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.AdminConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminConfirmSignUpOutput, error) {
	m.ConfirmCalls = append(m.ConfirmCalls, *params)
	if m.ConfirmErr != nil {
		return nil, m.ConfirmErr
	}
	return &cognitoidentityprovider.AdminConfirmSignUpOutput{}, nil
}

func (m *MockCognitoClient) AdminGetUser(ctx context.Context, params *cognitoidentityprovider.AdminGetUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminGetUserOutput, error) {
	m.GetUserCalls = append(m.GetUserCalls, *params)
	if m.GetUserErr != nil {
		return nil, m.GetUserErr
	}
	return &cognitoidentityprovider.AdminGetUserOutput{}, nil
}

func (m *MockCognitoClient) AdminInitiateAuth(ctx context.Context, params *cognitoidentityprovider.AdminInitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminInitiateAuthOutput, error) {
	m.AuthCalls = append(m.AuthCalls, *params)
	if m.AuthErr != nil {
		return nil, m.AuthErr
	}
	return m.AuthOutput, nil
}

func newCognitoDao(mock *MockCognitoClient) *CognitoDao {
	return &CognitoDao{
		Cognito: mock,
		Config: models.DirectoryConfig{
			Region:      "us-east-1",
			UserPoolID:  "us-east-1_pool",
			AppClientID: "client-abc",
		},
		Password: "shared-secret",
		Logger:   logrus.New(),
	}
}

func Test_CreateUser_SignsUpAndConfirms(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{}
	dao := newCognitoDao(mock)

	//Act
	err := dao.CreateUser(context.Background(), models.UserIdentity{
		DocumentNumber: "12345678900",
		DisplayName:    "Joao",
		Email:          "joao@email.com",
	})

	//Assert
	require.NoError(t, err)
	require.Len(t, mock.SignUpCalls, 1)
	require.Len(t, mock.ConfirmCalls, 1)
	assert.Equal(t, "12345678900", *mock.SignUpCalls[0].Username)
	assert.Equal(t, "client-abc", *mock.SignUpCalls[0].ClientId)
	assert.Equal(t, "shared-secret", *mock.SignUpCalls[0].Password)
	assert.Equal(t, "us-east-1_pool", *mock.ConfirmCalls[0].UserPoolId)
}

func Test_CreateUser_AnonymousOmitsEmail(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{}
	dao := newCognitoDao(mock)

	//Act
	err := dao.CreateUser(context.Background(), models.UserIdentity{
		DocumentNumber: "anon_a1b2c3d4",
		DisplayName:    models.AnonymousDisplayName,
	})

	//Assert
	require.NoError(t, err)
	require.Len(t, mock.SignUpCalls, 1)
	for _, attr := range mock.SignUpCalls[0].UserAttributes {
		assert.NotEqual(t, "email", *attr.Name)
	}
}

func Test_CreateUser_AlreadyExists(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{SignUpErr: &types.UsernameExistsException{Message: aws.String("User already exists")}}
	dao := newCognitoDao(mock)

	//Act
	err := dao.CreateUser(context.Background(), models.UserIdentity{DocumentNumber: "12345678900", DisplayName: "Joao"})

	//Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.Empty(t, mock.ConfirmCalls)
}

func Test_CreateUser_ConfirmFailureIsDistinct(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{ConfirmErr: errors.New("confirmation throttled")}
	dao := newCognitoDao(mock)

	//Act
	err := dao.CreateUser(context.Background(), models.UserIdentity{DocumentNumber: "12345678900", DisplayName: "Joao"})

	//Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirm user")
	require.Len(t, mock.SignUpCalls, 1)
}

func Test_UserExists_NotFoundIsFalse(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{GetUserErr: &types.UserNotFoundException{Message: aws.String("User does not exist")}}
	dao := newCognitoDao(mock)

	//Act
	exists, err := dao.UserExists(context.Background(), "12345678900")

	//Assert
	require.NoError(t, err)
	assert.False(t, exists)
}

func Test_UserExists_True(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{}
	dao := newCognitoDao(mock)

	//Act
	exists, err := dao.UserExists(context.Background(), "12345678900")

	//Assert
	require.NoError(t, err)
	assert.True(t, exists)
}

func Test_UserExists_OtherErrorPropagates(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{GetUserErr: errors.New("throttled")}
	dao := newCognitoDao(mock)

	//Act
	_, err := dao.UserExists(context.Background(), "12345678900")

	//Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func Test_Authenticate_ReturnsTokenPair(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{AuthOutput: &cognitoidentityprovider.AdminInitiateAuthOutput{
		AuthenticationResult: &types.AuthenticationResultType{
			IdToken:     aws.String("id-token"),
			AccessToken: aws.String("access-token"),
		},
	}}
	dao := newCognitoDao(mock)

	//Act
	token, err := dao.Authenticate(context.Background(), "12345678900")

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "id-token", token.IDToken)
	assert.Equal(t, "access-token", token.AccessToken)
	require.Len(t, mock.AuthCalls, 1)
	assert.Equal(t, "12345678900", mock.AuthCalls[0].AuthParameters["USERNAME"])
	assert.Equal(t, "shared-secret", mock.AuthCalls[0].AuthParameters["PASSWORD"])
}

func Test_Authenticate_NotConfirmed(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{AuthErr: &types.UserNotConfirmedException{Message: aws.String("not confirmed")}}
	dao := newCognitoDao(mock)

	//Act
	_, err := dao.Authenticate(context.Background(), "12345678900")

	//Assert
	require.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, "Usuário não confirmado.", err.Error())
}

func Test_Authenticate_NotFound(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{AuthErr: &types.UserNotFoundException{Message: aws.String("no such user")}}
	dao := newCognitoDao(mock)

	//Act
	_, err := dao.Authenticate(context.Background(), "12345678900")

	//Assert
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Usuário não encontrado.", err.Error())
}

func Test_Authenticate_NilResultIsError(t *testing.T) {
	//Arrange
	mock := &MockCognitoClient{AuthOutput: &cognitoidentityprovider.AdminInitiateAuthOutput{}}
	dao := newCognitoDao(mock)

	//Act
	_, err := dao.Authenticate(context.Background(), "12345678900")

	//Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no authentication result")
}
