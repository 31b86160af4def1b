package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/sirupsen/logrus"

	"totem-auth/lib/models"
)

// Sentinel errors surfaced by the directory. Messages are user-facing.
var (
	ErrNotFound      = errors.New("Usuário não encontrado.")
	ErrNotConfirmed  = errors.New("Usuário não confirmado.")
	ErrAlreadyExists = errors.New("Usuário já cadastrado.")
)

// DirectoryRepository is the contract over the Cognito user pool: register
// and force-confirm an account, probe for existence, authenticate with the
// shared credential. Every other error passes through with its original
// message, never swallowed.
type DirectoryRepository interface {
	CreateUser(ctx context.Context, identity models.UserIdentity) error
	UserExists(ctx context.Context, documentNumber string) (bool, error)
	Authenticate(ctx context.Context, documentNumber string) (*models.TokenPair, error)
}

// CognitoAPI is the subset of the Cognito SDK client used by CognitoDao.
type CognitoAPI interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	AdminConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.AdminConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminConfirmSignUpOutput, error)
	AdminGetUser(ctx context.Context, params *cognitoidentityprovider.AdminGetUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminGetUserOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cognitoidentityprovider.AdminInitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminInitiateAuthOutput, error)
}

type CognitoDao struct {
	Cognito  CognitoAPI
	Config   models.DirectoryConfig
	Password string
	Logger   *logrus.Logger
}

// CreateUser registers the identity as a pool account and immediately
// force-confirms it, bypassing email/SMS verification. The two sub-steps fail
// distinctly: a confirm failure leaves the account created but unconfirmed,
// which a later login surfaces as ErrNotConfirmed.
func (dao *CognitoDao) CreateUser(ctx context.Context, identity models.UserIdentity) error {
	attributes := []types.AttributeType{
		{Name: aws.String("name"), Value: aws.String(identity.DisplayName)},
	}
	if identity.Email != "" {
		attributes = append(attributes, types.AttributeType{
			Name:  aws.String("email"),
			Value: aws.String(identity.Email),
		})
	}

	_, err := dao.Cognito.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:       aws.String(dao.Config.AppClientID),
		Username:       aws.String(identity.DocumentNumber),
		Password:       aws.String(dao.Password),
		UserAttributes: attributes,
	})
	if err != nil {
		dao.Logger.WithFields(logrus.Fields{
			"operation": "CreateUser",
			"username":  identity.DocumentNumber,
			"error":     err.Error(),
		}).Error("SignUp failed")

		var exists *types.UsernameExistsException
		if errors.As(err, &exists) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, err.Error())
		}
		return fmt.Errorf("sign up user: %w", err)
	}

	_, err = dao.Cognito.AdminConfirmSignUp(ctx, &cognitoidentityprovider.AdminConfirmSignUpInput{
		UserPoolId: aws.String(dao.Config.UserPoolID),
		Username:   aws.String(identity.DocumentNumber),
	})
	if err != nil {
		dao.Logger.WithFields(logrus.Fields{
			"operation": "CreateUser",
			"username":  identity.DocumentNumber,
			"error":     err.Error(),
		}).Error("AdminConfirmSignUp failed, account left unconfirmed")
		return fmt.Errorf("confirm user: %w", err)
	}

	return nil
}

// UserExists probes the pool for the username. A not-found response is a
// clean false; any other error propagates.
func (dao *CognitoDao) UserExists(ctx context.Context, documentNumber string) (bool, error) {
	_, err := dao.Cognito.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(dao.Config.UserPoolID),
		Username:   aws.String(documentNumber),
	})
	if err != nil {
		var notFound *types.UserNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		dao.Logger.WithFields(logrus.Fields{
			"operation": "UserExists",
			"username":  documentNumber,
			"error":     err.Error(),
		}).Error("AdminGetUser failed")
		return false, fmt.Errorf("get user: %w", err)
	}
	return true, nil
}

// Authenticate runs the admin password grant with the shared credential and
// returns the issued token pair.
func (dao *CognitoDao) Authenticate(ctx context.Context, documentNumber string) (*models.TokenPair, error) {
	output, err := dao.Cognito.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: aws.String(dao.Config.UserPoolID),
		ClientId:   aws.String(dao.Config.AppClientID),
		AuthFlow:   types.AuthFlowTypeAdminNoSrpAuth,
		AuthParameters: map[string]string{
			"USERNAME": documentNumber,
			"PASSWORD": dao.Password,
		},
	})
	if err != nil {
		dao.Logger.WithFields(logrus.Fields{
			"operation": "Authenticate",
			"username":  documentNumber,
			"error":     err.Error(),
		}).Error("AdminInitiateAuth failed")

		var notConfirmed *types.UserNotConfirmedException
		if errors.As(err, &notConfirmed) {
			return nil, ErrNotConfirmed
		}
		var notFound *types.UserNotFoundException
		if errors.As(err, &notFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("initiate auth: %w", err)
	}

	if output.AuthenticationResult == nil {
		return nil, fmt.Errorf("authentication failed: no authentication result returned")
	}

	return &models.TokenPair{
		IDToken:     aws.ToString(output.AuthenticationResult.IdToken),
		AccessToken: aws.ToString(output.AuthenticationResult.AccessToken),
	}, nil
}
