// Package main implements the signup-and-login Lambda.
//
// New users register with name, email, and document number (CPF); the
// document number, stripped to digits, becomes the Cognito username. A user
// that already exists is logged straight in, so retrying a signup is
// harmless: 201 means this request created the account, 200 means it was
// already there.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"totem-auth/lib/api"
	"totem-auth/lib/identity"
	"totem-auth/lib/models"
	"totem-auth/lib/util"
)

// Global variables for Lambda cold start optimization
var (
	logger       *logrus.Logger
	isLocal      bool
	orchestrator *identity.Orchestrator
)

type signupRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	DocumentNumber string `json:"documentNumber"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
}

func Handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := uuid.New().String()

	body := request.Body
	if body == "" {
		body = "{}"
	}

	var signup signupRequest
	if err := json.Unmarshal([]byte(body), &signup); err != nil {
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"operation":      "Handler",
			"error":          err.Error(),
		}).Error("Invalid request body for signup")
		return api.ErrorResponse(http.StatusBadRequest, "Corpo da requisição inválido", err, logger), nil
	}

	if signup.Name == "" || signup.Email == "" || signup.DocumentNumber == "" {
		return api.ErrorResponse(http.StatusBadRequest, "Todos os campos são obrigatórios", nil, logger), nil
	}

	document := util.NormalizeDocument(signup.DocumentNumber)

	logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"operation":      "Handler",
		"username":       document,
		"email":          signup.Email,
	}).Info("Signup and login request received")

	result, err := orchestrator.RegisterAndLogin(ctx, models.UserIdentity{
		DocumentNumber: document,
		DisplayName:    signup.Name,
		Email:          signup.Email,
	})
	if err != nil {
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"operation":      "Handler",
			"username":       document,
			"error":          err.Error(),
		}).Error("Signup and login failed")
		return api.ErrorResponse(api.StatusForError(err), err.Error(), err, logger), nil
	}

	created := result.Outcome == models.OutcomeCreated
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"operation":      "Handler",
		"username":       document,
		"outcome":        result.Outcome,
	}).Debug("User registered and logged in")

	return api.SuccessResponse(status, loginResponse{
		Message: util.ConditionalString(created, "Usuário criado e logado", "Usuário já cadastrado, logado"),
		Token:   result.Token.IDToken,
		UserID:  result.Token.AccessToken,
	}, logger), nil
}

func main() {
	lambda.Start(Handler)
}

func init() {
	isLocal, _ = strconv.ParseBool(os.Getenv("IS_LOCAL"))

	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	util.SetLogLevel(logger, os.Getenv("LOG_LEVEL"))

	orchestrator = identity.NewFromEnvironment(logger, isLocal)
}
