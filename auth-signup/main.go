// Package main implements the signup-only Lambda: registers and confirms the
// account without logging in. Kept for clients that handle login themselves.
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
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
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

	if signup.Name == "" || signup.Email == "" || signup.CPF == "" {
		return api.ErrorResponse(http.StatusBadRequest, "Todos os campos são obrigatórios", nil, logger), nil
	}

	document := util.NormalizeDocument(signup.CPF)

	logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"operation":      "Handler",
		"username":       document,
		"email":          signup.Email,
	}).Info("Signup request received")

	err := orchestrator.Register(ctx, models.UserIdentity{
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
		}).Error("Signup failed")
		return api.ErrorResponse(api.StatusForError(err), "Erro no cadastro", err, logger), nil
	}

	return api.SuccessResponse(http.StatusOK, map[string]string{
		"message": "Usuário cadastrado com sucesso",
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
