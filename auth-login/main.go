// Package main implements the returning-user login Lambda. The only input is
// the document number (CPF); authentication uses the shared directory
// credential, so possession of a registered CPF is the whole proof.
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
	"totem-auth/lib/util"
)

// Global variables for Lambda cold start optimization
var (
	logger       *logrus.Logger
	isLocal      bool
	orchestrator *identity.Orchestrator
)

type loginRequest struct {
	CPF            string `json:"cpf"`
	DocumentNumber string `json:"documentNumber"`
}

func Handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := uuid.New().String()

	body := request.Body
	if body == "" {
		body = "{}"
	}

	var login loginRequest
	if err := json.Unmarshal([]byte(body), &login); err != nil {
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"operation":      "Handler",
			"error":          err.Error(),
		}).Error("Invalid request body for login")
		return api.ErrorResponse(http.StatusBadRequest, "Corpo da requisição inválido", err, logger), nil
	}

	document := login.CPF
	if document == "" {
		document = login.DocumentNumber
	}
	document = util.NormalizeDocument(document)
	if !util.ValidDocument(document) {
		return api.ErrorResponse(http.StatusBadRequest, "CPF é obrigatório", nil, logger), nil
	}

	logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"operation":      "Handler",
		"username":       document,
	}).Info("Login request received")

	result, err := orchestrator.LoginByDocument(ctx, document)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"operation":      "Handler",
			"username":       document,
			"error":          err.Error(),
		}).Error("Login failed unexpectedly")
		return api.ErrorResponse(api.StatusForError(err), "Erro no login", err, logger), nil
	}

	// Business failures (user missing, unconfirmed, bad credential state) come
	// back as a structured result, not an error.
	if !result.Success {
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"operation":      "Handler",
			"username":       document,
			"message":        result.Message,
		}).Info("Login rejected by directory")
		return api.SuccessResponse(http.StatusBadRequest, result, logger), nil
	}

	result.Message = "Login realizado com sucesso"
	return api.SuccessResponse(http.StatusOK, result, logger), nil
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
