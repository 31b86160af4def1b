// Package main implements the anonymous guest login Lambda.
//
// Each request mints a disposable guest account in the Cognito user pool
// (username "anon_" + random suffix), force-confirms it, and authenticates it
// with the shared directory credential. Guest accounts are never reused or
// looked up again.
package main

import (
	"context"
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

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
}

func Handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := uuid.New().String()

	logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"operation":      "Handler",
	}).Info("Anonymous login request received")

	result, err := orchestrator.LoginAnonymous(ctx)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"operation":      "Handler",
			"error":          err.Error(),
		}).Error("Anonymous login failed")
		return api.ErrorResponse(api.StatusForError(err), "Erro no login anônimo", err, logger), nil
	}

	logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"operation":      "Handler",
	}).Debug("Guest account provisioned and logged in")

	return api.SuccessResponse(http.StatusOK, loginResponse{
		Message: "Logado como visitante",
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
