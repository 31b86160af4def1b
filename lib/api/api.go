package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"totem-auth/lib/data"
	"totem-auth/lib/identity"
)

// SuccessResponse creates a successful API Gateway response
func SuccessResponse(statusCode int, payload interface{}, logger *logrus.Logger) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal response data")
		return ErrorResponse(http.StatusInternalServerError, "Internal server error", err, logger)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type":                     "application/json",
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "true",
		},
	}
}

// ErrorResponse creates an error API Gateway response. The body always carries
// a human-readable message plus the raw underlying error message; stack traces
// and internal identifiers never leave the handler.
func ErrorResponse(statusCode int, message string, cause error, logger *logrus.Logger) events.APIGatewayProxyResponse {
	errorData := map[string]interface{}{
		"message": message,
	}
	if cause != nil {
		errorData["error"] = cause.Error()
	}

	body, err := json.Marshal(errorData)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal error response")
		body = []byte(`{"message":"Internal server error"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type":                     "application/json",
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "true",
		},
	}
}

// StatusForError is the single error-to-status mapping shared by every
// handler. Registration and authentication failures are the caller's problem;
// guest provisioning and configuration failures are ours.
func StatusForError(err error) int {
	var registration *identity.RegistrationError
	if errors.As(err, &registration) {
		return http.StatusBadRequest
	}

	var authentication *identity.AuthenticationError
	if errors.As(err, &authentication) {
		return http.StatusBadRequest
	}

	var anonymous *identity.AnonymousRegistrationError
	if errors.As(err, &anonymous) {
		return http.StatusBadGateway
	}

	var configuration *data.ConfigurationError
	if errors.As(err, &configuration) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
