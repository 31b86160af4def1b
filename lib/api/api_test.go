package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"totem-auth/lib/data"
	"totem-auth/lib/identity"
)

func Test_StatusForError(t *testing.T) {
	cause := errors.New("directory says no")

	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"registration", &identity.RegistrationError{Cause: cause}, http.StatusBadRequest},
		{"authentication", &identity.AuthenticationError{Cause: cause}, http.StatusBadRequest},
		{"anonymous registration", &identity.AnonymousRegistrationError{Cause: cause}, http.StatusBadGateway},
		{"configuration", &data.ConfigurationError{Missing: "COGNITO_USER_POOL_ID"}, http.StatusInternalServerError},
		{"unknown", cause, http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, StatusForError(c.err))
		})
	}
}

func Test_ErrorResponse_Body(t *testing.T) {
	//Arrange
	cause := errors.New("InvalidPasswordException: too short")

	//Act
	response := ErrorResponse(http.StatusBadRequest, "Erro no cadastro", cause, logrus.New())

	//Assert
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "application/json", response.Headers["Content-Type"])

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
	assert.Equal(t, "Erro no cadastro", body["message"])
	assert.Equal(t, "InvalidPasswordException: too short", body["error"])
}

func Test_ErrorResponse_NoCause(t *testing.T) {
	//Act
	response := ErrorResponse(http.StatusBadRequest, "CPF é obrigatório", nil, logrus.New())

	//Assert
	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
	assert.Equal(t, "CPF é obrigatório", body["message"])
	_, hasError := body["error"]
	assert.False(t, hasError)
}

func Test_SuccessResponse_Body(t *testing.T) {
	//Act
	response := SuccessResponse(http.StatusCreated, map[string]string{"message": "Usuário criado e logado"}, logrus.New())

	//Assert
	assert.Equal(t, http.StatusCreated, response.StatusCode)
	assert.JSONEq(t, `{"message":"Usuário criado e logado"}`, response.Body)
	assert.Equal(t, "*", response.Headers["Access-Control-Allow-Origin"])
}
