package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/shared/errors"
)

type replyBody struct {
	Text string `json:"text" binding:"required,max=10"`
}

func bindBody(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/comments/1/responses", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req replyBody
	return BindJSON(c, &req)
}

func TestBindJSON(t *testing.T) {
	require.NoError(t, bindBody(t, `{"text":"ok"}`))

	err := bindBody(t, `{"text":`)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	err = bindBody(t, `{"text":""}`)
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, "text is required", appErr.Details)

	err = bindBody(t, `{"text":"far too long for this"}`)
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "text must be at most 10 characters long", appErr.Details)
}

func TestValidateHTTPURL(t *testing.T) {
	assert.NoError(t, ValidateHTTPURL("base_url", "https://app.example.com"))
	assert.Error(t, ValidateHTTPURL("base_url", "ftp://app.example.com"))
	assert.Error(t, ValidateHTTPURL("base_url", "not a url"))
}
