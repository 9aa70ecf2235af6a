package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potluckhq/potluck/internal/shared/errors"
)

type sampleRequest struct {
	Name       string `json:"name" form:"name" binding:"required,max=10"`
	ClaimLimit int    `json:"claim_limit" form:"claim_limit" binding:"omitempty,gte=1,lte=100"`
}

func newContext(method, target, contentType, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", contentType)
	return c
}

func TestBindRequest_FieldMessagesUseJSONNames(t *testing.T) {
	c := newContext(http.MethodPost, "/", "application/json", `{"claim_limit": 0}`)

	var req sampleRequest
	err := BindRequest(c, &req)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Contains(t, appErr.Details, "name is required")
}

func TestBindRequest_FormBody(t *testing.T) {
	c := newContext(http.MethodPost, "/", "application/x-www-form-urlencoded", "name=Alice&claim_limit=3")

	var req sampleRequest
	require.NoError(t, BindRequest(c, &req))
	assert.Equal(t, "Alice", req.Name)
	assert.Equal(t, 3, req.ClaimLimit)
}

func TestBindRequest_MalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, "/", "application/json", `{"name":`)

	var req sampleRequest
	err := BindRequest(c, &req)
	assert.True(t, errors.IsValidationError(err))
}

func TestBindRequest_BoundsMessages(t *testing.T) {
	c := newContext(http.MethodPost, "/", "application/json", `{"name":"far too long a name","claim_limit":101}`)

	var req sampleRequest
	err := BindRequest(c, &req)
	require.Error(t, err)

	details := errors.GetAppError(err).Details
	assert.Contains(t, details, "name must be at most 10 characters long")
	assert.Contains(t, details, "claim_limit must be less than or equal to 100")
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"12abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := newContext(http.MethodGet, "/", "application/json", "")
			c.Params = gin.Params{{Key: "item_id", Value: tt.raw}}
			got, err := ParseID(c, "item_id")
			if tt.wantErr {
				assert.True(t, errors.IsNotFoundError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotBlank(t *testing.T) {
	type req struct {
		Name string `json:"name" binding:"required,notblank"`
	}
	c := newContext(http.MethodPost, "/", "application/json", `{"name":"   "}`)

	var r req
	err := BindRequest(c, &r)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Details, "name must not be blank")
}
