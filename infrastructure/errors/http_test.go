package errors_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	infraerrors "github.com/jonesrussell/north-cloud/content-creator/infrastructure/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantType    string
	}{
		{
			name:        "openai error object",
			status:      http.StatusTooManyRequests,
			body:        `{"error":{"message":"You exceeded your current quota","type":"insufficient_quota","code":"insufficient_quota"}}`,
			wantMessage: "You exceeded your current quota",
			wantType:    "insufficient_quota",
		},
		{
			name:        "error string",
			status:      http.StatusUnauthorized,
			body:        `{"error":"invalid api key"}`,
			wantMessage: "invalid api key",
		},
		{
			name:        "message field",
			status:      http.StatusBadRequest,
			body:        `{"message":"bad size"}`,
			wantMessage: "bad size",
		},
		{
			name:        "json api errors",
			status:      http.StatusBadRequest,
			body:        `{"errors":[{"title":"Invalid","detail":"n must be 1"},{"title":"Other"}]}`,
			wantMessage: "Invalid: n must be 1; Other",
		},
		{
			name:        "plain text",
			status:      http.StatusBadGateway,
			body:        "upstream down\n",
			wantMessage: "upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := infraerrors.ParseHTTPError(response(tt.status, tt.body))
			require.Error(t, err)

			var httpErr *infraerrors.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
			assert.Equal(t, tt.wantType, httpErr.Type)
		})
	}
}

func TestParseHTTPError_SuccessIsNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, infraerrors.ParseHTTPError(response(http.StatusOK, "{}")))
}

func TestGetHTTPStatusCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("chat completion: %w", infraerrors.ParseHTTPError(response(http.StatusForbidden, "nope")))

	code, ok := infraerrors.GetHTTPStatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, code)

	_, ok = infraerrors.GetHTTPStatusCode(fmt.Errorf("plain"))
	assert.False(t, ok)
}
