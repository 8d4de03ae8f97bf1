//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"creator-market/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status. Response: %s", w.Body.String()) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, "Failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the envelope message
// contains expectedErrorMsg. An empty message only checks the status.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()
	decodeError(t, w, expectedStatus, expectedErrorMsg, nil)
}

// AssertErrorDetail is AssertErrorResponse that also decodes the envelope
// detail into target.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string, target any) {
	t.Helper()
	decodeError(t, w, expectedStatus, expectedErrorMsg, target)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string, detail any) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status. Response: %s", w.Body.String())

	var envelope struct {
		httperr.Response
		Detail json.RawMessage `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	require.NoError(t, err, "Failed to decode error response JSON: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, envelope.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
	if detail != nil {
		require.NotEmpty(t, envelope.Detail, "error response carries no detail")
		require.NoError(t, json.Unmarshal(envelope.Detail, detail))
	}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
