package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oggyb/omni-notify/internal/omni"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) JSONResponse {
	t.Helper()
	var env JSONResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestRespondGatewayError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"transport", &omni.Error{Kind: omni.KindTransport, Message: "request failed"}, http.StatusServiceUnavailable, "gateway unreachable: request failed"},
		{"http", &omni.Error{Kind: omni.KindHTTP, Status: 400, Body: "Invalid request: missing recipient\n"}, http.StatusBadGateway, "gateway returned 400: Invalid request: missing recipient"},
		{"decode", &omni.Error{Kind: omni.KindDecode, Message: "bad"}, http.StatusBadGateway, "invalid gateway response: omni: decode error: bad"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondGatewayError(rec, tc.err)

			assert.Equal(t, tc.wantCode, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.wantCode, env.Error.Code)
			assert.Equal(t, tc.wantMsg, env.Error.Message)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, HealthPayload{Status: "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.NotEmpty(t, env.Timestamp)
}
