package handler

import (
	"net/http"
	"testing"

	"challengehub/internal/delivery/api/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(e, http.MethodPost, "/register", RegisterRequest{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	registered := decode[UserIDResponse](t, rec)
	assert.NotEmpty(t, registered.Message)
	assert.NotEmpty(t, registered.UserID)

	rec = doRequest(e, http.MethodPost, "/login", LoginRequest{Email: "a@x.com", Password: "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, registered.UserID, decode[UserIDResponse](t, rec).UserID)
}

func TestAuthHandler_Register_Failures(t *testing.T) {
	e := newTestEcho(t)
	registerUser(t, e, "alice", "a@x.com", "pw")

	tests := []struct {
		name     string
		body     any
		wantCode string
	}{
		{name: "duplicate username", body: RegisterRequest{Username: "alice", Email: "new@x.com", Password: "pw"}, wantCode: "USERNAME_TAKEN"},
		{name: "duplicate email", body: RegisterRequest{Username: "bob", Email: "a@x.com", Password: "pw"}, wantCode: "EMAIL_TAKEN"},
		{name: "missing password", body: RegisterRequest{Username: "bob", Email: "b@x.com"}, wantCode: "MISSING_FIELDS"},
		{name: "empty body", body: map[string]string{}, wantCode: "MISSING_FIELDS"},
		{name: "malformed json", body: `{"username":`, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[response.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestAuthHandler_Login_SameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	e := newTestEcho(t)
	registerUser(t, e, "alice", "a@x.com", "pw")

	wrong := doRequest(e, http.MethodPost, "/login", LoginRequest{Email: "a@x.com", Password: "wrong"})
	unknown := doRequest(e, http.MethodPost, "/login", LoginRequest{Email: "nobody@x.com", Password: "pw"})

	assert.Equal(t, http.StatusBadRequest, wrong.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, "incorrect email or password", decode[response.ErrorResponse](t, wrong).Message)
	assert.Equal(t, decode[response.ErrorResponse](t, wrong), decode[response.ErrorResponse](t, unknown))
}
