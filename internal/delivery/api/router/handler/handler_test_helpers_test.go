package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	apimiddleware "challengehub/internal/delivery/api/middleware"
	"challengehub/internal/delivery/api/validator"
	"challengehub/internal/infra/auth"
	"challengehub/internal/infra/idgen"
	"challengehub/internal/infra/persistence/memory"
	"challengehub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho serves the handlers over an in-memory store with real hashing.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	return newTestEchoWithLogger(t, newDiscardLogger())
}

func newTestEchoWithLogger(t *testing.T, logger *slog.Logger) *echo.Echo {
	t.Helper()

	store := memory.NewStore()
	ids := idgen.NewUUIDGenerator()

	authHandler := NewAuthHandler(AuthHandlerParams{
		AuthUC: impl.NewAuthService(impl.AuthServiceParams{
			UserRepo: store.Users(),
			Hasher:   auth.NewBcryptHasherWithCost(bcrypt.MinCost),
			IDGen:    ids,
			Logger:   logger,
		}),
		Logger: logger,
	})
	challengeHandler := NewChallengeHandler(ChallengeHandlerParams{
		ChallengeUC: impl.NewChallengeService(impl.ChallengeServiceParams{
			UserRepo:      store.Users(),
			ChallengeRepo: store.Challenges(),
			IDGen:         ids,
			Logger:        logger,
		}),
		Logger: logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/newChallenges", challengeHandler.Create)
	e.DELETE("/deleteChallenge/:challengeId", challengeHandler.Delete)
	e.GET("/my-challenges", challengeHandler.ListMine)
	e.GET("/challenges/:challengeId", challengeHandler.GetByID)
	e.GET("/all-challenges", challengeHandler.ListAll)

	return e
}

func doRequest(e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func registerUser(t *testing.T, e *echo.Echo, username, email, password string) string {
	t.Helper()

	rec := doRequest(e, http.MethodPost, "/register", RegisterRequest{Username: username, Email: email, Password: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return decode[UserIDResponse](t, rec).UserID
}
