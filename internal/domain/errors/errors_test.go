package errors

import (
	"net/http"
	"testing"

	"challengehub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: ErrMissingFields.WrapMessage("register"), want: KindValidation},
		{name: "conflict", err: errors.Wrap(ErrEmailTaken, "register"), want: KindConflict},
		{name: "auth", err: ErrInvalidCredentials, want: KindAuth},
		{name: "not found", err: errors.Wrap(ErrChallengeNotFound, "delete"), want: KindNotFound},
		{name: "store", err: errors.Wrap(NewDatabaseExecuteError(errors.New("boom"), "insert"), "create"), want: KindStore},
		{name: "plain", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrappedBaseErrorKeepsIdentity(t *testing.T) {
	err := ErrUsernameTaken.WrapMessage("user registration failed")

	assert.True(t, errors.Is(err, ErrUsernameTaken))
	assert.False(t, errors.Is(err, ErrEmailTaken))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "USERNAME_TAKEN", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to insert user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to insert user", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}
