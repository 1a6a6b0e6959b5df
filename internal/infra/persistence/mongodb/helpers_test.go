package mongodb

import (
	"testing"

	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func duplicateOn(index string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: web2Aug.users index: " + index + " dup key: { : \"x\" }",
		}},
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no documents", err: mongo.ErrNoDocuments, want: repository.ErrUserNotFound},
		{name: "duplicate username", err: duplicateOn(idxUsername), want: repository.ErrDuplicateUsername},
		{name: "duplicate email", err: duplicateOn(idxEmail), want: repository.ErrDuplicateEmail},
		{name: "duplicate id", err: duplicateOn(idxUserID), want: repository.ErrDuplicateKey},
		{name: "duplicate username on existing index", err: duplicateOn(legacyIdxUsername), want: repository.ErrDuplicateUsername},
		{name: "duplicate email on existing index", err: duplicateOn(legacyIdxEmail), want: repository.ErrDuplicateEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, wrapError(tt.err, repository.ErrUserNotFound, "find users"), tt.want)
		})
	}
}

func TestWrapError_StoreFailure(t *testing.T) {
	cause := errors.New("server selection timeout")
	err := wrapError(cause, repository.ErrUserNotFound, "find users")

	assert.Equal(t, domainerrors.KindStore, domainerrors.KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, wrapError(nil, repository.ErrUserNotFound, "find users"))
}

func TestIndexConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "options conflict", err: mongo.CommandError{Code: 85, Name: "IndexOptionsConflict"}, want: true},
		{name: "key specs conflict", err: mongo.CommandError{Code: 86, Name: "IndexKeySpecsConflict"}, want: true},
		{name: "wrapped conflict", err: errors.Wrap(mongo.CommandError{Code: 85}, "create index"), want: true},
		{name: "duplicate values", err: mongo.CommandError{Code: 11000, Name: "DuplicateKey"}},
		{name: "other", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, indexConflict(tt.err))
		})
	}
}
