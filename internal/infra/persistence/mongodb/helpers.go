package mongodb

import (
	"context"
	"strings"

	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// wrapError converts driver errors into repository errors. notFound is
// returned for mongo.ErrNoDocuments.
func wrapError(err error, notFound error, details string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return duplicateKeyError(err)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// Default names of single-field indexes created outside EnsureIndexes.
const (
	legacyIdxUsername = "username_1"
	legacyIdxEmail    = "email_1"
)

// duplicateKeyError names the violated unique field from the index in the server message.
func duplicateKeyError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, idxUsername), strings.Contains(msg, legacyIdxUsername):
		return repository.ErrDuplicateUsername
	case strings.Contains(msg, idxEmail), strings.Contains(msg, legacyIdxEmail):
		return repository.ErrDuplicateEmail
	default:
		return repository.ErrDuplicateKey
	}
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D, notFound error) (*T, error) {
	var result T
	if err := col.FindOne(ctx, filter).Decode(&result); err != nil {
		return nil, wrapError(err, notFound, "find "+col.Name())
	}

	return &result, nil
}

// findMany returns matches in insertion order. The result is never nil.
func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.D) ([]*T, error) {
	cursor, err := col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, wrapError(err, nil, "list "+col.Name())
	}
	defer cursor.Close(ctx)

	results := []*T{}
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "decode "+col.Name())
		}
		results = append(results, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "iterate "+col.Name())
	}

	return results, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc any) error {
	_, err := col.InsertOne(ctx, doc)

	return wrapError(err, nil, "insert into "+col.Name())
}
