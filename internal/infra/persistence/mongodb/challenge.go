package mongodb

import (
	"context"
	"encoding/json"

	"challengehub/internal/domain/entity"
	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// challengeDoc is the stored challenge. Content fields keep whatever BSON
// type they were written with.
type challengeDoc struct {
	ChallengeID string        `bson:"challengeId"`
	UserID      string        `bson:"userId"`
	Text        bson.RawValue `bson:"text"`
	Description bson.RawValue `bson:"description"`
	Dataset     bson.RawValue `bson:"dataset"`
	Picture     bson.RawValue `bson:"picture"`
	Result      bson.RawValue `bson:"result"`
}

func (d *challengeDoc) toEntity() (*entity.Challenge, error) {
	c := &entity.Challenge{ChallengeID: d.ChallengeID, UserID: d.UserID}

	fields := []struct {
		dst *json.RawMessage
		src bson.RawValue
	}{
		{&c.Text, d.Text},
		{&c.Description, d.Description},
		{&c.Dataset, d.Dataset},
		{&c.Picture, d.Picture},
		{&c.Result, d.Result},
	}
	for _, f := range fields {
		value, err := contentJSON(f.src)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "decode challenge "+d.ChallengeID)
		}
		*f.dst = value
	}

	return c, nil
}

// newChallengeDoc builds the insert document. Absent and null content fields are left out.
func newChallengeDoc(c *entity.Challenge) (bson.D, error) {
	doc := bson.D{
		{Key: "challengeId", Value: c.ChallengeID},
		{Key: "userId", Value: c.UserID},
	}

	fields := []struct {
		key string
		raw json.RawMessage
	}{
		{"text", c.Text},
		{"description", c.Description},
		{"dataset", c.Dataset},
		{"picture", c.Picture},
		{"result", c.Result},
	}
	for _, f := range fields {
		value, ok, err := contentValue(f.raw)
		if err != nil {
			return nil, err
		}
		if ok {
			doc = append(doc, bson.E{Key: f.key, Value: value})
		}
	}

	return doc, nil
}

type challengeRepository struct {
	col *mongo.Collection
}

func (r *challengeRepository) Create(ctx context.Context, c *entity.Challenge) error {
	doc, err := newChallengeDoc(c)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "encode challenge")
	}

	return insertOne(ctx, r.col, doc)
}

func (r *challengeRepository) FindByID(ctx context.Context, challengeID string) (*entity.Challenge, error) {
	doc, err := findOne[challengeDoc](ctx, r.col, bson.D{{Key: "challengeId", Value: challengeID}}, repository.ErrChallengeNotFound)
	if err != nil {
		return nil, err
	}

	return doc.toEntity()
}

func (r *challengeRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Challenge, error) {
	return r.findMany(ctx, bson.D{{Key: "userId", Value: userID}})
}

func (r *challengeRepository) FindAll(ctx context.Context) ([]*entity.Challenge, error) {
	return r.findMany(ctx, bson.D{})
}

func (r *challengeRepository) findMany(ctx context.Context, filter bson.D) ([]*entity.Challenge, error) {
	docs, err := findMany[challengeDoc](ctx, r.col, filter)
	if err != nil {
		return nil, err
	}

	challenges := make([]*entity.Challenge, 0, len(docs))
	for _, doc := range docs {
		c, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, c)
	}

	return challenges, nil
}

// DeleteByID removes and returns the challenge atomically, so concurrent
// deletes of one ID report success exactly once.
func (r *challengeRepository) DeleteByID(ctx context.Context, challengeID string) (*entity.Challenge, error) {
	var doc challengeDoc
	err := r.col.FindOneAndDelete(ctx, bson.D{{Key: "challengeId", Value: challengeID}}).Decode(&doc)
	if err != nil {
		return nil, wrapError(err, repository.ErrChallengeNotFound, "delete challenge")
	}

	return doc.toEntity()
}
