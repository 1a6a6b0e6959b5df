package mongodb

import (
	"context"

	"challengehub/internal/domain/entity"
	"challengehub/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// userDoc is the stored user. The bcrypt hash lives in "password".
type userDoc struct {
	UserID   string `bson:"userId"`
	Username string `bson:"username"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
}

type userRepository struct {
	col *mongo.Collection
}

func (r *userRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "userId", Value: userID}})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	doc, err := findOne[userDoc](ctx, r.col, filter, repository.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		UserID:       doc.UserID,
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.Password,
	}, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return insertOne(ctx, r.col, userDoc{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Password: user.PasswordHash,
	})
}
