package user

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/student-api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

// ErrDuplicateKey is returned when a write collides with the unique email or username index.
var ErrDuplicateKey = errors.New("user email or username already exists")

type Mongo struct {
	coll *mongo.Collection
}

type UserRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, req *model.User) (*model.User, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.User, error)
	MarkVerified(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection(collectionName)}
}

func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
	})
	return err
}

func (s *Mongo) Create(ctx context.Context, data *model.User) (*model.User, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	data.CreatedAt = now
	data.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		data.ID = id
	}
	return data, nil
}

func (s *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.User, error) {
	query := bson.M{}
	if !filter.ID.IsZero() {
		query["_id"] = filter.ID
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.Username != "" {
		query["username"] = filter.Username
	}

	var entity model.User
	if err := s.coll.FindOne(ctx, query).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// MarkVerified sets isVerified and returns the updated user, or nil when the user is gone.
func (s *Mongo) MarkVerified(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	update := bson.M{"$set": bson.M{
		"isVerified": true,
		"updatedAt":  time.Now().UTC().Truncate(time.Millisecond),
	}}

	var entity model.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
