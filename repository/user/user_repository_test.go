package user_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/student-api/model"
	userrepo "github.com/muhammadheryan/student-api/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create sets timestamps", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		got, err := repo.Create(ctx, &model.User{Username: "jdoe", Email: "jdoe@example.com", Password: "hash"})
		require.NoError(mt, err)
		assert.False(mt, got.ID.IsZero())
		assert.False(mt, got.CreatedAt.IsZero())
		assert.False(mt, got.IsVerified)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: uniq_email",
		}))

		got, err := repo.Create(ctx, &model.User{Username: "jdoe", Email: "jdoe@example.com", Password: "hash"})
		assert.Nil(mt, got)
		assert.ErrorIs(mt, err, userrepo.ErrDuplicateKey)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "jdoe"},
			{Key: "email", Value: "jdoe@example.com"},
			{Key: "password", Value: "hash"},
			{Key: "isVerified", Value: false},
		}))

		got, err := repo.Get(ctx, &model.UserFilter{Email: "jdoe@example.com"})
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, id, got.ID)
		assert.Equal(mt, "hash", got.Password)
	})

	mt.Run("get missing user", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch))

		got, err := repo.Get(ctx, &model.UserFilter{Username: "nobody"})
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("mark verified", func(mt *mtest.T) {
		repo := userrepo.NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "jdoe"},
			{Key: "email", Value: "jdoe@example.com"},
			{Key: "isVerified", Value: true},
		}}))

		got, err := repo.MarkVerified(ctx, id)
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.True(mt, got.IsVerified)
	})
}
