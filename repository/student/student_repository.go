package student

import (
	"context"
	"errors"
	"regexp"

	"github.com/muhammadheryan/student-api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "students"

// ErrDuplicateKey is returned when a write collides with the unique email index.
var ErrDuplicateKey = errors.New("student email already exists")

type Mongo struct {
	coll *mongo.Collection
}

type StudentRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, data *model.Student) (*model.Student, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Student, error)
	List(ctx context.Context, filter *model.StudentFilter, page, perPage int) ([]model.Student, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *model.StudentPatch) (*model.Student, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.Student, error)
}

func NewStudentRepository(db *mongo.Database) StudentRepository {
	return &Mongo{coll: db.Collection(collectionName)}
}

func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	return err
}

func (s *Mongo) Create(ctx context.Context, data *model.Student) (*model.Student, error) {
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

func (s *Mongo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Student, error) {
	var entity model.Student
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns one page of students whose first or last name contains the
// search term (case-insensitive) and the total number of matches.
func (s *Mongo) List(ctx context.Context, filter *model.StudentFilter, page, perPage int) ([]model.Student, int64, error) {
	query := bson.M{}
	if filter != nil && filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query = bson.M{"$or": bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
		}}
	}

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip, ok := pageOffset(page, perPage, total)
	if !ok {
		return []model.Student{}, total, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(int64(perPage))

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]model.Student, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// pageOffset returns how many documents precede page. It reports false when
// the page starts past total, so huge page numbers never reach the server.
func pageOffset(page, perPage int, total int64) (int64, bool) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || int64(page-1) > total/int64(perPage) {
		return 0, false
	}
	return int64(page-1) * int64(perPage), true
}

func (s *Mongo) Update(ctx context.Context, id primitive.ObjectID, patch *model.StudentPatch) (*model.Student, error) {
	set := bson.M{}
	setIfPresent(set, "firstName", patch.FirstName)
	setIfPresent(set, "lastName", patch.LastName)
	setIfPresent(set, "email", patch.Email)
	setIfPresent(set, "phone", patch.Phone)
	setIfPresent(set, "gender", patch.Gender)
	setIfPresent(set, "profilePic", patch.ProfilePic)

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	var entity model.Student
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &entity, nil
}

// Delete removes the student and returns the removed document, or nil when none matched.
func (s *Mongo) Delete(ctx context.Context, id primitive.ObjectID) (*model.Student, error) {
	var entity model.Student
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func setIfPresent(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}
