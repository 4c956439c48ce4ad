package student

import (
	"context"
	stderrors "errors"

	appfile "github.com/muhammadheryan/student-api/application/file"
	"github.com/muhammadheryan/student-api/constant"
	"github.com/muhammadheryan/student-api/model"
	studentrepo "github.com/muhammadheryan/student-api/repository/student"
	"github.com/muhammadheryan/student-api/thirdparty/rabbitmq"
	"github.com/muhammadheryan/student-api/utils/errors"
	"github.com/muhammadheryan/student-api/utils/logger"
	validatorx "github.com/muhammadheryan/student-api/utils/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type StudentApp interface {
	CreateStudent(ctx context.Context, req *model.CreateStudentRequest, profilePic string) (*model.Student, error)
	ListStudents(ctx context.Context, page int, search string) (*model.StudentListResponse, error)
	GetStudent(ctx context.Context, id string) (*model.Student, error)
	UpdateStudent(ctx context.Context, id string, req *model.UpdateStudentRequest, profilePic string) (*model.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

type studentAppImpl struct {
	studentRepo studentrepo.StudentRepository
	fileApp     appfile.FileApp
	publisher   rabbitmq.EventPublisher
}

func NewStudentApp(studentRepo studentrepo.StudentRepository, fileApp appfile.FileApp, publisher rabbitmq.EventPublisher) StudentApp {
	return &studentAppImpl{studentRepo: studentRepo, fileApp: fileApp, publisher: publisher}
}

// CreateStudent persists a new student. profilePic is the name of an already
// stored upload (or empty); it is discarded whenever the student is not created.
func (s *studentAppImpl) CreateStudent(ctx context.Context, req *model.CreateStudentRequest, profilePic string) (*model.Student, error) {
	if req == nil || (req.IsEmpty() && profilePic == "") {
		s.discard(ctx, profilePic)
		return nil, errors.SetCustomError(constant.ErrEmptyBody)
	}

	req.Normalize()
	if msgs := validatorx.Validate(req); len(msgs) > 0 {
		s.discard(ctx, profilePic)
		return nil, errors.SetValidationError(msgs)
	}

	student, err := s.studentRepo.Create(ctx, &model.Student{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Gender:     req.Gender,
		ProfilePic: profilePic,
	})
	if err != nil {
		s.discard(ctx, profilePic)
		if stderrors.Is(err, studentrepo.ErrDuplicateKey) {
			return nil, errors.SetCustomError(constant.ErrStudentExists)
		}
		logger.Error("[CreateStudent] err studentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.EventStudentCreated, student)
	return student, nil
}

func (s *studentAppImpl) ListStudents(ctx context.Context, page int, search string) (*model.StudentListResponse, error) {
	if page <= 0 {
		page = 1
	}
	perPage := constant.StudentPageSize

	items, total, err := s.studentRepo.List(ctx, &model.StudentFilter{Search: search}, page, perPage)
	if err != nil {
		logger.Error("[ListStudents] err studentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if items == nil {
		return nil, errors.SetCustomError(constant.ErrNoStudentsFound)
	}

	return paginate(items, total, page, perPage), nil
}

func (s *studentAppImpl) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidID)
	}

	student, err := s.studentRepo.GetByID(ctx, oid)
	if err != nil {
		logger.Error("[GetStudent] err studentRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if student == nil {
		return nil, errors.SetCustomError(constant.ErrStudentNotFound)
	}
	return student, nil
}

// UpdateStudent applies the supplied fields. A new profilePic replaces the
// previous file only after the update is committed.
func (s *studentAppImpl) UpdateStudent(ctx context.Context, id string, req *model.UpdateStudentRequest, profilePic string) (*model.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		s.discard(ctx, profilePic)
		return nil, errors.SetCustomError(constant.ErrInvalidID)
	}

	existing, err := s.studentRepo.GetByID(ctx, oid)
	if err != nil {
		s.discard(ctx, profilePic)
		logger.Error("[UpdateStudent] err studentRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		s.discard(ctx, profilePic)
		return nil, errors.SetCustomError(constant.ErrStudentNotFound)
	}

	if req == nil {
		req = &model.UpdateStudentRequest{}
	}
	req.Normalize()
	if req.IsEmpty() && profilePic == "" {
		return nil, errors.SetValidationError([]string{"At least one field must be provided for update"})
	}
	if msgs := validatorx.Validate(req); len(msgs) > 0 {
		s.discard(ctx, profilePic)
		return nil, errors.SetValidationError(msgs)
	}

	updated, err := s.studentRepo.Update(ctx, oid, req.Patch(profilePic))
	if err != nil {
		s.discard(ctx, profilePic)
		if stderrors.Is(err, studentrepo.ErrDuplicateKey) {
			return nil, errors.SetCustomError(constant.ErrStudentExists)
		}
		logger.Error("[UpdateStudent] err studentRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if updated == nil {
		s.discard(ctx, profilePic)
		return nil, errors.SetCustomError(constant.ErrStudentNotFound)
	}

	if profilePic != "" && existing.ProfilePic != "" && existing.ProfilePic != profilePic {
		s.fileApp.Replace(ctx, existing.ProfilePic, profilePic)
	}
	s.publish(ctx, constant.EventStudentUpdated, updated)
	return updated, nil
}

func (s *studentAppImpl) DeleteStudent(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.SetCustomError(constant.ErrInvalidID)
	}

	deleted, err := s.studentRepo.Delete(ctx, oid)
	if err != nil {
		logger.Error("[DeleteStudent] err studentRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if deleted == nil {
		return errors.SetCustomError(constant.ErrStudentNotFound)
	}

	if deleted.ProfilePic != "" {
		s.fileApp.Release(ctx, deleted.ProfilePic)
	}
	s.publish(ctx, constant.EventStudentDeleted, deleted)
	return nil
}

// discard drops an upload that was not bound to any student.
func (s *studentAppImpl) discard(ctx context.Context, profilePic string) {
	if profilePic != "" {
		s.fileApp.Discard(ctx, profilePic)
	}
}

func (s *studentAppImpl) publish(ctx context.Context, key string, student *model.Student) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, student); err != nil {
		logger.Error("[publish] err publisher.Publish", zap.String("routing_key", key), zap.String("error", err.Error()))
	}
}

func paginate(items []model.Student, total int64, page, perPage int) *model.StudentListResponse {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages == 0 {
		totalPages = 1
	}

	res := &model.StudentListResponse{
		Docs:        items,
		TotalDocs:   total,
		Limit:       perPage,
		Page:        page,
		TotalPages:  totalPages,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
	}
	if res.HasPrevPage {
		prev := page - 1
		res.PrevPage = &prev
	}
	if res.HasNextPage {
		next := page + 1
		res.NextPage = &next
	}
	return res
}
