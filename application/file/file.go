package file

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/muhammadheryan/student-api/constant"
	filerepo "github.com/muhammadheryan/student-api/repository/file"
	"github.com/muhammadheryan/student-api/utils/errors"
	"github.com/muhammadheryan/student-api/utils/logger"
	"go.uber.org/zap"
)

// FileApp keeps "file referenced by a record" and "file on disk" consistent.
// Cleanup never fails the caller: errors are logged and swallowed.
type FileApp interface {
	// Upload stores an incoming image and returns its generated name.
	Upload(ctx context.Context, originalName, contentType string, r io.Reader) (string, error)
	// Discard removes an upload that never got bound to a record.
	Discard(ctx context.Context, name string)
	// Replace removes the previous file once a record committed to current.
	Replace(ctx context.Context, previous, current string)
	// Release removes the file of a record that was deleted.
	Release(ctx context.Context, name string)
}

type fileAppImpl struct {
	fileRepo filerepo.FileRepository
}

func NewFileApp(fileRepo filerepo.FileRepository) FileApp {
	return &fileAppImpl{fileRepo: fileRepo}
}

func (s *fileAppImpl) Upload(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.SetCustomError(constant.ErrInvalidFile)
	}

	name, err := s.fileRepo.Save(ctx, strings.ToLower(filepath.Ext(originalName)), r)
	if err != nil {
		logger.Error("[Upload] err fileRepo.Save", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	return name, nil
}

func (s *fileAppImpl) Discard(ctx context.Context, name string) {
	s.remove(ctx, "[Discard]", name)
}

func (s *fileAppImpl) Replace(ctx context.Context, previous, current string) {
	if current == "" || previous == current {
		return
	}
	s.remove(ctx, "[Replace]", previous)
}

func (s *fileAppImpl) Release(ctx context.Context, name string) {
	s.remove(ctx, "[Release]", name)
}

func (s *fileAppImpl) remove(ctx context.Context, op, name string) {
	if name == "" {
		return
	}
	if err := s.fileRepo.Remove(ctx, name); err != nil {
		logger.Warn(op+" err fileRepo.Remove", zap.String("file", name), zap.String("error", err.Error()))
	}
}
