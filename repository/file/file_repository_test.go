package file_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	filerepo "github.com/muhammadheryan/student-api/repository/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_SaveAndRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	repo, err := filerepo.NewFileRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := repo.Save(ctx, ".png", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, ".png", strings.NewReader("two"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+\.png$`), first)
	assert.NotEqual(t, first, second)
	assert.FileExists(t, filepath.Join(dir, first))

	content, err := os.ReadFile(filepath.Join(dir, second))
	require.NoError(t, err)
	assert.Equal(t, "two", string(content))

	require.NoError(t, repo.Remove(ctx, first))
	assert.NoFileExists(t, filepath.Join(dir, first))
	assert.Error(t, repo.Remove(ctx, first))
}

func TestFileRepository_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	repo, err := filerepo.NewFileRepository(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.png"), []byte("x"), 0o644))

	assert.ErrorIs(t, repo.Remove(context.Background(), "../secret.png"), filerepo.ErrInvalidName)
	assert.ErrorIs(t, repo.Remove(context.Background(), ""), filerepo.ErrInvalidName)
	assert.ErrorIs(t, repo.Remove(context.Background(), "sub/keep.png"), filerepo.ErrInvalidName)
	assert.FileExists(t, filepath.Join(dir, "keep.png"))
}
