package service

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/testutil"
	"quintet_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func newContentService(t *testing.T, env *testEnv) (*ContentService, string) {
	t.Helper()
	root := t.TempDir()
	svc := NewContentService(
		repository.NewContentRepository(env.db),
		repository.NewCourseRepository(env.db),
		NewStorageService(&env.cfg.Storage),
		t.TempDir(),
	)
	svc.Storage.Provider = &LocalStorageProvider{Root: root}
	return svc, root
}

func TestContentUpload_Document(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	svc, root := newContentService(t, env)

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)

	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	content, err := svc.Upload(ctx, course.ID, fileHeader(t, "notes.pdf", pdf), "")
	require.NoError(t, err)
	assert.Equal(t, model.ContentTypeDocument, content.Type)
	assert.Equal(t, "notes.pdf", content.Title)
	assert.True(t, strings.HasPrefix(content.URL, "/uploads/courses/"))

	var meta contentMetadata
	require.NoError(t, json.Unmarshal(content.Metadata, &meta))
	assert.Equal(t, util.MimePDF, meta.MimeType)
	stored := filepath.Join(root, filepath.FromSlash(meta.ObjectKey))
	assert.FileExists(t, stored)

	require.NoError(t, svc.Delete(ctx, content.ID))
	assert.NoFileExists(t, stored)
	_, err = svc.Get(ctx, content.ID)
	assert.ErrorIs(t, err, util.ErrContentNotFound)
}

func TestContentUpload_VideoIsProbed(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	svc, _ := newContentService(t, env)

	var probed string
	svc.ProbeVideo = func(path string) (*util.VideoInfo, error) {
		probed = path
		return &util.VideoInfo{Duration: 12.5, Width: 640, Height: 360, Format: "mp4"}, nil
	}

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)

	content, err := svc.Upload(ctx, course.ID, fileHeader(t, "lecture.mp4", []byte{0x00, 0x01, 0x02, 0xff}), "Lecture 1")
	require.NoError(t, err)
	assert.Equal(t, model.ContentTypeVideo, content.Type)
	assert.Equal(t, "Lecture 1", content.Title)
	assert.NotEmpty(t, probed)
	_, statErr := os.Stat(probed)
	assert.True(t, os.IsNotExist(statErr), "temp file removed")

	var meta contentMetadata
	require.NoError(t, json.Unmarshal(content.Metadata, &meta))
	require.NotNil(t, meta.Video)
	assert.Equal(t, 12.5, meta.Video.Duration)
}

func TestContentUpload_RejectsUnknownType(t *testing.T) {
	env := setup(t)
	svc, _ := newContentService(t, env)

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)

	_, err := svc.Upload(context.Background(), course.ID, fileHeader(t, "page.html", []byte("<html><body>hi</body></html>")), "")
	assert.ErrorIs(t, err, util.ErrInvalidFileType)

	_, err = svc.Upload(context.Background(), 999, fileHeader(t, "notes.pdf", []byte("%PDF-1.4")), "")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestContentCreateLink(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	svc, _ := newContentService(t, env)

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)

	content, err := svc.Create(ctx, course.ID, &model.CreateContentRequest{Type: model.ContentTypeLink, URL: "https://example.com"})
	require.NoError(t, err)
	assert.NotZero(t, content.ID)

	_, err = svc.Create(ctx, course.ID, &model.CreateContentRequest{Type: model.ContentTypeLink})
	assert.ErrorIs(t, err, util.ErrInvalidContentInput)

	list, err := svc.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// 链接资料没有存储对象，删除时只删记录
	require.NoError(t, svc.Delete(ctx, content.ID))
}

func TestDeleteCourseCascade_RemovesStoredUploads(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	svc, root := newContentService(t, env)
	env.enrollment.Storage = svc.Storage

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)
	other := testutil.CreateCourse(t, env.db, "Databases", uni.ID, nil)

	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	doc, err := svc.Upload(ctx, course.ID, fileHeader(t, "notes.pdf", pdf), "")
	require.NoError(t, err)
	kept, err := svc.Upload(ctx, other.ID, fileHeader(t, "syllabus.pdf", pdf), "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, course.ID, &model.CreateContentRequest{Type: model.ContentTypeLink, URL: "https://example.com"})
	require.NoError(t, err)

	stored := filepath.Join(root, filepath.FromSlash(storedObjectKey(doc)))
	keptPath := filepath.Join(root, filepath.FromSlash(storedObjectKey(kept)))
	require.FileExists(t, stored)

	require.NoError(t, env.enrollment.DeleteCourseCascade(ctx, course.ID))

	assert.NoFileExists(t, stored)
	assert.FileExists(t, keptPath)
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "contents"))
}

func TestDeleteCourseCascade_MissingCourseKeepsUploads(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	svc, root := newContentService(t, env)
	env.enrollment.Storage = svc.Storage

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)
	doc, err := svc.Upload(ctx, course.ID, fileHeader(t, "notes.pdf", []byte("%PDF-1.4\n")), "")
	require.NoError(t, err)

	assert.ErrorIs(t, env.enrollment.DeleteCourseCascade(ctx, course.ID+100), util.ErrCourseNotFound)
	assert.FileExists(t, filepath.Join(root, filepath.FromSlash(storedObjectKey(doc))))
}
