package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// contentMetadata 上传文件的附加信息，视频额外带上 ffprobe 的结果
type contentMetadata struct {
	ObjectKey    string          `json:"object_key,omitempty"`
	OriginalName string          `json:"original_name,omitempty"`
	MimeType     string          `json:"mime_type,omitempty"`
	Size         int64           `json:"size,omitempty"`
	Video        *util.VideoInfo `json:"video,omitempty"`
}

type ContentService struct {
	ContentRepo *repository.ContentRepository
	CourseRepo  *repository.CourseRepository
	Storage     *StorageService
	TempDir     string
	// ProbeVideo 默认 util.GetVideoInfo，测试中可替换
	ProbeVideo func(path string) (*util.VideoInfo, error)
}

func NewContentService(contentRepo *repository.ContentRepository, courseRepo *repository.CourseRepository, storage *StorageService, tempDir string) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		CourseRepo:  courseRepo,
		Storage:     storage,
		TempDir:     tempDir,
		ProbeVideo:  util.GetVideoInfo,
	}
}

func (s *ContentService) ensureCourse(ctx context.Context, courseID uint) error {
	if _, err := s.CourseRepo.FindByID(ctx, courseID); err != nil {
		return notFound(err, util.ErrCourseNotFound)
	}
	return nil
}

func (s *ContentService) ListByCourse(ctx context.Context, courseID uint) ([]model.Content, error) {
	if err := s.ensureCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return s.ContentRepo.ListByCourse(ctx, courseID)
}

func (s *ContentService) Get(ctx context.Context, id uint) (*model.Content, error) {
	content, err := s.ContentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrContentNotFound)
	}
	return content, nil
}

// Create 登记一个外部链接形式的资料
func (s *ContentService) Create(ctx context.Context, courseID uint, req *model.CreateContentRequest) (*model.Content, error) {
	if err := s.ensureCourse(ctx, courseID); err != nil {
		return nil, err
	}
	if req.URL == "" {
		return nil, util.ErrInvalidContentInput
	}

	content := &model.Content{
		CourseID: courseID,
		Type:     req.Type,
		Title:    req.Title,
		URL:      req.URL,
	}
	if err := s.ContentRepo.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// Upload 上传文件到对象存储并登记为课程资料。视频会先落盘做元数据探测，探测失败不影响上传。
func (s *ContentService) Upload(ctx context.Context, courseID uint, file *multipart.FileHeader, title string) (*model.Content, error) {
	if err := s.ensureCourse(ctx, courseID); err != nil {
		return nil, err
	}
	if file.Size > util.MaxContentUploadSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", util.ErrInvalidFileType, util.MaxContentUploadSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, util.AllowedContentMimes)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	contentType := util.ContentTypeFor(mimeType, file.Filename)
	key := ObjectKey(courseID, file.Filename)
	meta := contentMetadata{
		ObjectKey:    key,
		OriginalName: file.Filename,
		MimeType:     mimeType,
		Size:         file.Size,
	}

	var url string
	if contentType == model.ContentTypeVideo {
		url, meta.Video, err = s.uploadVideo(ctx, key, src, mimeType)
	} else {
		url, err = s.Storage.Upload(ctx, key, src, file.Size, mimeType)
	}
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = file.Filename
	}
	content := &model.Content{
		CourseID: courseID,
		Type:     contentType,
		Title:    title,
		URL:      url,
		Metadata: datatypes.JSON(raw),
	}
	if err := s.ContentRepo.Create(ctx, content); err != nil {
		if delErr := s.Storage.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("Failed to remove orphaned upload", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}

	logger.Log.Info("Content uploaded",
		zap.Uint("courseID", courseID),
		zap.Uint("contentID", content.ID),
		zap.String("type", contentType),
	)
	return content, nil
}

func (s *ContentService) uploadVideo(ctx context.Context, key string, src io.Reader, mimeType string) (string, *util.VideoInfo, error) {
	if err := os.MkdirAll(s.TempDir, 0755); err != nil {
		return "", nil, err
	}
	tmp, err := os.CreateTemp(s.TempDir, "upload-*"+filepath.Ext(key))
	if err != nil {
		return "", nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		return "", nil, err
	}

	info, err := s.ProbeVideo(tmp.Name())
	if err != nil {
		logger.Log.Warn("Video probe failed", zap.String("key", key), zap.Error(err))
		info = nil
	}

	url, err := s.Storage.UploadFile(ctx, key, tmp.Name(), mimeType)
	if err != nil {
		return "", nil, err
	}
	return url, info, nil
}

// Delete 删除资料记录，上传的文件一并从存储中移除
func (s *ContentService) Delete(ctx context.Context, id uint) error {
	content, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ContentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if key := storedObjectKey(content); key != "" {
		s.Storage.removeObjects(ctx, []string{key})
	}
	return nil
}

// storedObjectKey 上传类资料对应的存储对象，链接类返回空串
func storedObjectKey(content *model.Content) string {
	var meta contentMetadata
	if len(content.Metadata) == 0 || json.Unmarshal(content.Metadata, &meta) != nil {
		return ""
	}
	return meta.ObjectKey
}
