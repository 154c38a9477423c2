package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeVideo       = "video/"
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeText        = "text/plain"
	MimeOctetStream = "application/octet-stream"
)

// MaxContentUploadSize 单个课程资料文件的大小上限
const MaxContentUploadSize = 512 << 20

var (
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
	AllowedContentMimes    = []string{MimePDF, MimeVideo, MimeImage, MimeText, MimeOctetStream}
)
