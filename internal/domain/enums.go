package domain

// UploadState is the lifecycle of a single upload invocation.
type UploadState string

const (
	StateIdle    UploadState = "idle"
	StateLoading UploadState = "loading"
	StateSuccess UploadState = "success"
	StateFailed  UploadState = "failed"
)

// DefaultContentType is reported when a file's MIME type cannot be determined.
const DefaultContentType = "application/octet-stream"

// KnownExtensions maps lower-case file extensions (without dot) to MIME types.
// It is consulted before content sniffing.
var KnownExtensions = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"heic": "image/heic",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
}
