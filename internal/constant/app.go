package constant

import "time"

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
)

const (
	JWT_TYPE_ACCESS  = "access"
	JWT_TYPE_REFRESH = "refresh"
)

const QUERY_TIMEOUT_DURATION = 5 * time.Second

const (
	DefaultPageSize uint = 20
	MaxPageSize     uint = 100
)

// Diploma file upload constraints.
const MaxDiplomaFileSize = 10 << 20 // 10 MiB

var AllowedDiplomaFileExtensions = []string{".pdf", ".docx", ".doc", ".txt", ".jpg", ".jpeg", ".png"}

// Student photo uploads are images only.
var AllowedPhotoExtensions = []string{".jpg", ".jpeg", ".png"}

const (
	PhotoThumbnailWidth  = 300
	PhotoThumbnailHeight = 400
)
