package filestorage

import (
	"errors"
	"mime/multipart"
)

// ErrUnsupportedFileType is returned when upload content is outside the allow-list
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Document directories relative to the storage root
const (
	DirIDCards             = "documents/id_cards"
	DirResumes             = "documents/resumes"
	DirConsents            = "documents/consents"
	DirPhotos              = "documents/photos"
	DirEmployerDocuments   = "documents/employer"
	DirEmployerEOI         = "documents/employer/eoi"
	DirEmployerCertificate = "documents/employer/certificate"
	DirSchoolEOL           = "documents/eoi_letters"
	DirCompanyEOI          = "documents/company/eoi_letters"
	DirCompanyCertificate  = "documents/company/certificates"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the upload under a subdirectory and returns its relative path
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a previously stored file
	DeleteFile(filePath string) error

	// GetFullPath returns the filesystem path for a stored relative path
	GetFullPath(filePath string) string
}
