package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/karmachari/portal/internal/pkg/logger"
)

// DefaultAllowedTypes covers the document formats accepted by the portal
var DefaultAllowedTypes = []string{
	"application/pdf",
	"image/png",
	"image/jpeg",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath     string
	allowedTypes []string
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
// An empty allowedTypes falls back to DefaultAllowedTypes.
func NewLocalStorage(basePath string, allowedTypes ...string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}

	return &LocalStorage{
		basePath:     basePath,
		allowedTypes: allowedTypes,
	}, nil
}

// SaveFileWithPath saves a file to a specified subdirectory. A nil header is
// not an error and yields an empty path.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to detect file type: %w", err)
	}
	if !ls.isAllowed(mtype) {
		logger.Warn().Str("filename", fileHeader.Filename).Str("mime", mtype.String()).Msg("Rejected upload with unsupported type")
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mtype.String())
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	fullDirPath := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = mtype.Extension()
	}
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	storedPath := path.Join(subPath, uniqueFilename)
	logger.Debug().Str("filename", fileHeader.Filename).Str("stored_path", storedPath).Msg("File saved")
	return storedPath, nil
}

func (ls *LocalStorage) isAllowed(mtype *mimetype.MIME) bool {
	for _, allowed := range ls.allowedTypes {
		if mtype.Is(allowed) {
			return true
		}
	}
	return false
}

// DeleteFile removes a stored file. Missing files are not an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(filePath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// GetFullPath returns the filesystem path for a stored relative path.
// Paths escaping the storage root resolve to "".
func (ls *LocalStorage) GetFullPath(filePath string) string {
	cleaned := path.Clean("/" + filepath.ToSlash(filePath))
	if cleaned == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(strings.TrimPrefix(cleaned, "/")))
}
