package services

import (
	"errors"
	"mime/multipart"

	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// uploadSet stores the files of one request. After the first failure every
// further save is skipped; discard removes whatever was already written.
type uploadSet struct {
	storage filestorage.FileStorage
	logger  zerolog.Logger
	saved   []string
	err     error
}

func newUploadSet(storage filestorage.FileStorage, logger zerolog.Logger) *uploadSet {
	return &uploadSet{storage: storage, logger: logger}
}

// save stores header under dir and writes the relative path into dest.
// A nil header leaves dest untouched.
func (u *uploadSet) save(dest *string, field string, header *multipart.FileHeader, dir string) {
	if u.err != nil || header == nil {
		return
	}

	path, err := u.storage.SaveFileWithPath(header, dir)
	if err != nil {
		u.err = uploadError(field, err)
		return
	}

	u.saved = append(u.saved, path)
	*dest = path
}

// saveChange stores header and records its path as a column change
func (u *uploadSet) saveChange(changes map[string]interface{}, column, field string, header *multipart.FileHeader, dir string) {
	var path string
	u.save(&path, field, header, dir)
	if path != "" {
		changes[column] = path
	}
}

func (u *uploadSet) stored() bool {
	return len(u.saved) > 0
}

// discard deletes every file saved so far
func (u *uploadSet) discard() {
	for _, path := range u.saved {
		if err := u.storage.DeleteFile(path); err != nil {
			u.logger.Warn().Err(err).Str("path", path).Msg("Failed to remove orphaned upload")
		}
	}
	u.saved = nil
}

// release deletes a previously stored file that current has replaced
func (u *uploadSet) release(previous, current string) {
	if previous == "" || previous == current {
		return
	}
	if err := u.storage.DeleteFile(previous); err != nil {
		u.logger.Warn().Err(err).Str("path", previous).Msg("Failed to remove replaced upload")
	}
}

func uploadError(field string, err error) error {
	if errors.Is(err, filestorage.ErrUnsupportedFileType) {
		return apperrors.NewFieldError(field, "Unsupported file type")
	}
	return err
}
