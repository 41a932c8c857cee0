package service

import (
	"errors"

	"github.com/lshigami/intervue/internal/apperror"
	"gorm.io/gorm"
)

// dbError maps repository errors onto application errors.
func dbError(err error, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.Wrap(apperror.KindNotFound, notFoundMessage, err)
	}
	return apperror.Wrap(apperror.KindStorageFailure, "Database operation failed", err)
}
