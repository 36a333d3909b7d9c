package services

import (
	"fmt"
	"time"

	"orionhotel/errors"
	"orionhotel/repository"
)

// wrapRepoError chuyển lỗi repository sang AppError để controller map được HTTP status
func wrapRepoError(err error, notFound error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.IsAppError(err):
		return err
	case errors.Is(err, repository.ErrNotFound):
		if notFound == nil {
			notFound = err
		}
		return errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy %s", entity), notFound)
	case errors.Is(err, repository.ErrDuplicate):
		return errors.NewAppError(errors.ErrCodeDBDuplicate, fmt.Sprintf("%s đã tồn tại", entity), err)
	case errors.Is(err, repository.ErrConflict):
		return errors.NewAppError(errors.ErrCodeConflict, fmt.Sprintf("%s đã bị thay đổi", entity), err)
	default:
		return errors.NewAppError(errors.ErrCodeDBError, fmt.Sprintf("Lỗi truy vấn %s", entity), err)
	}
}

func validationError(message string) error {
	return errors.NewAppError(errors.ErrCodeValidation, message, errors.ErrInvalidInput)
}

// Clock cho phép test cố định thời gian hiện tại
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
