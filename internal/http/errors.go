package api

import (
	"errors"
	"net/http"

	"bloglist-service/internal/domain/blog"
	"bloglist-service/internal/domain/person"
	"bloglist-service/internal/domain/user"
	"bloglist-service/internal/platform/apperr"
	"bloglist-service/internal/platform/store"
)

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	writeJSON(w, appErr.StatusCode(), map[string]string{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
}

func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, store.ErrMalformedID):
		return apperr.BadRequest("malformatted_id", "malformatted id", err)

	case errors.Is(err, person.ErrMissingFields):
		return apperr.BadRequest("missing_fields", err.Error(), err)
	case errors.Is(err, person.ErrNameTooShort):
		return apperr.BadRequest("validation_error", err.Error(), err)
	case errors.Is(err, person.ErrInvalidNumber):
		return apperr.BadRequest("validation_error", err.Error(), err)
	case errors.Is(err, person.ErrNameTaken):
		return apperr.Conflict("name_taken", "name must be unique", err)
	case errors.Is(err, person.ErrPersonNotFound):
		return apperr.NotFound("person_not_found", "person not found", err)

	case errors.Is(err, user.ErrInvalidCredentials):
		return apperr.Unauthorized("invalid_credentials", "invalid username or password", err)
	case errors.Is(err, user.ErrInvalidUsername), errors.Is(err, user.ErrInvalidPassword):
		return apperr.BadRequest("validation_error", err.Error(), err)
	case errors.Is(err, user.ErrUsernameTaken):
		return apperr.BadRequest("username_taken", err.Error(), err)
	case errors.Is(err, user.ErrUserNotFound):
		return apperr.NotFound("user_not_found", "user not found", err)

	case errors.Is(err, blog.ErrMissingFields), errors.Is(err, blog.ErrInvalidLikes):
		return apperr.BadRequest("validation_error", err.Error(), err)
	case errors.Is(err, blog.ErrBlogNotFound):
		return apperr.NotFound("blog_not_found", "blog not found", err)
	case errors.Is(err, blog.ErrNotOwner):
		return apperr.Unauthorized("unauthorized_user", "unauthorized user", err)
	case errors.Is(err, blog.ErrUnknownUser):
		return apperr.Unauthorized("invalid_user", "user missing or invalid", err)

	case errors.Is(err, store.ErrNotFound):
		return apperr.NotFound("not_found", "resource not found", err)
	case errors.Is(err, store.ErrDuplicate):
		return apperr.Conflict("duplicate", "resource already exists", err)
	default:
		return apperr.Internal("internal_error", http.StatusText(http.StatusInternalServerError), err)
	}
}
