package errors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Postgres error classes we care about
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// ErrorInfo pairs an error code with a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts a raw store error into a code and message the frontend
// can act on. Driver details stay hidden; the user gets enough to retry or
// correct their input. The context string hints at which entity was involved.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    notFoundCode(context),
			Message: notFoundMessage(context),
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// Prefer the structured driver error; fall back to matching the message
	// text since some drivers only expose the latter.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return parseDuplicateKeyError(errStr, context)
		case pgForeignKeyViolation:
			return parseForeignKeyError(errStr)
		case pgNotNullViolation:
			return parseNotNullError(errStr)
		case pgCheckViolation:
			return parseCheckConstraintError(errStr)
		}
	}

	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr, context)
	}
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStr)
	}
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return parseNotNullError(errStr)
	}
	if strings.Contains(errStrLower, "check constraint") {
		return parseCheckConstraintError(errStr)
	}

	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "Could not reach the data store. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Something went wrong. Please try again later",
	}
}

func parseDuplicateKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// One review per (user, cafe) pair; this is the conflict the review form
	// must distinguish from a generic failure.
	if strings.Contains(errLower, "idx_reviews_user_cafe") ||
		(strings.Contains(errLower, "reviews") && strings.Contains(errLower, "user")) {
		return ErrorInfo{
			Code:    ReviewAlreadyExists,
			Message: "You have already reviewed this workspace",
		}
	}

	if strings.Contains(errLower, "idx_cafes_slug") || (strings.Contains(errLower, "cafes") && strings.Contains(errLower, "slug")) {
		return ErrorInfo{
			Code:    CafeSlugExists,
			Message: "A workspace with this identifier already exists",
		}
	}

	if strings.Contains(errLower, "idx_posts_slug") || (strings.Contains(errLower, "posts") && strings.Contains(errLower, "slug")) {
		return ErrorInfo{
			Code:    PostSlugExists,
			Message: "A post with this slug already exists",
		}
	}

	if strings.Contains(errLower, "username") {
		return ErrorInfo{
			Code:    ProfileUsernameExists,
			Message: "This username is taken",
		}
	}

	if strings.Contains(errLower, "email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "This email is already registered",
		}
	}

	if strings.Contains(errLower, "idx_user_cafe_favorite") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "Already in your favorites",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "This record already exists",
	}
}

func parseForeignKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "still referenced") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "This record has linked data and cannot be deleted",
		}
	}

	if strings.Contains(errLower, "cafe_id") || strings.Contains(errLower, "fk_cafes") {
		return ErrorInfo{
			Code:    CafeNotFound,
			Message: "Workspace does not exist",
		}
	}
	if strings.Contains(errLower, "user_id") || strings.Contains(errLower, "fk_users") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "User does not exist",
		}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "Referenced record was not found",
	}
}

func parseNotNullError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	for _, field := range []string{"name", "email", "title", "comment", "country"} {
		if strings.Contains(errLower, field) {
			return ErrorInfo{
				Code:    ValidationRequired,
				Message: "The " + field + " field is required",
			}
		}
	}

	return ErrorInfo{
		Code:    ValidationRequired,
		Message: "A required field is missing",
	}
}

func parseCheckConstraintError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "rating") {
		return ErrorInfo{
			Code:    ReviewInvalidRating,
			Message: "Rating must be between 1 and 5",
		}
	}
	if strings.Contains(errLower, "latitude") || strings.Contains(errLower, "longitude") {
		return ErrorInfo{
			Code:    ValidationInvalidRange,
			Message: "Latitude/longitude values are out of range",
		}
	}

	return ErrorInfo{
		Code:    ValidationInvalidInput,
		Message: "Invalid input",
	}
}

func notFoundCode(context string) string {
	switch entityFromContext(context) {
	case "cafe":
		return CafeNotFound
	case "review":
		return ReviewNotFound
	case "job":
		return JobNotFound
	case "post":
		return PostNotFound
	case "profile":
		return ProfileNotFound
	default:
		return ResourceNotFound
	}
}

func notFoundMessage(context string) string {
	switch entityFromContext(context) {
	case "cafe":
		return "Workspace not found"
	case "review":
		return "Review not found"
	case "job":
		return "Job listing not found"
	case "post":
		return "Post not found"
	case "profile":
		return "Profile not found"
	default:
		return "Requested record was not found"
	}
}

func entityFromContext(context string) string {
	contextLower := strings.ToLower(context)
	for _, entity := range []string{"cafe", "review", "job", "post", "profile"} {
		if strings.Contains(contextLower, entity) {
			return entity
		}
	}
	if strings.Contains(contextLower, "workspace") {
		return "cafe"
	}
	return ""
}
