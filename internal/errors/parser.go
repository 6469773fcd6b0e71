package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the classified result of a raw error
type ErrorInfo struct {
	Code    string // error code (see codes.go)
	Message string // user-facing message
}

// IsUniqueViolation reports whether err is a unique-constraint violation
// from the backing store. Covers both the postgres and sqlite phrasings.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// IsForeignKeyViolation reports whether err is a foreign-key violation.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint")
}

// ParseError classifies an error into a user-facing code and message.
// Sensitive backend detail stays out of the message; enough context is
// kept for the caller to act on the problem.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An internal server error occurred",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM base errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. Constraint violations

	// 2-1. Unique constraint (postgres 23505 / sqlite)
	if IsUniqueViolation(err) {
		return parseDuplicateKeyError(errStrLower)
	}

	// 2-2. Foreign key constraint (postgres 23503)
	if IsForeignKeyViolation(err) {
		return parseForeignKeyError(errStrLower, context)
	}

	// 2-3. Not null constraint (postgres 23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	// 2-4. Check constraint (postgres 23514)
	if strings.Contains(errStrLower, "check constraint") {
		if strings.Contains(errStrLower, "rating") {
			return ErrorInfo{Code: ReviewInvalidRating, Message: "Rating must be between 1 and 5"}
		}
		return ErrorInfo{Code: ValidationInvalidInput, Message: "Invalid input value"}
	}

	// 3. Network / connection errors to upstream services
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "Failed to reach an external service, please try again later",
		}
	}

	// 4. Default internal server error
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	// store ordering within a category
	if strings.Contains(errLower, "idx_stores_category_order") ||
		(strings.Contains(errLower, "category_id") && strings.Contains(errLower, "order_number")) {
		return ErrorInfo{
			Code:    StoreOrderTaken,
			Message: "A store in this category already uses that position",
		}
	}

	// image ordering within a store
	if strings.Contains(errLower, "idx_images_store_order") {
		return ErrorInfo{
			Code:    StoreImageOrderDup,
			Message: "An image of this store already uses that position",
		}
	}

	// store slug
	if strings.Contains(errLower, "slug") {
		return ErrorInfo{
			Code:    StoreSlugExists,
			Message: "This store identifier is already in use",
		}
	}

	// user email
	if strings.Contains(errLower, "email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "This email address is already registered",
		}
	}

	// category name
	if strings.Contains(errLower, "categories") || strings.Contains(errLower, "idx_categories_name") {
		return ErrorInfo{
			Code:    CategoryExists,
			Message: "A category with this name already exists",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "This record already exists",
	}
}

func parseForeignKeyError(errLower string, context string) ErrorInfo {
	// delete blocked by referencing rows
	if strings.Contains(errLower, "still referenced") {
		if strings.Contains(context, "category") {
			return ErrorInfo{
				Code:    CategoryInUse,
				Message: "This category still has stores attached and cannot be deleted",
			}
		}
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "This record is still referenced and cannot be deleted",
		}
	}

	// missing referenced row
	if strings.Contains(errLower, "category_id") {
		return ErrorInfo{Code: CategoryNotFound, Message: "The referenced category does not exist"}
	}
	if strings.Contains(errLower, "store_id") {
		return ErrorInfo{Code: StoreNotFound, Message: "The referenced store does not exist"}
	}
	if strings.Contains(errLower, "user_id") {
		return ErrorInfo{Code: ResourceNotFound, Message: "The referenced user does not exist"}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "A referenced record could not be found",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "store"):
		return "Store not found"
	case strings.Contains(contextLower, "category"):
		return "Category not found"
	case strings.Contains(contextLower, "review"):
		return "Review not found"
	case strings.Contains(contextLower, "banner"):
		return "Banner not found"
	case strings.Contains(contextLower, "video"):
		return "Video not found"
	case strings.Contains(contextLower, "tracking"):
		return "Tracking script not found"
	case strings.Contains(contextLower, "image"):
		return "Image not found"
	case strings.Contains(contextLower, "user"):
		return "User not found"
	}

	return "The requested record could not be found"
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"):
		return "An error occurred while creating the record, please try again later"
	case strings.Contains(contextLower, "update"):
		return "An error occurred while updating the record, please try again later"
	case strings.Contains(contextLower, "delete"):
		return "An error occurred while deleting the record, please try again later"
	case strings.Contains(contextLower, "upload"):
		return "An error occurred while uploading the file, please try again later"
	}

	return "An internal server error occurred, please try again later"
}
