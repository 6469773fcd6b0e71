package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The frontend maps these codes to localized messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthOAuthFailed        = "AUTH_OAUTH_FAILED"
	AuthOAuthNoEmail       = "AUTH_OAUTH_NO_EMAIL"
	AuthPasswordMismatch   = "AUTH_PASSWORD_MISMATCH"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY"
	AuthzOwnerOnly = "AUTHZ_OWNER_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Stores (STORE_) ====================
	StoreNotFound       = "STORE_NOT_FOUND"
	StoreSlugExists     = "STORE_SLUG_EXISTS"
	StoreOrderTaken     = "STORE_ORDER_TAKEN"
	StoreInvalidMonths  = "STORE_INVALID_MONTHS"
	StoreMissingExpiry  = "STORE_MISSING_EXPIRY"
	StoreImageNotFound  = "STORE_IMAGE_NOT_FOUND"
	StoreImageOrderDup  = "STORE_IMAGE_ORDER_DUPLICATE"
	StoreCategoryNeeded = "STORE_CATEGORY_REQUIRED"

	// ==================== Categories (CATEGORY_) ====================
	CategoryNotFound = "CATEGORY_NOT_FOUND"
	CategoryInUse    = "CATEGORY_IN_USE"
	CategoryExists   = "CATEGORY_EXISTS"

	// ==================== Reviews (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidRating = "REVIEW_INVALID_RATING"

	// ==================== Content (BANNER_/VIDEO_/TRACKING_) ====================
	BannerNotFound       = "BANNER_NOT_FOUND"
	VideoNotFound        = "VIDEO_NOT_FOUND"
	VideoInvalidURL      = "VIDEO_INVALID_URL"
	VideoLinkRequired    = "VIDEO_LINK_REQUIRED"
	TrackingNotFound     = "TRACKING_NOT_FOUND"
	TrackingBodyRequired = "TRACKING_BODY_REQUIRED"

	// ==================== Uploads (UPLOAD_) ====================
	UploadFailed          = "UPLOAD_FAILED"
	UploadFileRequired    = "UPLOAD_FILE_REQUIRED"
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
