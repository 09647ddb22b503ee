package errors

import (
	"fmt"
	"net/http"

	"raseed/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are Arabic, matching the
// storefront's audience.
var (
	// Catalog-related errors
	ErrCategoryNameRequired = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_NAME_REQUIRED",
		"الاسم بالعربية مطلوب",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"الفئة غير موجودة",
		"",
	)

	ErrProductNameRequired = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NAME_REQUIRED",
		"اسم المنتج بالعربية مطلوب",
		"",
	)

	ErrProductCategoryRequired = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_CATEGORY_REQUIRED",
		"الفئة مطلوبة",
		"",
	)

	ErrProductPriceInvalid = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_PRICE_INVALID",
		"السعر يجب أن يكون أكبر من صفر",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"المنتج غير موجود",
		"",
	)

	// Order-related errors
	ErrOrderIDRequired = NewBaseError(
		http.StatusBadRequest,
		"ORDER_ID_REQUIRED",
		"معرف الطلب مطلوب",
		"",
	)

	ErrOrderStatusInvalid = NewBaseError(
		http.StatusBadRequest,
		"ORDER_STATUS_INVALID",
		"حالة غير صالحة",
		"",
	)

	ErrOrderNothingToUpdate = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOTHING_TO_UPDATE",
		"لا توجد بيانات للتحديث",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"الطلب غير موجود",
		"",
	)

	// Recharge-related errors
	ErrRechargeAmountInvalid = NewBaseError(
		http.StatusBadRequest,
		"RECHARGE_AMOUNT_INVALID",
		"المبلغ يجب أن يكون أكبر من صفر",
		"",
	)

	ErrRechargeCountInvalid = NewBaseError(
		http.StatusBadRequest,
		"RECHARGE_COUNT_INVALID",
		"العدد يجب أن يكون بين 1 و 500",
		"",
	)

	// Directory-related errors
	ErrUserIDRequired = NewBaseError(
		http.StatusBadRequest,
		"USER_ID_REQUIRED",
		"معرف المستخدم مطلوب",
		"",
	)

	ErrBlockValueInvalid = NewBaseError(
		http.StatusBadRequest,
		"BLOCK_VALUE_INVALID",
		"قيمة الحظر غير صالحة",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"المستخدم غير موجود",
		"",
	)

	// Upload-related errors
	ErrUploadFileMissing = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_FILE_MISSING",
		"لا يوجد ملف",
		"",
	)

	ErrUploadTypeUnsupported = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_TYPE_UNSUPPORTED",
		"نوع الملف غير مدعوم. استخدم PNG, JPG, WebP, أو GIF",
		"",
	)

	ErrUploadTooLarge = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_TOO_LARGE",
		"حجم الملف كبير جداً. الحد الأقصى 5 ميجابايت",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"البيانات المدخلة غير صالحة",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"خطأ غير متوقع",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"العنصر غير موجود",
		"",
	)
)

// NewCategoryInUseError builds the referential-conflict error returned when
// a category still has products referencing it. The message carries the
// exact referencing count, as the admin UI displays it verbatim.
func NewCategoryInUseError(count int64) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_IN_USE",
		fmt.Sprintf("لا يمكن حذف الفئة. يوجد %d منتج مرتبط بها", count),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "فشل تنفيذ العملية على قاعدة البيانات"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
