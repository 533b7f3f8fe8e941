package apperrors

import "net/http"

// Factories and predefined errors for the business rules that recur
// across services. Messages are client-facing.

// --- auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with this email already exists",
	http.StatusConflict,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Access denied. Admin privileges required.",
	http.StatusForbidden,
)

// --- catalog / orders ---

func ErrProjectNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "catalog", "Project not found", http.StatusNotFound)
}

func ErrOrderNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "orders", "Order not found", http.StatusNotFound)
}

// --- payment ---

var ErrSignatureMismatch = New(
	CodeInvalidOperation,
	"payment",
	"Payment verification failed: invalid signature",
	http.StatusBadRequest,
)

var ErrOrderAlreadyPaid = New(
	CodeConflict,
	"payment",
	"This order has already been verified",
	http.StatusConflict,
)

func ErrGatewayFailure(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "payment", "Failed to create payment order", http.StatusBadGateway)
}

// --- coupons ---

var ErrCouponNotFound = New(
	CodeNotFound,
	"coupons",
	"Invalid or expired coupon code",
	http.StatusNotFound,
)

var ErrCouponUsageLimit = New(
	CodeLimitExceeded,
	"coupons",
	"This coupon has reached its usage limit",
	http.StatusBadRequest,
)

var ErrCouponAlreadyUsed = New(
	CodeConflict,
	"coupons",
	"You have already used this coupon",
	http.StatusBadRequest,
)

func ErrCouponMinPurchase(message string) *AppError {
	return New(CodeInvalidOperation, "coupons", message, http.StatusBadRequest)
}

// --- downloads ---

var ErrNotPurchased = New(
	CodeForbidden,
	"downloads",
	"You must purchase this project to download",
	http.StatusForbidden,
)

var ErrDownloadExpired = New(
	CodeExpired,
	"downloads",
	"Download link has expired. Contact support to renew access.",
	http.StatusForbidden,
)

func ErrDownloadLimit(message string) *AppError {
	return New(CodeLimitExceeded, "downloads", message, http.StatusForbidden)
}

// --- reviews ---

var ErrReviewRequiresPurchase = New(
	CodeForbidden,
	"reviews",
	"You must purchase this project before reviewing",
	http.StatusForbidden,
)
