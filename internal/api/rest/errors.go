package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-editions/internal/api/shared/errors"
	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
)

// clientErrors maps purchase errors caused by the request to their response
var clientErrors = []struct {
	err    error
	status int
	code   apierrors.ErrorCode
}{
	{domain.ErrPostNotFound, http.StatusNotFound, apierrors.ErrCodeNotFound},
	{domain.ErrPurchaseNotFound, http.StatusNotFound, apierrors.ErrCodeNotFound},
	{domain.ErrAuthRequired, http.StatusUnauthorized, apierrors.ErrCodeUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden, apierrors.ErrCodeForbidden},
	{domain.ErrWalletNotVerified, http.StatusForbidden, apierrors.ErrCodeForbidden},
	{domain.ErrNotEdition, http.StatusBadRequest, apierrors.ErrCodeBadRequest},
	{domain.ErrInvalidSignature, http.StatusBadRequest, apierrors.ErrCodeBadRequest},
	{domain.ErrNotCancelable, http.StatusConflict, apierrors.ErrCodeConflict},
	{domain.ErrPurchaseClosed, http.StatusConflict, apierrors.ErrCodeConflict},
	{domain.ErrPaymentNotConfirmed, http.StatusConflict, apierrors.ErrCodeConflict},
	{domain.ErrSoldOut, http.StatusConflict, apierrors.ErrCodeConflict},
	{domain.ErrMissingWallet, http.StatusUnprocessableEntity, apierrors.ErrCodeValidationFailed},
}

// respondError renders err in the failure envelope. Unexpected errors are logged and hidden.
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			c.JSON(ce.status, (&apierrors.APIError{Code: ce.code, Message: err.Error()}).Response())
			return
		}
	}

	if domain.IsRetryable(err) {
		logger.WarnCtx(c.Request.Context(), "Upstream service error", append(fields, zap.Error(err))...)
		c.JSON(http.StatusServiceUnavailable, apierrors.NewServiceError("Service temporarily unavailable, try again").Response())
		return
	}

	respondInternalError(c, err, "Internal server error", fields...)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...).Response())
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(details).Response())
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message).Response())
}
