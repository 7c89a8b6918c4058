package http

import (
	"errors"
	"net/http"

	"hrms-loan-service/internal/domain/employee"
	"hrms-loan-service/internal/domain/loan"
	"hrms-loan-service/internal/domain/repayment"
	"hrms-loan-service/internal/domain/waitlist"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// respondDomainError maps usecase errors onto the HTTP surface:
// validation and policy failures 422, workflow and concurrency conflicts
// 409, missing resources 404, anything else 500.
func respondDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, repayment.ErrNotFound),
		errors.Is(err, waitlist.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, employee.ErrNotFound),
		errors.Is(err, loan.ErrConsentRequired),
		errors.Is(err, loan.ErrSignatureRequired),
		errors.Is(err, loan.ErrPolicyNotFound),
		errors.Is(err, loan.ErrAmountExceedsPolicy),
		errors.Is(err, loan.ErrTermNotAllowed),
		errors.Is(err, loan.ErrPendingRequest),
		errors.Is(err, loan.ErrInfeasibleTerms),
		errors.Is(err, loan.ErrValidationFailed):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})

	case errors.Is(err, loan.ErrVersionConflict):
		c.Response().Header().Set("Retry-After", "1")
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, loan.ErrUnauthorizedTransition),
		errors.Is(err, loan.ErrSelfApproval),
		errors.Is(err, repayment.ErrAlreadySettled),
		errors.Is(err, waitlist.ErrNotWaiting),
		errors.Is(err, waitlist.ErrReconfirmationPending):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
