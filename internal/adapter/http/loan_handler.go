package http

import (
	"net/http"

	loanDomain "hrms-loan-service/internal/domain/loan"
	"hrms-loan-service/internal/usecase/submission"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *submission.Usecase }

func NewLoanHandler(uc *submission.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type submitLoanReq struct {
	EmployeeID           string  `json:"employee_id"            validate:"required,hex32"`
	Amount               float64 `json:"amount"                 validate:"required,gt=0,dec2"`
	TermMonths           int     `json:"term_months"            validate:"required,gte=1,lte=120"`
	ReasonType           string  `json:"reason_type"            validate:"required,reason"`
	ReasonDetail         string  `json:"reason_detail"`
	AutoDeductionConsent bool    `json:"auto_deduction_consent"`
	ESignature           string  `json:"e_signature"            validate:"required"`
}

func (h *LoanHandler) SubmitLoan(c echo.Context) error {
	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), submission.SubmitInput{
		EmployeeID:           req.EmployeeID,
		Amount:               req.Amount,
		TermMonths:           req.TermMonths,
		ReasonType:           loanDomain.ReasonType(req.ReasonType),
		ReasonDetail:         req.ReasonDetail,
		AutoDeductionConsent: req.AutoDeductionConsent,
		ESignature:           req.ESignature,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), requestID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListLoans filters by ?status= or ?employee_id=; exactly one is required.
func (h *LoanHandler) ListLoans(c echo.Context) error {
	status := c.QueryParam("status")
	employeeID := c.QueryParam("employee_id")
	switch {
	case status != "" && employeeID != "":
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "use either status or employee_id, not both"})
	case status != "":
		dtos, err := h.uc.ListByStatus(c.Request().Context(), loanDomain.Status(status))
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dtos)
	case employeeID != "":
		if !reHex32.MatchString(employeeID) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee_id"})
		}
		dtos, err := h.uc.ListByEmployee(c.Request().Context(), employeeID)
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dtos)
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status or employee_id query param required"})
}
