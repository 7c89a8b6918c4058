package http

import (
	"net/http"
	"strings"
	"time"

	loanDomain "hrms-loan-service/internal/domain/loan"
	repaymentDomain "hrms-loan-service/internal/domain/repayment"
	"hrms-loan-service/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type WorkflowHandler struct{ uc *workflow.Usecase }

func NewWorkflowHandler(uc *workflow.Usecase) *WorkflowHandler {
	return &WorkflowHandler{uc: uc}
}

type decideReq struct {
	Decision string `json:"decision" validate:"required,decision"`
	Notes    string `json:"notes"`

	HRChecklist *loanDomain.HRChecklist `json:"hr_checklist,omitempty"`
	// Accept canonical date `YYYY-MM-DD` (aligns with schema DATE)
	PlannedDisbursementDate string `json:"planned_disbursement_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AutoPayroll             bool   `json:"auto_payroll,omitempty"`
}

var validRoles = map[loanDomain.Role]bool{
	loanDomain.RoleHR:      true,
	loanDomain.RoleManager: true,
	loanDomain.RoleVP:      true,
	loanDomain.RoleCEO:     true,
	loanDomain.RoleAdmin:   true,
}

// Decide applies one reviewer decision. The acting identity travels in the
// Ax-Actor-Id / Ax-Actor-Role headers, same convention the idempotency
// middleware keys on.
func (h *WorkflowHandler) Decide(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	actorID := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
	if !reHex32.MatchString(actorID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Id"})
	}
	actorRole := loanDomain.Role(strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Role")))
	if !validRoles[actorRole] {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Role"})
	}

	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	payload := loanDomain.DecisionPayload{
		Notes:       req.Notes,
		HRChecklist: req.HRChecklist,
		AutoPayroll: req.AutoPayroll,
	}
	if req.PlannedDisbursementDate != "" {
		d, _ := time.Parse("2006-01-02", req.PlannedDisbursementDate)
		payload.PlannedDisbursementDate = &d
	}

	dto, err := h.uc.Decide(c.Request().Context(), workflow.DecideInput{
		RequestID: requestID,
		ActorID:   actorID,
		ActorRole: actorRole,
		Decision:  loanDomain.Decision(req.Decision),
		Payload:   payload,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type disburseReq struct {
	DisbursementDate string `json:"disbursement_date" validate:"required,datetime=2006-01-02"`
}

func (h *WorkflowHandler) Disburse(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req disburseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, _ := time.Parse("2006-01-02", req.DisbursementDate)

	dto, err := h.uc.Disburse(c.Request().Context(), workflow.DisburseInput{
		RequestID:        requestID,
		DisbursementDate: date.UTC(),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type outcomeReq struct {
	Outcome string `json:"outcome" validate:"required,oneof=deducted missed"`
}

func (h *WorkflowHandler) RecordOutcome(c echo.Context) error {
	entryID := c.Param("entry_id")
	if entryID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing entry_id path param"})
	}
	var req outcomeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.RecordRepaymentOutcome(c.Request().Context(), entryID, repaymentDomain.EntryStatus(req.Outcome))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
