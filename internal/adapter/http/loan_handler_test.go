package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms-loan-service/internal/domain/employee"
	loanDomain "hrms-loan-service/internal/domain/loan"
	policyDomain "hrms-loan-service/internal/domain/policy"
	"hrms-loan-service/internal/testutil/loanmock"
	"hrms-loan-service/internal/testutil/policymock"
	"hrms-loan-service/internal/usecase/submission"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type staticDirectory struct {
	profiles map[string]employee.Profile
}

func (d *staticDirectory) Get(ctx context.Context, employeeID string) (*employee.Profile, error) {
	p, ok := d.profiles[employeeID]
	if !ok {
		return nil, employee.ErrNotFound
	}
	return &p, nil
}

func seniorPolicy() *policyDomain.LoanPolicy {
	return &policyDomain.LoanPolicy{
		ID:                        1,
		PositionLevel:             "senior",
		MaxLoanAmount:             50_000,
		AllowedTermsMonths:        "6,12,24",
		AnnualInterestRatePercent: 12,
		ApprovalChain:             loanDomain.ChainStandard,
	}
}

func newSubmissionHandler(loans *loanmock.Repo) *LoanHandler {
	policies := &policymock.Repo{
		GetByPositionLevelFn: func(ctx context.Context, level string) (*policyDomain.LoanPolicy, error) {
			if level != "senior" {
				return nil, policyDomain.ErrNotFound
			}
			return seniorPolicy(), nil
		},
	}
	dir := &staticDirectory{profiles: map[string]employee.Profile{
		strings.Repeat("e", 32): {EmployeeID: strings.Repeat("e", 32), PositionLevel: "senior"},
	}}
	return NewLoanHandler(submission.NewUsecase(loans, policies, dir))
}

func TestSubmitLoan_Success(t *testing.T) {
	e := newEchoWithValidator()

	loans := &loanmock.Repo{
		GetActiveByEmployeeIDFn: func(ctx context.Context, employeeID string) (*loanDomain.LoanRequest, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, l *loanDomain.LoanRequest) error { return nil },
	}
	h := newSubmissionHandler(loans)

	body := map[string]any{
		"employee_id":            strings.Repeat("e", 32),
		"amount":                 10_000,
		"term_months":            12,
		"reason_type":            "medical",
		"reason_detail":          "surgery copay",
		"auto_deduction_consent": true,
		"e_signature":            "sig-v1",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitLoan(c); err != nil {
		t.Fatalf("SubmitLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	var dto submission.LoanRequestDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != loanDomain.StatusHRReview {
		t.Fatalf("status = %s, want hr_review", dto.Status)
	}
	if dto.EstimatedMonthlyInstallment != 888.49 {
		t.Fatalf("estimate = %v, want 888.49", dto.EstimatedMonthlyInstallment)
	}
	if !reHex32.MatchString(dto.RequestID) {
		t.Fatalf("request_id not hex32: %q", dto.RequestID)
	}
}

func TestSubmitLoan_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := newSubmissionHandler(&loanmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", strings.NewReader(`{"employee_id":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitLoan(c); err != nil {
		t.Fatalf("SubmitLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestSubmitLoan_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newSubmissionHandler(&loanmock.Repo{}) // won't be called

	// invalid: not hex32, 3 decimal places, zero term, unknown reason, no signature
	body := map[string]any{
		"employee_id":            "NOT_HEX",
		"amount":                 10_000.123,
		"term_months":            0,
		"reason_type":            "vacation",
		"auto_deduction_consent": true,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitLoan(c); err != nil {
		t.Fatalf("SubmitLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Error != "validation failed" {
		t.Fatalf("error = %q", er.Error)
	}
	for field, substr := range map[string]string{
		"EmployeeID": "32-char",
		"Amount":     "2 decimal places",
		"ReasonType": "known reason type",
		"ESignature": "required",
	} {
		if !hasFieldDetail(er.Details, field, substr) {
			t.Fatalf("missing %s detail in %+v", field, er.Details)
		}
	}
}

func TestSubmitLoan_PolicyCeiling(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetActiveByEmployeeIDFn: func(ctx context.Context, employeeID string) (*loanDomain.LoanRequest, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newSubmissionHandler(loans)

	body := map[string]any{
		"employee_id":            strings.Repeat("e", 32),
		"amount":                 60_000, // over the 50k ceiling
		"term_months":            12,
		"reason_type":            "housing",
		"auto_deduction_consent": true,
		"e_signature":            "sig-v1",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitLoan(c); err != nil {
		t.Fatalf("SubmitLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestSubmitLoan_PendingRequestConflict(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetActiveByEmployeeIDFn: func(ctx context.Context, employeeID string) (*loanDomain.LoanRequest, error) {
			return &loanDomain.LoanRequest{RequestID: strings.Repeat("1", 32), Status: loanDomain.StatusManagerReview}, nil
		},
	}
	h := newSubmissionHandler(loans)

	body := map[string]any{
		"employee_id":            strings.Repeat("e", 32),
		"amount":                 1_000,
		"term_months":            6,
		"reason_type":            "personal",
		"auto_deduction_consent": true,
		"e_signature":            "sig-v1",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SubmitLoan(c); err != nil {
		t.Fatalf("SubmitLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestGetLoan_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newSubmissionHandler(&loanmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/loans/"+strings.Repeat("0", 32), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("request_id")
	c.SetParamValues(strings.Repeat("0", 32))

	if err := h.GetLoan(c); err != nil {
		t.Fatalf("GetLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListLoans_QueryParamRules(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		ListByStatusFn: func(ctx context.Context, s loanDomain.Status) ([]loanDomain.LoanRequest, error) {
			return []loanDomain.LoanRequest{{RequestID: strings.Repeat("2", 32), Status: s}}, nil
		},
	}
	h := newSubmissionHandler(loans)

	// no filter
	req := httptest.NewRequest(stdhttp.MethodGet, "/loans", nil)
	rec := httptest.NewRecorder()
	if err := h.ListLoans(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ListLoans error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("no filter: status = %d, want 400", rec.Code)
	}

	// both filters
	req = httptest.NewRequest(stdhttp.MethodGet, "/loans?status=hr_review&employee_id="+strings.Repeat("e", 32), nil)
	rec = httptest.NewRecorder()
	if err := h.ListLoans(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ListLoans error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("both filters: status = %d, want 400", rec.Code)
	}

	// by status
	req = httptest.NewRequest(stdhttp.MethodGet, "/loans?status=hr_review", nil)
	rec = httptest.NewRecorder()
	if err := h.ListLoans(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ListLoans error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("by status: status = %d, want 200", rec.Code)
	}
	var dtos []submission.LoanRequestDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(dtos) != 1 || dtos[0].Status != loanDomain.StatusHRReview {
		t.Fatalf("unexpected list: %+v", dtos)
	}
}
