package loan

import (
	"strings"
	"time"
)

// Step is one review stage of an approval chain: the status the request sits
// in while waiting, and the only role allowed to act on it.
type Step struct {
	Status Status
	Role   Role
}

var chainSteps = map[Chain][]Step{
	ChainStandard: {
		{StatusHRReview, RoleHR},
		{StatusManagerReview, RoleManager},
		{StatusVPReview, RoleVP},
	},
	ChainExecutive: {
		{StatusHRReview, RoleHR},
		{StatusCEOReview, RoleCEO},
	},
}

// Steps returns the ordered review stages of a chain.
func Steps(c Chain) []Step {
	return chainSteps[c]
}

// FirstReviewStatus is where a freshly submitted request lands. Draft and
// submitted collapse: submission validates and goes straight to review.
func FirstReviewStatus(c Chain) Status {
	steps := chainSteps[c]
	if len(steps) == 0 {
		return StatusHRReview
	}
	return steps[0].Status
}

// HRChecklist is the structured data HR records with its decision.
type HRChecklist struct {
	PolicyVerified    bool `json:"policy_verified"`
	PayrollVerified   bool `json:"payroll_verified"`
	DocumentsComplete bool `json:"documents_complete"`
}

// DecisionPayload carries the step-specific data attached to a decision.
// Notes are mandatory on manager, VP and CEO decisions.
type DecisionPayload struct {
	Notes       string       `json:"notes"`
	HRChecklist *HRChecklist `json:"hr_checklist,omitempty"`

	// VP/CEO approval extras, informational until disbursement.
	PlannedDisbursementDate *time.Time `json:"planned_disbursement_date,omitempty"`
	AutoPayroll             bool       `json:"auto_payroll,omitempty"`
}

// Outcome of a successful transition.
type Outcome struct {
	Next Status
	// Step is the status the decision was made at, recorded on the
	// ApprovalRecord.
	Step Status
}

// Transition validates a decision against the request's current status and
// chain. It is pure: the caller applies Outcome.Next and appends the
// ApprovalRecord inside one transaction. Guards, in order: terminal check,
// current status must be a review stage of the stored chain, self-approval,
// role gate, decision legality, payload validation.
func Transition(req *LoanRequest, actorID string, actorRole Role, decision Decision, payload DecisionPayload) (Outcome, error) {
	if req.Terminal() {
		return Outcome{}, ErrInvalidTransition
	}

	steps := chainSteps[req.ApprovalChain]
	idx := -1
	for i, s := range steps {
		if s.Status == req.Status {
			idx = i
			break
		}
	}
	if idx < 0 {
		// approved/disbursed/repaying/deferred are not decided through here
		return Outcome{}, ErrInvalidTransition
	}
	step := steps[idx]

	// The self-approval guard is independent of role: an HR employee still
	// cannot decide on their own request.
	if actorID != "" && actorID == req.EmployeeID {
		return Outcome{}, ErrSelfApproval
	}
	if actorRole != step.Role {
		return Outcome{}, ErrUnauthorizedTransition
	}

	switch decision {
	case DecisionRejected:
		if err := validatePayload(step.Status, payload); err != nil {
			return Outcome{}, err
		}
		return Outcome{Next: StatusRejected, Step: step.Status}, nil

	case DecisionDeferred:
		if !deferrable(step.Status) {
			return Outcome{}, ErrInvalidTransition
		}
		if err := validatePayload(step.Status, payload); err != nil {
			return Outcome{}, err
		}
		return Outcome{Next: StatusDeferred, Step: step.Status}, nil

	case DecisionApproved:
		if err := validatePayload(step.Status, payload); err != nil {
			return Outcome{}, err
		}
		if idx == len(steps)-1 {
			return Outcome{Next: StatusApproved, Step: step.Status}, nil
		}
		return Outcome{Next: steps[idx+1].Status, Step: step.Status}, nil
	}
	return Outcome{}, ErrInvalidTransition
}

// deferrable: HR and manager/VP stages may push a request onto the waiting
// list; the CEO stage decides outright.
func deferrable(s Status) bool {
	return s == StatusHRReview || s == StatusManagerReview || s == StatusVPReview
}

func validatePayload(step Status, p DecisionPayload) error {
	switch step {
	case StatusManagerReview, StatusVPReview, StatusCEOReview:
		if strings.TrimSpace(p.Notes) == "" {
			return ErrValidationFailed
		}
	}
	return nil
}
