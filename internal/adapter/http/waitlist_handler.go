package http

import (
	"net/http"
	"strings"

	"hrms-loan-service/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type WaitlistHandler struct{ uc *workflow.Usecase }

func NewWaitlistHandler(uc *workflow.Usecase) *WaitlistHandler {
	return &WaitlistHandler{uc: uc}
}

func (h *WaitlistHandler) ListWaiting(c echo.Context) error {
	items, err := h.uc.ListWaiting(c.Request().Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *WaitlistHandler) Promote(c echo.Context) error {
	entryID := c.Param("entry_id")
	if entryID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing entry_id path param"})
	}
	dto, err := h.uc.PromoteFromWaitingList(c.Request().Context(), entryID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Reconfirm is employee-initiated; the caller identifies via Ax-Actor-Id
// and must own the queued request.
func (h *WaitlistHandler) Reconfirm(c echo.Context) error {
	entryID := c.Param("entry_id")
	if entryID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing entry_id path param"})
	}
	actorID := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
	if !reHex32.MatchString(actorID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Actor-Id"})
	}
	if err := h.uc.Reconfirm(c.Request().Context(), entryID, actorID); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"entry_id": entryID, "status": "reconfirmed"})
}
