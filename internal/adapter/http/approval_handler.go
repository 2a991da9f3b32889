package http

import (
	"net/http"

	domainLoan "koperasi-loan-service/internal/domain/loan"
	"koperasi-loan-service/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type applyActionReq struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason"`
	// ExpectedStatus lets the client pin the transition to the status it
	// last saw; a stale value yields 409 instead of advancing further.
	ExpectedStatus string `json:"expected_status" validate:"omitempty,loanstatus"`
}

func (h *ApprovalHandler) ApplyAction(c echo.Context) error {
	a, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}

	var req applyActionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	action, err := domainLoan.ParseAction(req.Action)
	if err != nil {
		return writeDomainError(c, err)
	}
	in := approval.ApplyInput{
		LoanID:  loanID,
		Action:  action,
		ActorID: a.EmployeeID,
		Reason:  req.Reason,
	}
	if req.ExpectedStatus != "" {
		s, err := domainLoan.ParseStatus(req.ExpectedStatus)
		if err != nil {
			return writeDomainError(c, err)
		}
		in.ExpectedStatus = &s
	}

	res, err := h.uc.Apply(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
