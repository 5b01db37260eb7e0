package handler

import (
	"net/http"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/service"
	"shopaccess/internal/access/wallet"

	"github.com/labstack/echo/v4"
)

// PostPermissionsCheck handles POST /permissions/check. The decision is
// always a 200 with an allowed flag; a deny is not an HTTP error.
func (h *AccessHandler) PostPermissionsCheck(c echo.Context) error {
	var req model.CheckAccessReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	allowed := h.Service.CheckAccess(c.Request().Context(), sessionID(c), req)
	return c.JSON(http.StatusOK, model.CheckAccessResp{Allowed: allowed})
}

// GetOrders handles GET /orders. The caller may present a session identity,
// a wallet address with proof token, or both; the result is the union.
func (h *AccessHandler) GetOrders(c echo.Context) error {
	caller := service.AccessContext{
		SessionID:     sessionID(c),
		WalletAddress: c.Request().Header.Get(HeaderWalletAddress),
		ProofToken:    c.Request().Header.Get(HeaderWalletProof),
		Claims: wallet.SessionClaims{
			WalletAddress: c.Request().Header.Get(HeaderWalletSession),
		},
	}

	orders, err := h.Service.ListOrdersFor(c.Request().Context(), caller)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	if orders == nil {
		orders = []*model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// PostOrders handles POST /orders. Creating an order needs no permission;
// any caller may place one.
func (h *AccessHandler) PostOrders(c echo.Context) error {
	var req model.CreateOrderReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	order, err := h.Service.CreateOrder(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, order)
}

// PostWalletProof handles POST /wallet/proof. The upstream sign-in flow has
// already verified the wallet signature before calling this.
func (h *AccessHandler) PostWalletProof(c echo.Context) error {
	var req model.IssueProofReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	token, err := h.Service.IssueProof(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"proof_token": token})
}
