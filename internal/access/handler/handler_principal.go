package handler

import (
	"net/http"

	"shopaccess/internal/access/model"

	"github.com/labstack/echo/v4"
)

// GetPrincipalMe handles GET /principals/me
func (h *AccessHandler) GetPrincipalMe(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	p, err := h.Service.ResolvePrincipal(c.Request().Context(), callerID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, p)
}

// PutPrincipalRole handles PUT /principals/role
func (h *AccessHandler) PutPrincipalRole(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.SetRoleReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	p, err := h.Service.SetRole(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, p)
}

// PutPrincipalDelete handles PUT /principals/delete
func (h *AccessHandler) PutPrincipalDelete(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.DeletePrincipalReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	if err := h.Service.DeletePrincipal(c.Request().Context(), callerID, req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
