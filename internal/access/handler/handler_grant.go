package handler

import (
	"net/http"
	"strings"

	"shopaccess/internal/access/model"

	"github.com/labstack/echo/v4"
)

// PostGrants handles POST /grants
func (h *AccessHandler) PostGrants(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.GrantReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	if err := h.Service.Grant(c.Request().Context(), callerID, req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// DeleteGrants handles DELETE /grants
func (h *AccessHandler) DeleteGrants(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.RevokeReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	if err := h.Service.Revoke(c.Request().Context(), callerID, req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetGrants handles GET /grants?principal_id=... or ?scope_type=...&scope_id=...
func (h *AccessHandler) GetGrants(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	principalID := strings.TrimSpace(c.QueryParam("principal_id"))
	scopeType := strings.ToLower(strings.TrimSpace(c.QueryParam("scope_type")))
	scopeID := strings.TrimSpace(c.QueryParam("scope_id"))

	switch {
	case principalID != "":
		grants, err := h.Service.ListGrantsForPrincipal(c.Request().Context(), callerID, principalID)
		if err != nil {
			code, body := httpError(err)
			return c.JSON(code, body)
		}
		return c.JSON(http.StatusOK, grants)

	case scopeType != "" && scopeID != "":
		if !model.AllowedScopeTypes[scopeType] {
			code, body := badRequest("scope_type must be collection, category or product")
			return c.JSON(code, body)
		}
		scope := model.ScopeRef{Type: scopeType, ID: scopeID}
		grants, err := h.Service.ListGrantsForScope(c.Request().Context(), callerID, scope)
		if err != nil {
			code, body := httpError(err)
			return c.JSON(code, body)
		}
		return c.JSON(http.StatusOK, grants)

	default:
		code, body := badRequest("principal_id or scope_type+scope_id is required")
		return c.JSON(code, body)
	}
}
