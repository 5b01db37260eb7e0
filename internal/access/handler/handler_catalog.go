package handler

import (
	"net/http"

	"shopaccess/internal/access/model"

	"github.com/labstack/echo/v4"
)

// PostCollections handles POST /collections
func (h *AccessHandler) PostCollections(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.CreateCollectionReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	node, err := h.Service.CreateCollection(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, node)
}

// PostCategories handles POST /categories
func (h *AccessHandler) PostCategories(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.CreateCategoryReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	node, err := h.Service.CreateCategory(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, node)
}

// PostProducts handles POST /products
func (h *AccessHandler) PostProducts(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.CreateProductReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	node, err := h.Service.CreateProduct(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, node)
}

// PutCollectionOwner handles PUT /collections/owner
func (h *AccessHandler) PutCollectionOwner(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.TransferOwnerReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	if err := h.Service.TransferOwnership(c.Request().Context(), callerID, req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// PutCollectionVisibility handles PUT /collections/visibility
func (h *AccessHandler) PutCollectionVisibility(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.SetVisibilityReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	if err := h.Service.SetVisibility(c.Request().Context(), callerID, req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// PutCollectionDelete handles PUT /collections/delete
func (h *AccessHandler) PutCollectionDelete(c echo.Context) error {
	callerID, ok := requireSession(c)
	if !ok {
		return nil
	}

	var req model.DeleteCollectionReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *model.FormatValidationError(err)})
	}

	if err := h.Service.DeleteCollection(c.Request().Context(), callerID, req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
