package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
)

// setupServer registers the routes under test directly; pulling in the
// router package here would cycle back into this one.
func setupServer(svc *MockAccessService) *echo.Echo {
	e := echo.New()
	h := NewAccessHandler(svc)

	v1 := e.Group("/api/v1")
	v1.POST("/permissions/check", h.PostPermissionsCheck)
	v1.GET("/principals/me", h.GetPrincipalMe)
	v1.PUT("/principals/role", h.PutPrincipalRole)
	v1.POST("/collections", h.PostCollections)
	v1.PUT("/collections/owner", h.PutCollectionOwner)
	v1.POST("/grants", h.PostGrants)
	v1.DELETE("/grants", h.DeleteGrants)
	v1.GET("/grants", h.GetGrants)
	v1.GET("/orders", h.GetOrders)
	v1.POST("/orders", h.PostOrders)
	v1.POST("/wallet/proof", h.PostWalletProof)
	return e
}

func performRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
