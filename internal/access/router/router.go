package router

import (
	"shopaccess/internal/access/handler"
	"shopaccess/internal/access/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.AccessHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			handler.HeaderUserID, handler.HeaderWalletAddress,
			handler.HeaderWalletProof, handler.HeaderWalletSession,
		},
	}))

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(util.MetricsHandler()))

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Decision endpoint - anyone can ask, the answer is allow/deny
	v1.POST("/permissions/check", h.PostPermissionsCheck)

	// Principal directory
	v1.GET("/principals/me", h.GetPrincipalMe)
	v1.PUT("/principals/role", h.PutPrincipalRole)
	v1.PUT("/principals/delete", h.PutPrincipalDelete)

	// Catalog management
	v1.POST("/collections", h.PostCollections)
	v1.POST("/categories", h.PostCategories)
	v1.POST("/products", h.PostProducts)
	v1.PUT("/collections/owner", h.PutCollectionOwner)
	v1.PUT("/collections/visibility", h.PutCollectionVisibility)
	v1.PUT("/collections/delete", h.PutCollectionDelete)

	// Grants
	v1.POST("/grants", h.PostGrants)
	v1.DELETE("/grants", h.DeleteGrants)
	v1.GET("/grants", h.GetGrants)

	// Orders and wallet proof
	v1.GET("/orders", h.GetOrders)
	v1.POST("/orders", h.PostOrders)
	v1.POST("/wallet/proof", h.PostWalletProof)
}
