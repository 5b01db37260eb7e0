package handler

import (
	"net/http"

	"shopaccess/internal/access/service"

	"github.com/labstack/echo/v4"
)

// Session identity and wallet proof travel as headers; the out-of-scope
// identity provider sets them after authenticating the request.
const (
	HeaderUserID        = "x-user-id"
	HeaderWalletAddress = "x-wallet-address"
	HeaderWalletProof   = "x-wallet-proof"
	HeaderWalletSession = "x-wallet-session"
)

type AccessHandler struct {
	Service service.AccessService
}

func NewAccessHandler(s service.AccessService) *AccessHandler {
	return &AccessHandler{Service: s}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// sessionID extracts the authenticated session identity, if any.
func sessionID(c echo.Context) string {
	return c.Request().Header.Get(HeaderUserID)
}

// requireSession rejects anonymous mutating calls up front.
func requireSession(c echo.Context) (string, bool) {
	id := sessionID(c)
	if id == "" {
		code, body := httpError(service.ErrUnauthorized)
		_ = c.JSON(code, body)
		return "", false
	}
	return id, true
}
