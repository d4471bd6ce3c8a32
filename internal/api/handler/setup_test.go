package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/customer-management/internal/api/middleware"
	"github.com/salesdesk/customer-management/internal/core/domain"
)

// newJSONContext builds an echo context carrying a JSON body, ready to be
// passed straight into a handler method.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asCaller attaches a verified identity the way the auth guard would.
func asCaller(c echo.Context, p domain.Principal) {
	middleware.SetPrincipal(c, p)
}

// withPathID sets the :id route parameter.
func withPathID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

// httpStatus unwraps the status code carried by an *echo.HTTPError.
func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

var (
	adminPrincipal = domain.Principal{UserID: 1, Username: "Duong", Email: "duong@example.com", Role: domain.RoleAdmin}
	salesPrincipal = domain.Principal{UserID: 2, Username: "sales", Email: "sales@example.com", Role: domain.RoleSalePersonal}
)
