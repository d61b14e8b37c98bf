package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/healthdesk/staff-directory/internal/core/domain"
)

// currentAccount extracts the account injected by the Authenticate middleware.
// The second return is false when the route is not behind authentication.
func currentAccount(c echo.Context) (*domain.Account, bool) {
	account, ok := c.Get("account").(*domain.Account)
	return account, ok && account != nil
}
