package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthdesk/staff-directory/internal/api/metrics"
	"github.com/healthdesk/staff-directory/internal/core/domain"
	"github.com/healthdesk/staff-directory/internal/core/ports"
)

// UserHandler serves the admin-gated directory CRUD routes. Authentication
// and the admin check run in middleware before any of these methods.
type UserHandler struct {
	userService ports.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// Register creates a new directory account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      accountRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.userService.Register(c.Request().Context(), toAccountInput(req))
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(account.Role)).Inc()
	if creator, ok := currentAccount(c); ok {
		h.log.Info().
			Str("username", account.Username).
			Str("role", string(account.Role)).
			Str("created_by", creator.Username).
			Msg("account registered")
	}
	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// List returns every account in the directory.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   accountResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	accounts, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountList(accounts))
}

// GetByEmail looks up an account by email.
//
// @Summary      Find user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Email address"
// @Success      200    {object}  accountResponse
// @Failure      404    {object}  errorResponse
// @Router       /user/email/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	account, err := h.userService.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// GetByUsername looks up an account by username.
//
// @Summary      Find user by username
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  accountResponse
// @Failure      404       {object}  errorResponse
// @Router       /user/username/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	account, err := h.userService.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Update replaces an account's details.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Account ID"
// @Param        body  body      accountRequest  true  "Updated account details"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/update/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.userService.Update(c.Request().Context(), c.Param("id"), toAccountInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Delete removes an account from the directory.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id  path      string  true  "Account ID"
// @Success      200 {object}  messageResponse
// @Failure      404 {object}  errorResponse
// @Router       /user/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.AccountsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

func toAccountInput(req accountRequest) ports.AccountInput {
	return ports.AccountInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Department:      req.Department,
		Role:            domain.Role(req.Role),
	}
}
