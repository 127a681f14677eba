package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

type avatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}

type profileResponse struct {
	User         userResponse         `json:"user"`
	Achievements []domain.Achievement `json:"achievements"`
	Progress     int                  `json:"progress"`
	Tier         string               `json:"tier"`
}

// ProfileHandler serves the loyalty/profile view.
type ProfileHandler struct {
	identity ports.IdentityService
}

func NewProfileHandler(identity ports.IdentityService) *ProfileHandler {
	return &ProfileHandler{identity: identity}
}

// Get handles GET /v1/profile: the user with derived achievements and
// loyalty progress. The evaluation is pure; reading it twice with no
// intervening mutation returns identical results.
//
// @Summary      Profile with achievements and loyalty progress
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.identity.Current(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		User:         toUserResponse(*user),
		Achievements: domain.Achievements(*user),
		Progress:     domain.LoyaltyProgress(*user),
		Tier:         domain.TierLabel(*user),
	})
}

// SetAvatar handles PUT /v1/profile/avatar.
//
// @Summary      Pick an avatar
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      avatarRequest  true  "Avatar selection"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/profile/avatar [put]
func (h *ProfileHandler) SetAvatar(c echo.Context) error {
	var req avatarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !domain.ValidAvatar(req.Avatar) {
		return echo.NewHTTPError(http.StatusBadRequest, "avatar is not selectable")
	}

	user, err := h.identity.SetAvatar(c.Request().Context(), req.Avatar)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}
