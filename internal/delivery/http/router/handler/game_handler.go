package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameHandler holds dependencies for the engagement feature handlers.
type GameHandler struct {
	gameUC   usecase.GameUsecase
	rewardUC usecase.RewardUsecase
	logger   *slog.Logger
}

// NewGameHandler is the constructor for GameHandler, injected by Fx.
func NewGameHandler(gameUC usecase.GameUsecase, rewardUC usecase.RewardUsecase, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameUC:   gameUC,
		rewardUC: rewardUC,
		logger:   logger,
	}
}

// PlayDaily handles the once-per-day play request.
func (h *GameHandler) PlayDaily(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.gameUC.PlayDaily(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Daily play rewarded")
}

// GrantReward credits an unthrottled in-game reward to the caller.
func (h *GameHandler) GrantReward(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.rewardUC.GrantGameReward(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Game reward granted")
}

// GetLeaderboard returns the top users by UtilCoin balance.
func (h *GameHandler) GetLeaderboard(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	board, err := h.gameUC.GetLeaderboard(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, board, "Leaderboard retrieved successfully")
}

// GetReferralStats returns the caller's referral code, link and referees.
func (h *GameHandler) GetReferralStats(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.gameUC.GetReferralStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Referral stats retrieved successfully")
}

// GetAchievements returns the caller's engagement milestones.
func (h *GameHandler) GetAchievements(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	achievements, err := h.gameUC.GetAchievements(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, achievements, "Achievements retrieved successfully")
}

// GetReferralQRCode renders the caller's referral link as a PNG image.
func (h *GameHandler) GetReferralQRCode(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.gameUC.GetReferralQRCode(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
