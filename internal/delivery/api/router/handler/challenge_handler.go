package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"challengehub/internal/delivery/api/response"
	deliverycontext "challengehub/internal/delivery/context"
	"challengehub/internal/domain/entity"
	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/errors"
	"challengehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChallengeHandlerParams holds dependencies for ChallengeHandler, injected by Fx.
type ChallengeHandlerParams struct {
	fx.In

	ChallengeUC usecase.ChallengeUsecase
	Logger      *slog.Logger
}

// ChallengeHandler serves the challenge routes.
type ChallengeHandler struct {
	challengeUC usecase.ChallengeUsecase
	logger      *slog.Logger
}

// NewChallengeHandler is the constructor for ChallengeHandler
func NewChallengeHandler(params ChallengeHandlerParams) *ChallengeHandler {
	return &ChallengeHandler{
		challengeUC: params.ChallengeUC,
		logger:      params.Logger,
	}
}

// CreateChallengeRequest represents the request body for creating a challenge.
// Content fields take any JSON value and are stored as given.
type CreateChallengeRequest struct {
	UserID      string          `json:"userId"`
	Text        json.RawMessage `json:"text"`
	Description json.RawMessage `json:"description"`
	Dataset     json.RawMessage `json:"dataset"`
	Picture     json.RawMessage `json:"picture"`
	Result      json.RawMessage `json:"result"`
}

// ChallengePathRequest binds the :challengeId path parameter.
type ChallengePathRequest struct {
	ChallengeID string `param:"challengeId" validate:"required"`
}

// MyChallengesRequest binds the userId query parameter.
type MyChallengesRequest struct {
	UserID string `query:"userId"`
}

// ChallengeResponse is the JSON form of a challenge. Content fields that were
// never set are left out.
type ChallengeResponse struct {
	ChallengeID string          `json:"challengeId"`
	UserID      string          `json:"userId"`
	Text        json.RawMessage `json:"text,omitempty"`
	Description json.RawMessage `json:"description,omitempty"`
	Dataset     json.RawMessage `json:"dataset,omitempty"`
	Picture     json.RawMessage `json:"picture,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// ChallengeListResponse wraps a listing.
type ChallengeListResponse struct {
	Challenges []ChallengeResponse `json:"challenges"`
}

// CreateChallengeResponse answers POST /newChallenges.
type CreateChallengeResponse struct {
	Message     string `json:"message"`
	ChallengeID string `json:"challengeId"`
	UserID      string `json:"userId"`
}

// DeleteChallengeResponse answers DELETE /deleteChallenge/:challengeId.
type DeleteChallengeResponse struct {
	Message     string `json:"message"`
	ChallengeID string `json:"challengeId"`
}

// Create handles POST /newChallenges.
func (h *ChallengeHandler) Create(c echo.Context) error {
	var req CreateChallengeRequest
	if err := c.Bind(&req); err != nil {
		h.log(c).Debug("Rejected challenge body", slog.Any("error", err))

		return response.InvalidInput(c)
	}

	output, err := h.challengeUC.Create(c.Request().Context(), &usecase.CreateChallengeInput{
		UserID:      req.UserID,
		Text:        req.Text,
		Description: req.Description,
		Dataset:     req.Dataset,
		Picture:     req.Picture,
		Result:      req.Result,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CreateChallengeResponse{
		Message:     "challenge created successfully",
		ChallengeID: output.ChallengeID,
		UserID:      output.UserID,
	})
}

// Delete handles DELETE /deleteChallenge/:challengeId. No ownership check is
// made. A missing challenge answers 400 on this route.
func (h *ChallengeHandler) Delete(c echo.Context) error {
	var req ChallengePathRequest
	if ok, err := h.bindPath(c, &req); !ok {
		return err
	}

	challengeID, err := h.challengeUC.Delete(c.Request().Context(), req.ChallengeID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrChallengeNotFound) {
			return response.BadRequest(c, domainerrors.ErrChallengeNotFound.ErrorCode(), domainerrors.ErrChallengeNotFound.Message())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeleteChallengeResponse{
		Message:     "challenge deleted successfully",
		ChallengeID: challengeID,
	})
}

// GetByID handles GET /challenges/:challengeId.
func (h *ChallengeHandler) GetByID(c echo.Context) error {
	var req ChallengePathRequest
	if ok, err := h.bindPath(c, &req); !ok {
		return err
	}

	challenge, err := h.challengeUC.GetByID(c.Request().Context(), req.ChallengeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toChallengeResponse(challenge))
}

// ListMine handles GET /my-challenges?userId=.
func (h *ChallengeHandler) ListMine(c echo.Context) error {
	var req MyChallengesRequest
	if err := paramBinder.BindQueryParams(c, &req); err != nil {
		h.log(c).Debug("Rejected query", slog.Any("error", err))

		return response.InvalidInput(c)
	}

	challenges, err := h.challengeUC.ListByOwner(c.Request().Context(), req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toChallengeListResponse(challenges))
}

// ListAll handles GET /all-challenges.
func (h *ChallengeHandler) ListAll(c echo.Context) error {
	challenges, err := h.challengeUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toChallengeListResponse(challenges))
}

// paramBinder reads a single request source. The body never fills path or
// query fields.
var paramBinder = &echo.DefaultBinder{}

// bindPath reports false once it has answered the request itself.
func (h *ChallengeHandler) bindPath(c echo.Context, req *ChallengePathRequest) (bool, error) {
	if err := paramBinder.BindPathParams(c, req); err != nil {
		h.log(c).Debug("Rejected path", slog.Any("error", err))

		return false, response.InvalidInput(c)
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), err.Error())
	}

	return true, nil
}

func (h *ChallengeHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

func toChallengeResponse(c *entity.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ChallengeID: c.ChallengeID,
		UserID:      c.UserID,
		Text:        c.Text,
		Description: c.Description,
		Dataset:     c.Dataset,
		Picture:     c.Picture,
		Result:      c.Result,
	}
}

func toChallengeListResponse(challenges []*entity.Challenge) ChallengeListResponse {
	out := make([]ChallengeResponse, 0, len(challenges))
	for _, c := range challenges {
		out = append(out, toChallengeResponse(c))
	}

	return ChallengeListResponse{Challenges: out}
}
