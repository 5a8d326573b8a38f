package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/samsmithnz/CardGames-sub000/internal/app"
	"github.com/samsmithnz/CardGames-sub000/internal/domain"
)

// maxSnapshotBytes bounds an imported snapshot document.
const maxSnapshotBytes = 1 << 20

type Handler struct {
	svc         *app.GameService
	defaultGame string
}

func NewHandler(svc *app.GameService, defaultGame string) *Handler {
	return &Handler{svc: svc, defaultGame: defaultGame}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/games", h.ListGames)

	g := e.Group("/v1/sessions")
	g.POST("", h.StartGame)
	g.POST("/import", h.Import)
	g.GET("/:id", h.GetGame)
	g.DELETE("/:id", h.Abandon)
	g.POST("/:id/draw", h.Draw)
	g.POST("/:id/reset", h.ResetStock)
	g.POST("/:id/moves", h.Move)
	g.GET("/:id/export", h.Export)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListGames(c echo.Context) error {
	games, err := h.svc.ListGames(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSummaries(games))
}

func (h *Handler) StartGame(c echo.Context) error {
	var req StartGameRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		}
	}
	if req.Game == "" {
		req.Game = h.defaultGame
	}

	v, err := h.svc.StartGame(c.Request().Context(), req.Game)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toResponse(v))
}

func (h *Handler) GetGame(c echo.Context) error {
	v, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toResponse(v))
}

func (h *Handler) Abandon(c echo.Context) error {
	if err := h.svc.Abandon(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Draw(c echo.Context) error {
	v, err := h.svc.Draw(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toResponse(v))
}

func (h *Handler) ResetStock(c echo.Context) error {
	v, err := h.svc.ResetStock(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toResponse(v))
}

func (h *Handler) Move(c echo.Context) error {
	var req MoveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid move"})
	}

	v, err := h.svc.Move(c.Request().Context(), c.Param("id"), app.Move{From: req.From, To: req.To, Card: req.Card})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toResponse(v))
}

func (h *Handler) Export(c echo.Context) error {
	snap, err := h.svc.Export(c.Request().Context(), c.Param("id"), c.QueryParam("label"))
	if err != nil {
		return mapError(c, err)
	}
	raw, err := snap.ToJSON(c.QueryParam("pretty") == "true")
	if err != nil {
		return mapError(c, err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *Handler) Import(c echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSnapshotBytes))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable body"})
	}
	snap, err := domain.SnapshotFromJSON(raw)
	if err != nil {
		return mapError(c, err)
	}

	v, err := h.svc.Import(c.Request().Context(), snap)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toResponse(v))
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrGameNotFound), errors.Is(err, app.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrIllegalMove):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrUnknownPile),
		errors.Is(err, domain.ErrMalformedSnapshot),
		errors.Is(err, domain.ErrSnapshotMismatch):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
