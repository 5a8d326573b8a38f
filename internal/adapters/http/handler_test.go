package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samsmithnz/CardGames-sub000/internal/adapters/catalog"
	httpadapter "github.com/samsmithnz/CardGames-sub000/internal/adapters/http"
	"github.com/samsmithnz/CardGames-sub000/internal/adapters/sessions"
	"github.com/samsmithnz/CardGames-sub000/internal/app"
)

type fixedRNG struct{}

func (fixedRNG) Intn(int) int { return 0 }

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := app.NewGameService(catalog.NewEmbeddedStore(), sessions.NewMemoryRepo(), fixedRNG{}, logger)

	e := echo.New()
	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))
	httpadapter.NewHandler(svc, catalog.DefaultGame).Register(e)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.GameResponse {
	t.Helper()
	var resp httpadapter.GameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthz(t *testing.T) {
	rec := do(newServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestListGames(t *testing.T) {
	rec := do(newServer(t), http.MethodGet, "/v1/games", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var games []httpadapter.GameSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &games))
	require.Len(t, games, 3)
	assert.Equal(t, "Klondike Solitaire", games[0].Name)
	assert.Equal(t, 4, games[2].FreeCells)
}

func TestStartGame_Default(t *testing.T) {
	rec := do(newServer(t), http.MethodPost, "/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode(t, rec)
	assert.Equal(t, "Klondike Solitaire", resp.GameName)
	assert.Len(t, resp.State.TableauColumns, 7)
	assert.Len(t, resp.State.StockPile, 24)
}

func TestStartGame_UnknownGame(t *testing.T) {
	rec := do(newServer(t), http.MethodPost, "/v1/sessions", `{"game":"Spider"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionFlow(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/v1/sessions", `{"game":"Klondike Solitaire"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec).ID

	rec = do(e, http.MethodPost, "/v1/sessions/"+id+"/draw", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec).State.WastePile, 1)

	rec = do(e, http.MethodPost, "/v1/sessions/"+id+"/reset", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodPost, "/v1/sessions/"+id+"/moves", `{"from":{"kind":"stock"},"to":{"kind":"tableau","index":0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/v1/sessions/"+id+"/moves", `{"from":{"kind":"tableau","index":0},"to":{"kind":"tableau","index":0}}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodGet, "/v1/sessions/"+id+"/export?label=save1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"save1"`)
	exported := rec.Body.String()

	rec = do(e, http.MethodPost, "/v1/sessions/import", exported)
	require.Equal(t, http.StatusCreated, rec.Code)
	imported := decode(t, rec)
	assert.NotEqual(t, id, imported.ID)

	rec = do(e, http.MethodGet, "/v1/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, decode(t, rec).State, imported.State)
}

func TestImport_Malformed(t *testing.T) {
	rec := do(newServer(t), http.MethodPost, "/v1/sessions/import", `{"gameName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGame_NotFound(t *testing.T) {
	rec := do(newServer(t), http.MethodGet, "/v1/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAbandon(t *testing.T) {
	e := newServer(t)
	rec := do(e, http.MethodPost, "/v1/sessions", `{"game":"FreeCell"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec).ID

	rec = do(e, http.MethodDelete, "/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(e, http.MethodDelete, "/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImport_BlankCard(t *testing.T) {
	body := `{"gameName":"FreeCell","tableauColumns":[[{}],[],[],[],[],[],[],[]],"foundationPiles":[[],[],[],[]],"freeCells":[null,null,null,null]}`
	rec := do(newServer(t), http.MethodPost, "/v1/sessions/import", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
