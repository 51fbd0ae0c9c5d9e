package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avvvet/highscore-services/internal/highscoresvc/service"
	"github.com/go-chi/chi"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()
	st := newMemStore()

	h := NewHandler(
		service.NewGameService(st, nil),
		service.NewScoreService(st, nil),
		service.NewHighscoreService(st),
		st,
	)
	r := chi.NewRouter()
	h.SetRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, st
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(p)
	default:
		raw, err := json.Marshal(p)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func createGame(t *testing.T, ts *httptest.Server, payload map[string]any) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var game map[string]any
	decodeJSON(t, resp, &game)
	return game
}
