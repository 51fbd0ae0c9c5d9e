package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avvvet/highscore-services/internal/highscoresvc/service"
	log "github.com/sirupsen/logrus"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	games      *service.GameService
	scores     *service.ScoreService
	highscores *service.HighscoreService
	db         Pinger
}

func NewHandler(games *service.GameService, scores *service.ScoreService,
	highscores *service.HighscoreService, db Pinger) *Handler {
	return &Handler{
		games:      games,
		scores:     scores,
		highscores: highscores,
		db:         db,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)
	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

// writeJSON writes a bare resource body; only failures use the Response envelope.
func (h *Handler) writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

// internalError logs err and answers 500 without leaking its detail.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.WithField("path", r.URL.Path).Errorf("Error [%s] %s", op, err)
	h.CreateResponse(w, Response{
		Message: http.StatusText(http.StatusInternalServerError),
		Code:    http.StatusInternalServerError,
		Error:   "internal error",
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, err error) {
	h.CreateResponse(w, Response{
		Message: http.StatusText(http.StatusBadRequest),
		Code:    http.StatusBadRequest,
		Error:   err.Error(),
	})
}

func (h *Handler) decodeBody(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, Response{
		Message: http.StatusText(http.StatusNotFound),
		Code:    http.StatusNotFound,
		Error:   "no route for " + r.Method + " " + r.URL.Path,
	})
}

func (h *Handler) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, Response{
		Message: http.StatusText(http.StatusMethodNotAllowed),
		Code:    http.StatusMethodNotAllowed,
		Error:   r.Method + " is not allowed on " + r.URL.Path,
	})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			log.Errorf("health check: database unreachable: %s", err)
			h.CreateResponse(w, Response{
				Message: "highscore service database is unreachable",
				Code:    http.StatusServiceUnavailable,
				Error:   "database unavailable",
			})
			return
		}
	}

	h.CreateResponse(w, Response{
		Message: "highscore service is running",
		Code:    http.StatusOK,
		Data:    nil,
	})
}
