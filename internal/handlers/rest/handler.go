// Package rest is a JSON gateway over the command router for browser clients
package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/commands"
)

const maxBodyBytes = 1 << 20

// Config holds dependencies for the REST handler
type Config struct {
	Router commands.Router
	// AllowedOrigins may contain "*"; empty disables CORS headers
	AllowedOrigins []string
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c.Router == nil {
		return errors.InvalidArgument("router is required")
	}
	return nil
}

// Handler serves the REST routes
type Handler struct {
	router commands.Router
	mux    *mux.Router
}

// NewHandler creates the REST handler and registers its routes
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Handler{
		router: cfg.Router,
		mux:    mux.NewRouter(),
	}

	h.mux.Use(corsMiddleware(cfg.AllowedOrigins))
	h.mux.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet, http.MethodOptions)

	api := h.mux.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/state", h.handleGetState).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ops", h.handleListOps).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ops/{op}", h.handleExecute).Methods(http.MethodPost, http.MethodOptions)

	return h, nil
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	out, err := h.router.State(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleListOps(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"ops": h.router.Operations()})
}

func (h *Handler) handleExecute(w http.ResponseWriter, r *http.Request) {
	op := mux.Vars(r)["op"]

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read body"))
		return
	}

	out, err := h.router.Execute(r.Context(), &commands.ExecuteInput{Op: op, Args: body})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"op":     out.Op,
		"result": out.Result,
	})
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "code", code, "error", err)
	}
	writeJSON(w, status, errorBody{Code: code, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

func corsMiddleware(allowedOrigins []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
					break
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
