package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/TheCodingDen/projects-bot/configs"
	"go.uber.org/zap"
)

// Server exposes the submission intake over HTTP.
type Server struct {
	server *http.Server
	logger *zap.SugaredLogger
}

func NewServer(config configs.API, intake *Intake, logger *zap.SugaredLogger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/projects-bot/healthcheck", healthCheckHandler)
	mux.HandleFunc("/projects-bot/submissions", submissionsHandler(intake, logger))

	return &Server{
		server: &http.Server{Addr: fmt.Sprintf(":%d", config.Port), Handler: mux},
		logger: logger,
	}
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		s.logger.Errorw("failed to start http server", "error", err)
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Errorw("failed to shutdown http server", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}

func submissionsHandler(intake *Intake, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var request SubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []string{"invalid JSON payload"}})
			return
		}

		if problems := request.Validate(); len(problems) > 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": problems})
			return
		}

		id, err := intake.Handle(request)
		if err != nil {
			logger.Errorw("failed to register submission", "name", request.Name, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"errors": []string{"failed to register submission"}})
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"id": id})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
