// Package server exposes rendering and editing of documents over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/sheetmusic/model"
	"github.com/jsphweid/sheetmusic/render"
	"github.com/jsphweid/sheetmusic/sheet"
	"github.com/rs/cors"
)

const (
	RequestIDHeader = "X-Request-Id"
	maxBodyBytes    = 1 << 20
)

type Server struct {
	opts     render.Options
	validate *validator.Validate
	logger   *log.Logger
}

func New(opts render.Options, logger *log.Logger) *Server {
	return &Server{
		opts:     opts,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.requestLog)
	router.HandleFunc("/render", s.HandleRender).Methods(http.MethodPost)
	router.HandleFunc("/edit", s.HandleEdit).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.HandleHealth).Methods(http.MethodGet)
	return router
}

// Handler is the router behind CORS for the given origins.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(s.Router())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Printf("%s %s %s %d", r.Method, r.URL.Path, id, rec.status)
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, res model.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.Printf("could not write error response: %v", err)
	}
}

func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
}

func (s *Server) HandleRender(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not read request body"})
		return
	}

	st, err := sheet.Decode(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := render.Write(w, st, s.opts); err != nil {
		s.logger.Printf("could not write render: %v", err)
	}
}

func (s *Server) HandleEdit(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not read request body"})
		return
	}

	var req model.EditRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, model.ErrorResponse{
			Error:  "validation failed",
			Fields: formatValidationErrors(err),
		})
		return
	}

	res, err := applyEdits(req, s.opts)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.Printf("could not write edit response: %v", err)
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func formatValidationErrors(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	res := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		res[e.Namespace()] = e.Tag()
	}
	return res
}
