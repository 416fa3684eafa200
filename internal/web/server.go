// Package web exposes the two-phase solver over HTTP: POST a facelet
// net or CFEN string to /api/solve and get back the quarter-turn
// solution, plus a liveness probe at /api/health.
package web

import (
	"log"
	"net/http"
	"time"

	"github.com/armin-ahmadii/kociemba/internal/kociemba"
	"github.com/gorilla/mux"
)

type Server struct {
	router *mux.Router
	solver *kociemba.Solver
}

func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
		solver: kociemba.NewSolver(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return srv.ListenAndServe()
}
