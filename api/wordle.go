// Package handler serves the no-spoiler helper over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/bent101/go-wordle-nospoiler/hint"
)

// maxBody bounds request bodies; a game is a handful of short words.
const maxBody = 64 << 10

type SolveRequest struct {
	Attempts    []hint.Attempt `json:"attempts"`
	Placeholder string         `json:"placeholder,omitempty"`
}

type SolveResponse struct {
	Patterns []string     `json:"patterns"`
	Summary  hint.Summary `json:"summary"`
}

type GradeResponse struct {
	Guess  string `json:"guess"`
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Handler answers POST with the patterns for the attempts in the body, and
// GET ?guess=&secret= with the graded result.
func Handler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		solve(w, r)
	case http.MethodGet:
		grade(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed", Kind: "request"})
	}
}

func solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request body: " + err.Error(), Kind: "request"})
		return
	}

	opts := []hint.Option{hint.WithLogger(slog.Default())}
	if req.Placeholder != "" {
		if len(req.Placeholder) != 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "placeholder must be a single character", Kind: "request"})
			return
		}
		opts = append(opts, hint.WithPlaceholder(req.Placeholder[0]))
	}

	patterns, summary, err := hint.ProcessAll(req.Attempts, opts...)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := SolveResponse{Patterns: slices.Collect(patterns), Summary: summary}
	if resp.Patterns == nil {
		resp.Patterns = []string{}
	}
	slog.Info("solved", "attempts", len(req.Attempts), "patterns", len(resp.Patterns))
	writeJSON(w, http.StatusOK, resp)
}

func grade(w http.ResponseWriter, r *http.Request) {
	guess := r.URL.Query().Get("guess")
	result, err := hint.Grade(guess, r.URL.Query().Get("secret"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, GradeResponse{Guess: guess, Result: result})
}

func writeError(w http.ResponseWriter, err error) {
	var verr *hint.ValidationError
	var cerr *hint.ContradictionError
	switch {
	case errors.As(err, &cerr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "contradiction"})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "validation"})
	default:
		slog.Error("unexpected error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: "internal"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("writing response", "error", err)
	}
}
