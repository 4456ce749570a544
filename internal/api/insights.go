package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/healthloop/pulse/internal/insight"
	"github.com/healthloop/pulse/internal/record"
)

const (
	defaultHistoryDays = 7
	maxHistoryDays     = 90
)

func (s *Server) insightForDate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	rec, err := s.service.GetOrGenerate(r.Context(), userID, chi.URLParam(r, "date"))
	if err != nil {
		if errors.Is(err, record.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("insight generation failed", "user_id", userID.String(), "error", err)
		writeError(w, http.StatusInternalServerError, "insight generation failed")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) insightHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	days := defaultHistoryDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}

	recs, err := s.service.ListHistory(r.Context(), userID, days)
	if err != nil {
		slog.Error("insight history failed", "user_id", userID.String(), "error", err)
		writeError(w, http.StatusInternalServerError, "insight history failed")
		return
	}
	if recs == nil {
		recs = []insight.Insight{}
	}

	writeJSON(w, http.StatusOK, recs)
}
