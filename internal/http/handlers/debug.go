package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"gamedevai/internal/domain"
	"gamedevai/internal/sqlinline"
)

type debugRequest struct {
	ErrorMessage string `json:"error_message"`
	CodeContext  string `json:"code_context"`
	EngineType   string `json:"engine_type"`
}

// DebugAssist analyzes a reported error against the known pattern table and
// records the session.
func (a *App) DebugAssist(w http.ResponseWriter, r *http.Request) {
	var req debugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.ErrorMessage) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "error_message cannot be empty")
		return
	}

	result := a.Debug.Analyze(req.ErrorMessage, req.CodeContext, req.EngineType)
	session := domain.DebugSession{
		ID:           result.SessionID,
		Engine:       result.Engine,
		ErrorMessage: req.ErrorMessage,
		Analysis:     result.Analysis,
		Solutions:    result.Solutions,
	}

	solutionsJSON, _ := json.Marshal(session.Solutions)
	if _, err := a.SQL.Exec(r.Context(), sqlinline.QInsertDebugSession,
		session.ID, session.Engine, session.ErrorMessage, session.Analysis, solutionsJSON,
	); err != nil {
		a.Logger.Warn().Err(err).Msg("debug session insert failed")
	}
	a.bumpDailyCounters(r.Context(), 0, 0, 0, 0, 1)

	docs := result.Documentation
	if docs == nil {
		docs = []string{}
	}
	a.json(w, http.StatusOK, map[string]any{
		"session_id":             result.SessionID,
		"engine":                 result.Engine,
		"error_analysis":         result.Analysis,
		"suggested_solutions":    result.Solutions,
		"relevant_documentation": docs,
		"engine_specific_tips":   result.EngineTips,
	})
}
