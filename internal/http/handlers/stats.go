package handlers

import (
	"net/http"

	"gamedevai/internal/sqlinline"
)

const statsCountryLimit = 10

// UsageStats aggregates the daily analytics counters with per-model and
// per-country asset counts.
func (a *App) UsageStats(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary)
	var aiRequests, imagesGenerated, requestSuccess, requestFail, debugSessions int64
	if err := row.Scan(&aiRequests, &imagesGenerated, &requestSuccess, &requestFail, &debugSessions); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}

	modelsUsed := map[string]int64{}
	if rows, err := a.SQL.Query(r.Context(), sqlinline.QStatsByModel); err == nil {
		defer rows.Close()
		for rows.Next() {
			var model string
			var count int64
			if err := rows.Scan(&model, &count); err != nil {
				continue
			}
			modelsUsed[model] = count
		}
	}

	countries := map[string]int64{}
	if rows, err := a.SQL.Query(r.Context(), sqlinline.QStatsByCountry, statsCountryLimit); err == nil {
		defer rows.Close()
		for rows.Next() {
			var country string
			var count int64
			if err := rows.Scan(&country, &count); err != nil {
				continue
			}
			countries[country] = count
		}
	}

	a.json(w, http.StatusOK, map[string]any{
		"total_generations": aiRequests,
		"images_generated":  imagesGenerated,
		"request_success":   requestSuccess,
		"request_fail":      requestFail,
		"debug_sessions":    debugSessions,
		"models_used":       modelsUsed,
		"countries":         countries,
	})
}
