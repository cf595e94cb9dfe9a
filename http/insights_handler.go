package http

import (
	"encoding/json"
	"net/http"

	"cgpa-agent/domain"
	"cgpa-agent/service"
)

type InsightsHandler struct {
	service *service.InsightService
}

func NewInsightsHandler(service *service.InsightService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

func (h *InsightsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.InsightsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Insights(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
