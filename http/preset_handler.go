package http

import (
	"encoding/json"
	"net/http"

	"cgpa-agent/domain"
	"cgpa-agent/service"
)

type PresetHandler struct {
	service *service.PresetService
}

func NewPresetHandler(service *service.PresetService) *PresetHandler {
	return &PresetHandler{service: service}
}

// Generate builds a ready-to-project scenario from a preset. The shell feeds
// the returned scenario back into /cgpa/project.
func (h *PresetHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.PresetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	scenario, err := h.service.Generate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scenario)
}
