package http

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"cgpa-agent/domain"
	"cgpa-agent/service"
)

type ExportHandler struct {
	service *service.SimulationService
}

func NewExportHandler(service *service.SimulationService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export runs a simulation and returns the final outcomes as a CSV download.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Simulate(input)
	if err != nil {
		log.Printf("Error running simulation for export: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="cgpa_simulation_results.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Path", "Variation", "Final CGPA", "Category", "Insights"}); err != nil {
		log.Printf("Error writing CSV header: %v", err)
		return
	}
	for _, o := range result.Outcomes {
		record := []string{
			o.Path,
			fmt.Sprintf("%d", o.Variation),
			fmt.Sprintf("%.2f", o.FinalCGPA),
			o.Category,
			o.Advice,
		}
		if err := writer.Write(record); err != nil {
			log.Printf("Error writing CSV record: %v", err)
			return
		}
	}
}
