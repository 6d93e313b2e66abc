package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/finance-server/internal/logging"
)

const msgEndpointNotFound = "Endpoint not found"

// Health is the body of GET /api/health.
type Health struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() Handler {
	return Handler{now: time.Now}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	return writeJSON(w, http.StatusOK, Health{
		Success:   true,
		Status:    "OK",
		Message:   "Finance API is running",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// NotFound answers every request that matched no route.
func (h *Handler) NotFound(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	logData.AddData("status", http.StatusNotFound)
	return writeJSON(w, http.StatusNotFound, map[string]any{
		"success": false,
		"error":   msgEndpointNotFound,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
