package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Amund211/skillforge/internal/logging"
	"github.com/Amund211/skillforge/internal/reporting"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

type listResponseObject[T any] struct {
	Success    bool     `json:"success"`
	Data       []T      `json:"data"`
	Total      int      `json:"total"`
	Categories []string `json:"categories,omitempty"`
	Timestamp  string   `json:"timestamp"`
}

type errorResponseObject struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, response any) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "Failed to marshal response", "error", err)
		reporting.Report(ctx, fmt.Errorf("failed to marshal response: %w", err))

		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(data); err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "Failed to write response", "error", err)
		reporting.Report(ctx, fmt.Errorf("failed to write response: %w", err))
	}
}

func writeList[T any](ctx context.Context, w http.ResponseWriter, items []T, total int, categories []string) {
	if items == nil {
		items = []T{}
	}
	writeJSON(ctx, w, http.StatusOK, listResponseObject[T]{
		Success:    true,
		Data:       items,
		Total:      total,
		Categories: categories,
		Timestamp:  formatTimestamp(time.Now()),
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, statusCode int, message string) {
	writeJSON(ctx, w, statusCode, errorResponseObject{
		Success:   false,
		Error:     message,
		Timestamp: formatTimestamp(time.Now()),
	})
}
