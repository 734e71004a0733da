package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/reports"
)

// Task type definitions
const (
	TypeMonthlyReportExport = "report:monthly_export"
)

// MonthlyReportPayload defines the payload for monthly report export tasks
type MonthlyReportPayload struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewMonthlyReportTask creates a task that renders and uploads one month's
// sales report.
func NewMonthlyReportTask(month, year int) (*asynq.Task, error) {
	payload := MonthlyReportPayload{Month: month, Year: year}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMonthlyReportExport, data), nil
}

// ReportTaskHandler processes queued report exports.
type ReportTaskHandler struct {
	exporter *reports.Exporter
}

func NewReportTaskHandler(exporter *reports.Exporter) *ReportTaskHandler {
	return &ReportTaskHandler{exporter: exporter}
}

// HandleMonthlyExport runs one export task. Returning an error lets asynq
// retry with backoff.
func (h *ReportTaskHandler) HandleMonthlyExport(ctx context.Context, t *asynq.Task) error {
	var payload MonthlyReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal report payload: %w", err)
	}

	log.Printf("Starting monthly report export for %04d-%02d", payload.Year, payload.Month)

	result, err := h.exporter.ExportMonthly(ctx, payload.Month, payload.Year)
	if err != nil {
		log.Printf("Monthly report export failed for %04d-%02d: %v", payload.Year, payload.Month, err)
		return err
	}

	log.Printf("Monthly report export completed: %s (%d bytes)", result.ObjectName, result.SizeBytes)
	return nil
}
