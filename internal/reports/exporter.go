package reports

import (
	"context"
	"fmt"
	"log"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/storage"
)

// Exporter renders a monthly sales report to PDF and pushes it to object
// storage. Both the HTTP export endpoint and the scheduled month-end job go
// through here.
type Exporter struct {
	service     *Service
	storage     storage.Service
	companyName string
}

func NewExporter(service *Service, storageSvc storage.Service, companyName string) *Exporter {
	return &Exporter{
		service:     service,
		storage:     storageSvc,
		companyName: companyName,
	}
}

// ExportResult describes one uploaded report.
type ExportResult struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
	SizeBytes   int    `json:"size_bytes"`
}

// ObjectName is the deterministic storage key for a report month, so
// re-exports overwrite rather than accumulate.
func ObjectName(month, year int) string {
	return fmt.Sprintf("sales-reports/%04d-%02d.pdf", year, month)
}

func (e *Exporter) ExportMonthly(ctx context.Context, month, year int) (*ExportResult, error) {
	report, err := e.service.MonthlySalesReport(ctx, month, year)
	if err != nil {
		return nil, err
	}

	pdf, err := RenderPDF(report, e.companyName)
	if err != nil {
		return nil, err
	}

	objectName := ObjectName(month, year)
	if err := e.storage.UploadReport(ctx, objectName, pdf); err != nil {
		return nil, err
	}

	url, err := e.storage.ReportURL(ctx, objectName)
	if err != nil {
		return nil, err
	}

	log.Printf("exported sales report %s (%d bytes)", objectName, len(pdf))
	return &ExportResult{
		ObjectName:  objectName,
		DownloadURL: url,
		SizeBytes:   len(pdf),
	}, nil
}
