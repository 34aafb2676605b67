package models

import "time"

type ExportFormat string

const (
	ExportFormatCsv  ExportFormat = "csv"
	ExportFormatJson ExportFormat = "json"
)

func (f ExportFormat) Validate() error {
	switch f {
	case ExportFormatCsv, ExportFormatJson:
		return nil
	}
	return ErrUnknownExportFormat
}

func (f ExportFormat) ContentType() string {
	if f == ExportFormatJson {
		return "application/json"
	}
	return "text/csv"
}

// ExportBundle is a regulator-facing evidence bundle: a canonical
// serialization of a set of audit entries plus a detached keyed digest over
// it. Bundles are built on demand and never stored server-side; their
// validity is solely a function of (content, signature, org export secret).
type ExportBundle struct {
	Content           []byte
	Signature         string
	Format            ExportFormat
	Filename          string
	SignatureFilename string
	GeneratedAt       time.Time
}
