package dto

import (
	"encoding/base64"
	"time"

	"github.com/consentvault/consentvault-backend/models"
)

// SignedExport is the envelope for signed bundles: content and detached
// signature travel together, base64 keeps the content byte-exact.
type SignedExport struct {
	Data              string    `json:"data"`
	DataFilename      string    `json:"data_filename"`
	Signature         string    `json:"signature"`
	SignatureFilename string    `json:"signature_filename"`
	Format            string    `json:"format"`
	Timestamp         time.Time `json:"timestamp"`
}

func AdaptSignedExportDto(bundle models.ExportBundle) SignedExport {
	return SignedExport{
		Data:              base64.StdEncoding.EncodeToString(bundle.Content),
		DataFilename:      bundle.Filename,
		Signature:         bundle.Signature,
		SignatureFilename: bundle.SignatureFilename,
		Format:            string(bundle.Format),
		Timestamp:         bundle.GeneratedAt,
	}
}

type VerifyExportSignatureBody struct {
	Data      string `json:"data" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type SignatureVerification struct {
	Valid bool `json:"valid"`
}
