package export

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/models"
)

// Signer serializes audit entries into regulator-facing bundles and signs
// them with the organization's export secret. Signatures are detached: the
// content file verifies against the signature file and nothing else.
type Signer struct{}

// MakeBundle builds the canonical serialization for the format and, when
// sign is set, the detached signature over the exact content bytes.
func (s Signer) MakeBundle(organization models.Organization, entries []models.AuditEntry,
	format models.ExportFormat, sign bool, generatedAt time.Time,
) (models.ExportBundle, error) {
	if err := format.Validate(); err != nil {
		return models.ExportBundle{}, err
	}

	content, err := serialize(entries, format)
	if err != nil {
		return models.ExportBundle{}, err
	}

	stamp := generatedAt.UTC().Format("20060102T150405Z")
	bundle := models.ExportBundle{
		Content:     content,
		Format:      format,
		Filename:    fmt.Sprintf("audit_export_%s_%s.%s", organization.Id, stamp, format),
		GeneratedAt: generatedAt.UTC(),
	}

	if sign {
		bundle.Signature = Sign(organization.ExportSecret, content)
		bundle.SignatureFilename = bundle.Filename + ".sig"
	}
	return bundle, nil
}

// Sign returns hex(hmac_sha256(secret, content)).
func Sign(secret string, content []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(content)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a detached signature in constant time. An invalid
// hex signature is simply a non-matching one.
func VerifySignature(secret string, content []byte, signature string) error {
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return errors.Wrap(models.ErrExportSignatureInvalid, "signature is not hex")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(content)
	if !hmac.Equal(mac.Sum(nil), provided) {
		return errors.WithStack(models.ErrExportSignatureInvalid)
	}
	return nil
}

var csvHeader = []string{
	"id", "organization_id", "actor_ref", "event_type", "object_type",
	"object_id", "request_fingerprint", "status_code", "prev_hash",
	"entry_hash", "created_at",
}

type exportedEntry struct {
	Id                 string `json:"id"`
	OrganizationId     string `json:"organization_id"`
	ActorRef           string `json:"actor_ref,omitempty"`
	EventType          string `json:"event_type"`
	ObjectType         string `json:"object_type"`
	ObjectId           string `json:"object_id"`
	RequestFingerprint string `json:"request_fingerprint,omitempty"`
	StatusCode         int    `json:"status_code,omitempty"`
	PrevHash           string `json:"prev_hash"`
	EntryHash          string `json:"entry_hash"`
	CreatedAt          string `json:"created_at"`
}

func serialize(entries []models.AuditEntry, format models.ExportFormat) ([]byte, error) {
	if format == models.ExportFormatJson {
		exported := make([]exportedEntry, len(entries))
		for i, entry := range entries {
			exported[i] = exportedEntry{
				Id:                 entry.Id,
				OrganizationId:     entry.OrganizationId,
				ActorRef:           entry.ActorRef,
				EventType:          entry.EventType,
				ObjectType:         entry.ObjectType,
				ObjectId:           entry.ObjectId,
				RequestFingerprint: entry.RequestFingerprint,
				StatusCode:         entry.StatusCode,
				PrevHash:           entry.PrevHash,
				EntryHash:          entry.EntryHash,
				CreatedAt:          entry.CreatedAt.UTC().Format(time.RFC3339),
			}
		}
		return json.Marshal(exported)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "error writing csv header")
	}
	for _, entry := range entries {
		statusCode := ""
		if entry.StatusCode != 0 {
			statusCode = strconv.Itoa(entry.StatusCode)
		}
		record := []string{
			entry.Id,
			entry.OrganizationId,
			entry.ActorRef,
			entry.EventType,
			entry.ObjectType,
			entry.ObjectId,
			entry.RequestFingerprint,
			statusCode,
			entry.PrevHash,
			entry.EntryHash,
			entry.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, errors.Wrap(err, "error writing csv record")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "error flushing csv")
	}
	return buf.Bytes(), nil
}
