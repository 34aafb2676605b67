package dbmodels

import (
	"time"

	"github.com/consentvault/consentvault-backend/models"
	"github.com/consentvault/consentvault-backend/pure_utils"
)

type DbAuditEntry struct {
	Id                 string    `db:"id"`
	OrganizationId     string    `db:"organization_id"`
	ActorRef           *string   `db:"actor_ref"`
	EventType          string    `db:"event_type"`
	ObjectType         string    `db:"object_type"`
	ObjectId           string    `db:"object_id"`
	RequestFingerprint *string   `db:"request_fingerprint"`
	StatusCode         *int      `db:"status_code"`
	PrevHash           string    `db:"prev_hash"`
	EntryHash          string    `db:"entry_hash"`
	CreatedAt          time.Time `db:"created_at"`
}

const TABLE_AUDIT_ENTRIES = "audit_entries"

var SelectAuditEntryColumns = []string{
	"id",
	"organization_id",
	"actor_ref",
	"event_type",
	"object_type",
	"object_id",
	"request_fingerprint",
	"status_code",
	"prev_hash",
	"entry_hash",
	"created_at",
}

func AdaptAuditEntry(db DbAuditEntry) (models.AuditEntry, error) {
	return models.AuditEntry{
		Id:                 db.Id,
		OrganizationId:     db.OrganizationId,
		ActorRef:           pure_utils.PtrValueOrDefault(db.ActorRef, ""),
		EventType:          db.EventType,
		ObjectType:         db.ObjectType,
		ObjectId:           db.ObjectId,
		RequestFingerprint: pure_utils.PtrValueOrDefault(db.RequestFingerprint, ""),
		StatusCode:         pure_utils.PtrValueOrDefault(db.StatusCode, 0),
		PrevHash:           db.PrevHash,
		EntryHash:          db.EntryHash,
		CreatedAt:          db.CreatedAt,
	}, nil
}
