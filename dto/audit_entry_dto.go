package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/consentvault/consentvault-backend/models"
)

type AuditEntry struct {
	Id                 string      `json:"id"`
	OrganizationId     string      `json:"organization_id"`
	ActorRef           null.String `json:"actor_ref"`
	EventType          string      `json:"event_type"`
	ObjectType         string      `json:"object_type"`
	ObjectId           string      `json:"object_id"`
	RequestFingerprint null.String `json:"request_fingerprint"`
	StatusCode         null.Int    `json:"status_code"`
	PrevHash           string      `json:"prev_hash"`
	EntryHash          string      `json:"entry_hash"`
	CreatedAt          time.Time   `json:"created_at"`
}

func AdaptAuditEntryDto(entry models.AuditEntry) AuditEntry {
	return AuditEntry{
		Id:                 entry.Id,
		OrganizationId:     entry.OrganizationId,
		ActorRef:           null.NewString(entry.ActorRef, entry.ActorRef != ""),
		EventType:          entry.EventType,
		ObjectType:         entry.ObjectType,
		ObjectId:           entry.ObjectId,
		RequestFingerprint: null.NewString(entry.RequestFingerprint, entry.RequestFingerprint != ""),
		StatusCode:         null.NewInt(int64(entry.StatusCode), entry.StatusCode != 0),
		PrevHash:           entry.PrevHash,
		EntryHash:          entry.EntryHash,
		CreatedAt:          entry.CreatedAt,
	}
}

type AuditEntryFilters struct {
	EventType  string     `form:"event_type"`
	ObjectType string     `form:"object_type"`
	Since      *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until      *time.Time `form:"until" time_format:"2006-01-02T15:04:05Z07:00"`
}

type VerifyPayloadBody struct {
	EntryHash string `json:"entry_hash" binding:"required"`
}

type ComputeHashBody struct {
	PrevHash           string    `json:"prev_hash" binding:"required"`
	EventType          string    `json:"event_type" binding:"required"`
	ObjectType         string    `json:"object_type" binding:"required"`
	ObjectId           string    `json:"object_id" binding:"required"`
	ActorRef           string    `json:"actor_ref"`
	RequestFingerprint string    `json:"request_fingerprint"`
	CreatedAt          time.Time `json:"created_at" binding:"required"`
}

type PayloadVerification struct {
	Member bool        `json:"member"`
	Valid  bool        `json:"valid"`
	Entry  *AuditEntry `json:"entry,omitempty"`
}

type VerificationReport struct {
	OrganizationId  string      `json:"organization_id"`
	CheckedCount    int         `json:"checked_count"`
	OkCount         int         `json:"ok_count"`
	Rate            float64     `json:"rate"`
	FirstBreakIndex null.Int    `json:"first_break_index"`
	FirstBreakId    null.String `json:"first_break_id"`
	Truncated       bool        `json:"truncated"`
}

func AdaptVerificationReportDto(report models.VerificationReport) VerificationReport {
	dto := VerificationReport{
		OrganizationId: report.OrganizationId,
		CheckedCount:   report.CheckedCount,
		OkCount:        report.OkCount,
		Rate:           report.Rate(),
		FirstBreakId:   null.NewString(report.FirstBreakId, report.FirstBreakId != ""),
		Truncated:      report.Truncated,
	}
	if report.FirstBreakIndex != nil {
		dto.FirstBreakIndex = null.IntFrom(int64(*report.FirstBreakIndex))
	}
	return dto
}
