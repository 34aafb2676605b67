package dbmodels

import (
	"github.com/consentvault/consentvault-backend/models"
)

// DbChainHead is the versioned head pointer backing compare-and-swap appends.
type DbChainHead struct {
	OrganizationId string `db:"organization_id"`
	EntryHash      string `db:"entry_hash"`
	Seq            int64  `db:"seq"`
}

const TABLE_AUDIT_CHAIN_HEADS = "audit_chain_heads"

var SelectChainHeadColumns = []string{
	"organization_id",
	"entry_hash",
	"seq",
}

func AdaptChainHead(db DbChainHead) (models.ChainHead, error) {
	return models.ChainHead{
		OrganizationId: db.OrganizationId,
		EntryHash:      db.EntryHash,
		Seq:            db.Seq,
	}, nil
}
