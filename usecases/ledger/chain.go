package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/models"
)

// hashPayload is the canonical form hashed into an entry. Field order does
// not matter for the digest: the payload is serialized with keys sorted
// alphabetically, so renaming a json tag is a wire format change.
type hashPayload struct {
	ActorRef           *string `json:"actor_ref"`
	CreatedAt          string  `json:"created_at"`
	EventType          string  `json:"event_type"`
	ObjectId           string  `json:"object_id"`
	ObjectType         string  `json:"object_type"`
	OrganizationId     string  `json:"organization_id"`
	RequestFingerprint *string `json:"request_fingerprint"`
}

// GenesisHash derives the chain anchor for an organization. Anchors differ
// per organization so that a chain segment copied between tenants never
// verifies.
func GenesisHash(organizationId string) string {
	sum := sha256.Sum256([]byte("genesis:" + organizationId))
	return hex.EncodeToString(sum[:])
}

// ComputeEntryHash returns sha256(prev_hash || canonical_json(fields)) in
// hex. Canonical json has alphabetically sorted keys, no insignificant
// whitespace, and RFC3339 UTC timestamps. Empty optional fields serialize as
// null, not as empty strings.
func ComputeEntryHash(prevHash string, entry models.AuditEntry) (string, error) {
	payload := hashPayload{
		ActorRef:           nullableString(entry.ActorRef),
		CreatedAt:          entry.CreatedAt.UTC().Format(time.RFC3339),
		EventType:          entry.EventType,
		ObjectId:           entry.ObjectId,
		ObjectType:         entry.ObjectType,
		OrganizationId:     entry.OrganizationId,
		RequestFingerprint: nullableString(entry.RequestFingerprint),
	}

	// encoding/json writes struct fields in declaration order, which is kept
	// alphabetical above to match key-sorted canonical json.
	serialized, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "error serializing audit entry for hashing")
	}

	h := sha256.New()
	h.Write([]byte(prevHash))
	h.Write(serialized)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
