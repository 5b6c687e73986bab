package facades

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// HMACSigner produces the signature triple the submission endpoint requires:
// a SHA-256 digest of the canonical request payload, an HMAC-SHA256 over the
// same payload, and the signing timestamp. The payload binds the request to
// the actor and the moment of signing, so a replayed or altered request
// fails verification.
type HMACSigner struct {
	secret []byte
}

func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret)}
}

// canonicalPayload is the exact byte layout both sides sign. Field order is
// fixed by the struct; do not reorder.
type canonicalPayload struct {
	Request   models.TransactionRequest `json:"request"`
	ActorID   string                    `json:"actor_id"`
	Timestamp int64                     `json:"timestamp"`
}

// Sign builds the triple for a frozen request. Deterministic: the same
// request, actor and timestamp always produce the same triple, which is what
// lets a transport retry reuse the original signature.
func (s *HMACSigner) Sign(actorID uuid.UUID, req models.TransactionRequest, at time.Time) (models.SignatureTriple, error) {
	payload, err := json.Marshal(canonicalPayload{
		Request:   req,
		ActorID:   actorID.String(),
		Timestamp: at.Unix(),
	})
	if err != nil {
		return models.SignatureTriple{}, err
	}

	digest := sha256.Sum256(payload)

	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)

	return models.SignatureTriple{
		Hash:      hex.EncodeToString(digest[:]),
		Signature: hex.EncodeToString(mac.Sum(nil)),
		Timestamp: at.Unix(),
	}, nil
}
