package usecases

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

func generateSecret(byteLen int) (string, error) {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "error generating secret")
	}
	return hex.EncodeToString(buf), nil
}
