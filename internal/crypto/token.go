package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashToken хеширует refresh token через SHA256.
// В базе хранится только хеш: сам токен виден один раз при выдаче,
// поиск при обновлении идет по детерминированному хешу.
func HashToken(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("token cannot be empty")
	}

	hash := sha256.Sum256([]byte(token))

	return hex.EncodeToString(hash[:]), nil
}
