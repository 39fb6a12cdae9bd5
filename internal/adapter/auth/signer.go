package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Signer issues and checks session tokens of the form
// {sessionID}.{expiresUnix}.{hex hmac-sha256}.
type Signer struct {
	secret []byte
}

func NewSigner(secret []byte) *Signer {
	return &Signer{secret: secret}
}

func (s *Signer) Sign(sessionID string, expiresUnix int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(fmt.Sprintf("%s:%d", sessionID, expiresUnix)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Token(sessionID string, expiresUnix int64) string {
	return sessionID + "." + strconv.FormatInt(expiresUnix, 10) + "." + s.Sign(sessionID, expiresUnix)
}

// Parse returns the session id and expiry of a token carrying a valid signature.
func (s *Signer) Parse(token string) (string, int64, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" {
		return "", 0, false
	}
	exp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, false
	}
	expected := s.Sign(parts[0], exp)
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return "", 0, false
	}
	return parts[0], exp, true
}
