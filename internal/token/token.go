package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	// ErrMalformedToken is returned for tokens that do not have three
	// non-empty dot-separated segments or whose payload cannot be decoded.
	ErrMalformedToken = errors.New("malformed token")
	// ErrInvalidSignature is returned when the signature segment does not
	// match the recomputed signature over header and payload.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpiredToken is returned when the payload's exp claim lies in the past.
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the payload carried inside a token. Numeric values decode as
// float64, as usual for JSON.
type Claims map[string]any

// TTL is the fixed token lifetime. Tokens are never renewed; after expiry
// a new login is required.
const TTL = 24 * time.Hour

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Codec signs and verifies compact HMAC-SHA256 tokens of the form
// header.payload.signature, each segment URL-safe base64 without padding.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

// Sign builds a token whose payload merges the given claims with iat and
// exp epoch seconds. The input map is not modified.
func (c *Codec) Sign(claims Claims) (string, error) {
	now := c.now().Unix()
	payload := make(map[string]any, len(claims)+2)
	for k, v := range claims {
		payload[k] = v
	}
	payload["iat"] = now
	payload["exp"] = now + int64(TTL/time.Second)

	hb, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	eh := base64.RawURLEncoding.EncodeToString(hb)
	ep := base64.RawURLEncoding.EncodeToString(pb)
	return eh + "." + ep + "." + c.sign(eh+"."+ep), nil
}

// Verify checks structure, signature and expiry, in that order, and
// returns the decoded claims.
func (c *Codec) Verify(tok string) (Claims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, ErrMalformedToken
	}
	expected := c.sign(parts[0] + "." + parts[1])
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return nil, ErrInvalidSignature
	}
	pb, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrMalformedToken
	}
	var claims Claims
	if err := json.Unmarshal(pb, &claims); err != nil {
		return nil, ErrMalformedToken
	}
	if exp, ok := claims["exp"].(float64); ok && int64(exp) < c.now().Unix() {
		return nil, ErrExpiredToken
	}
	return claims, nil
}

func (c *Codec) sign(signingInput string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(signingInput))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
