package rest

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
)

// Credentials holds an API key pair. PrivateKey is the base64 string
// issued by the exchange; it is decoded when a request is signed, not
// at construction. The zero value means unauthenticated.
type Credentials struct {
	PublicKey  string
	PrivateKey string
}

func (c Credentials) Empty() bool {
	return c.PublicKey == "" && c.PrivateKey == ""
}

// signRequest produces the Authent header value for an authenticated
// request: the concatenation postData+nonce+endpointPath is SHA-256
// hashed, the hash is HMAC-SHA512'd with the base64-decoded private
// key, and the digest is base64-encoded. endpointPath includes the
// /api/v3/ prefix. The scheme is dictated by the exchange.
func signRequest(privateKey, nonce, endpointPath, postData string) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(privateKey)
	if err != nil {
		return "", fmt.Errorf("decode private key: %w", err)
	}

	hash := sha256.Sum256([]byte(postData + nonce + endpointPath))

	mac := hmac.New(sha512.New, secret)
	mac.Write(hash[:])

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
