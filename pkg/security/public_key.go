package security

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha512"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
)

func ParsePublicKey(pkey []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pkey)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, errors.New("no pem block found")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPub, nil
}

// ParseBase64PublicKey parses a PEM public key passed through the environment as base64.
func ParseBase64PublicKey(encoded string) (*rsa.PublicKey, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	return ParsePublicKey(decoded)
}

// VerifySHA512 checks a hex encoded RSA PKCS#1 v1.5 signature of data.
func VerifySHA512(pub *rsa.PublicKey, data []byte, hexSignature string) error {
	if pub == nil {
		return errors.New("public key is not configured")
	}

	signature, err := hex.DecodeString(hexSignature)
	if err != nil {
		return fmt.Errorf("decode hex signature: %w", err)
	}

	hashed := sha512.Sum512(data)

	err = rsa.VerifyPKCS1v15(pub, crypto.SHA512, hashed[:], signature)
	if err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}

	return nil
}
