package jwt

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// algRSA implements signer for RS256/RS384/RS512 (PKCS#1 v1.5 padding).
// The key argument is always PEM bytes, a private key for sign and a
// PKIX public key or a certificate for verify; it is parsed fresh on every call since
// a Token stores no parsed key state, only the raw buffer.
type algRSA struct {
	hasher crypto.Hash
}

func (a algRSA) sign(key, signingInput []byte) ([]byte, error) {
	privateKey, err := parseRSAPrivateKey(key)
	if err != nil {
		return nil, ErrInvalid
	}

	h := a.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return nil, err
	}

	return rsa.SignPKCS1v15(rand.Reader, privateKey, a.hasher, h.Sum(nil))
}

func (a algRSA) verify(key, signingInput, signature []byte) error {
	publicKey, err := parseRSAPublicKey(key)
	if err != nil {
		return ErrInvalid
	}

	h := a.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return err
	}

	if err := rsa.VerifyPKCS1v15(publicKey, a.hasher, h.Sum(nil), signature); err != nil {
		return ErrInvalid
	}

	return nil
}

// parseRSAPrivateKey decodes a PEM block holding either PKCS#1 or PKCS#8
// RSA private key material.
func parseRSAPrivateKey(key []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(key)
	if block == nil {
		return nil, fmt.Errorf("jwt: malformed PEM private key")
	}

	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return privateKey, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("jwt: PEM block is not an RSA private key")
	}

	return privateKey, nil
}

// parseRSAPublicKey decodes a PEM block holding a PKIX public key, or
// falls back to extracting the public key from a certificate.
func parseRSAPublicKey(key []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(key)
	if block == nil {
		return nil, fmt.Errorf("jwt: malformed PEM public key")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		cert, certErr := x509.ParseCertificate(block.Bytes)
		if certErr != nil {
			return nil, err
		}
		parsed = cert.PublicKey
	}

	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("jwt: PEM block is not an RSA public key")
	}

	return publicKey, nil
}
