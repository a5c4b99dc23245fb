package jwt

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"
)

// algECDSA implements signer for ES256/ES384/ES512. Signatures are the
// raw fixed-width r||s concatenation per RFC 7518 §3.4, not ASN.1 DER.
// As with RSA, the key argument is PEM bytes parsed on every call.
type algECDSA struct {
	hasher    crypto.Hash
	keySize   int
	curveBits int
}

func (a algECDSA) sign(key, signingInput []byte) ([]byte, error) {
	privateKey, err := parseECPrivateKey(key)
	if err != nil {
		return nil, ErrInvalid
	}

	if privateKey.Curve.Params().BitSize != a.curveBits {
		return nil, ErrInvalid
	}

	h := a.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return nil, err
	}

	r, s, err := ecdsa.Sign(rand.Reader, privateKey, h.Sum(nil))
	if err != nil {
		return nil, err
	}

	rBytes := make([]byte, a.keySize)
	r.FillBytes(rBytes)

	sBytes := make([]byte, a.keySize)
	s.FillBytes(sBytes)

	return append(rBytes, sBytes...), nil
}

func (a algECDSA) verify(key, signingInput, signature []byte) error {
	publicKey, err := parseECPublicKey(key)
	if err != nil {
		return ErrInvalid
	}

	if len(signature) != 2*a.keySize {
		return ErrInvalid
	}

	r := new(big.Int).SetBytes(signature[:a.keySize])
	s := new(big.Int).SetBytes(signature[a.keySize:])

	h := a.hasher.New()
	if _, err := h.Write(signingInput); err != nil {
		return err
	}

	if !ecdsa.Verify(publicKey, h.Sum(nil), r, s) {
		return ErrInvalid
	}

	return nil
}

func parseECPrivateKey(key []byte) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode(key)
	if block == nil {
		return nil, fmt.Errorf("jwt: malformed PEM private key")
	}

	if privateKey, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return privateKey, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	privateKey, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("jwt: PEM block is not an EC private key")
	}

	return privateKey, nil
}

func parseECPublicKey(key []byte) (*ecdsa.PublicKey, error) {
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

	publicKey, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("jwt: PEM block is not an EC public key")
	}

	return publicKey, nil
}
