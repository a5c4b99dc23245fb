package jwt

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
)

func generateRSAPEMPair(t *testing.T) (privPEM, pubPEM []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	privDER := x509.MarshalPKCS1PrivateKey(key)
	privPEM = pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: privDER})

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal rsa public key: %v", err)
	}
	pubPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	return privPEM, pubPEM
}

func TestRSASignVerifyRoundTrip(t *testing.T) {
	privPEM, pubPEM := generateRSAPEMPair(t)
	r := algRSA{hasher: crypto.SHA256}
	msg := []byte("header.payload")

	sig, err := r.sign(privPEM, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if err := r.verify(pubPEM, msg, sig); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestRSAVerifyRejectsTamperedSignature(t *testing.T) {
	privPEM, pubPEM := generateRSAPEMPair(t)
	r := algRSA{hasher: crypto.SHA256}
	msg := []byte("header.payload")

	sig, err := r.sign(privPEM, msg)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig[0] ^= 0xFF

	if err := r.verify(pubPEM, msg, sig); err != ErrInvalid {
		t.Fatalf("verify tampered = %v, want ErrInvalid", err)
	}
}

func TestRSASignRejectsMalformedKey(t *testing.T) {
	r := algRSA{hasher: crypto.SHA256}
	if _, err := r.sign([]byte("not pem"), []byte("m")); err != ErrInvalid {
		t.Fatalf("sign malformed key = %v, want ErrInvalid", err)
	}
}
