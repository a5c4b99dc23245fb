package jwt

import (
	"crypto"
	"crypto/hmac"
	_ "crypto/sha256" // ignore:lint
	_ "crypto/sha512"
)

// algHMAC implements signer for the symmetric HS256/HS384/HS512 family.
// The key is the raw shared secret; there is no PEM or DER form.
type algHMAC struct {
	hasher crypto.Hash
}

func (a algHMAC) sign(key, signingInput []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrInvalid
	}

	h := hmac.New(a.hasher.New, key)
	if _, err := h.Write(signingInput); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

func (a algHMAC) verify(key, signingInput, signature []byte) error {
	expected, err := a.sign(key, signingInput)
	if err != nil {
		return err
	}

	// hmac.Equal is constant-time; required to avoid leaking the match
	// length through early-exit comparison.
	if !hmac.Equal(expected, signature) {
		return ErrInvalid
	}

	return nil
}
