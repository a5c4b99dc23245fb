package jwt

// algNone implements signer for the "none" algorithm. No cryptographic
// operation is performed: sign always produces an empty signature, and
// verify accepts only an empty one.
type algNone struct{}

func (algNone) sign(key, signingInput []byte) ([]byte, error) {
	return nil, nil
}

func (algNone) verify(key, signingInput, signature []byte) error {
	if len(signature) != 0 {
		return ErrInvalid
	}
	return nil
}
