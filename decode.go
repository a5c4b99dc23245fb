package jwt

import (
	"bytes"
	"strings"

	"github.com/tidwall/gjson"
)

// Decode parses a JWS compact string into t. The algorithm is taken from
// the token's own "alg" header; the signature is checked with the key
// already installed on t via SetAlg, and an "alg" of none requires t to
// hold no key. On success t takes the decoded algorithm, headers and
// grants. On any failure the token's algorithm, headers and grants are
// left unchanged and ErrInvalid is returned; no partially decoded state
// is ever visible to the caller.
func (t *Token) Decode(token []byte) error {
	parts := bytes.SplitN(token, []byte("."), 3)
	if len(parts) != 3 {
		return ErrInvalid
	}
	h64, p64, s64 := parts[0], parts[1], parts[2]

	headerJSON, err := base64URLDecode(h64)
	if err != nil {
		return ErrInvalid
	}
	if !gjson.ValidBytes(headerJSON) || !gjson.ParseBytes(headerJSON).IsObject() {
		return ErrInvalid
	}

	algName, err := objectGetString(headerJSON, "alg")
	if err != nil {
		return ErrInvalid
	}
	alg := ParseAlgorithm(algName)
	if alg == Invalid {
		return ErrInvalid
	}

	if alg != None {
		if typ, err := objectGetString(headerJSON, "typ"); err == nil && !strings.EqualFold(typ, "JWT") {
			return ErrInvalid
		}
	}

	if alg == None {
		if len(t.key) > 0 {
			return ErrInvalid
		}
		if len(s64) != 0 {
			return ErrInvalid
		}
	} else if len(t.key) == 0 {
		return ErrInvalid
	}

	payloadJSON, err := base64URLDecode(p64)
	if err != nil {
		return ErrInvalid
	}
	if !gjson.ValidBytes(payloadJSON) || !gjson.ParseBytes(payloadJSON).IsObject() {
		return ErrInvalid
	}

	if alg != None {
		sig, err := base64URLDecode(s64)
		if err != nil {
			return ErrInvalid
		}

		signingInput := make([]byte, 0, len(h64)+len(p64)+1)
		signingInput = append(signingInput, h64...)
		signingInput = append(signingInput, '.')
		signingInput = append(signingInput, p64...)

		if err := verify(alg, t.key, signingInput, sig); err != nil {
			return ErrInvalid
		}
	}

	t.alg = alg
	t.headers = cloneObject(headerJSON)
	t.grants = cloneObject(payloadJSON)
	return nil
}
