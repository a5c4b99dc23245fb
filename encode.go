package jwt

// Encode produces the JWS compact string for t: inject the canonical
// alg/typ headers, serialize headers and grants as sorted-key compact
// JSON, base64url-encode both, sign the result (unless alg is None), and
// concatenate the three segments. No partial output is returned on
// error.
func (t *Token) Encode() ([]byte, error) {
	headers, err := objectDelete(t.headers, "alg")
	if err != nil {
		return nil, err
	}

	if t.alg != None {
		headers, err = objectDelete(headers, "typ")
		if err != nil {
			return nil, err
		}
		headers, err = objectSet(headers, "typ", "JWT", false)
		if err != nil {
			return nil, err
		}
	}

	headers, err = objectSet(headers, "alg", t.alg.String(), false)
	if err != nil {
		return nil, err
	}

	h64 := base64URLEncode(canonicalCompact(headers))
	p64 := base64URLEncode(canonicalCompact(t.grants))

	signingInput := make([]byte, 0, len(h64)+len(p64)+1)
	signingInput = append(signingInput, h64...)
	signingInput = append(signingInput, '.')
	signingInput = append(signingInput, p64...)

	if t.alg == None {
		return append(signingInput, '.'), nil
	}

	sig, err := sign(t.alg, t.key, signingInput)
	if err != nil {
		return nil, err
	}

	out := append(signingInput, '.')
	return append(out, base64URLEncode(sig)...), nil
}
