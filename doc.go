/*
Package jwt implements JSON Web Signature compact tokens (RFC 7515) over
a closed set of JSON Web Algorithms (RFC 7518): none, HS256/384/512,
RS256/384/512, and ES256/384/512.

# Token lifecycle

A Token is built, not parsed directly into a destination type. Create
one with New, set its algorithm and key with SetAlg, attach header and
grant (claim) values with AddHeader/AddGrant and their typed variants,
then produce the compact string with Encode:

	tok := jwt.New()
	defer tok.Free()

	if err := tok.SetAlg(jwt.HS256, secret); err != nil {
		log.Fatal(err)
	}
	tok.AddGrant("sub", "user123")
	tok.AddGrantInt("exp", time.Now().Add(time.Hour).Unix())

	out, err := tok.Encode()

Decode does the reverse: split the compact form, take the algorithm
from the token's "alg" header, verify the signature with the key already
set on the Token, and populate headers and grants from the header and
payload segments.

	tok := jwt.New()
	defer tok.Free()
	tok.SetAlg(jwt.HS256, secret)

	if err := tok.Decode(compact); err != nil {
		log.Fatal(err)
	}

	sub, err := tok.GetGrant("sub")

# Error taxonomy

Accessors and mutators report failure through four sentinel kinds:
ErrInvalid for malformed input or a violated invariant, ErrExists when
a header or grant name is added twice, ErrNotPresent when a getter
can't find the requested name, and ErrNoMemory when the installed
allocator (see SetAllocators) fails. Callers compare with errors.Is.

# Key handling

A Token's key is always a raw byte buffer, whether it holds an HMAC
secret or PEM-encoded RSA/EC key material; RSA and ECDSA signers parse
the PEM on every sign/verify call rather than caching a typed key. The
"none" algorithm requires the key to be empty, and every other
algorithm requires it non-empty; SetAlg enforces this pairing and zero
wipes whatever key was previously installed before replacing it.

# Validation

Validator expresses a verification policy independent of decoding: the
algorithm a token must carry, the current time to check exp/nbf
against, and a set of grants that must both be present and match. Its
Validate method reports a human-readable status alongside a pass/fail
result, mirroring the single-string verdict style of the C library
this package's validation order is drawn from.
*/
package jwt
