package jwt

import "encoding/base64"

// base64URLEncode encodes src as unpadded base64url (RFC 4648 §5),
// the form used for every JWS compact segment. Empty input yields
// empty output.
func base64URLEncode(src []byte) []byte {
	buf := make([]byte, base64.RawURLEncoding.EncodedLen(len(src)))
	base64.RawURLEncoding.Encode(buf, src)
	return buf
}

// base64URLDecode accepts unpadded base64url text and returns the
// decoded bytes. It tolerates the absence of padding but otherwise
// rejects anything outside the url-safe alphabet.
func base64URLDecode(src []byte) ([]byte, error) {
	buf := make([]byte, base64.RawURLEncoding.DecodedLen(len(src)))
	n, err := base64.RawURLEncoding.Decode(buf, src)
	if err != nil {
		return nil, ErrInvalid
	}
	return buf[:n], nil
}
