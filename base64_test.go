package jwt

import (
	"bytes"
	"testing"
)

func TestBase64URLEncodeNoPadding(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte(`{"alg":"none"}`),
	}

	for _, c := range cases {
		out := base64URLEncode(c)
		if bytes.ContainsAny(out, "=+/") {
			t.Errorf("base64URLEncode(%q) = %q contains padding or non-url-safe chars", c, out)
		}
	}
}

func TestBase64URLRoundTrip(t *testing.T) {
	in := []byte("the quick brown fox jumps over the lazy dog 0123456789")
	enc := base64URLEncode(in)
	dec, err := base64URLDecode(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(in, dec) {
		t.Fatalf("round trip mismatch: got %q want %q", dec, in)
	}
}

func TestBase64URLDecodeEmpty(t *testing.T) {
	dec, err := base64URLDecode([]byte(""))
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if len(dec) != 0 {
		t.Fatalf("expected empty, got %q", dec)
	}
}

func TestBase64URLDecodeMalformed(t *testing.T) {
	_, err := base64URLDecode([]byte("not!valid$base64"))
	if err != ErrInvalid {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestBase64URLKnownVector(t *testing.T) {
	got := string(base64URLEncode([]byte(`{"alg":"none"}`)))
	want := "eyJhbGciOiJub25lIn0"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
