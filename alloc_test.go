package jwt

import "testing"

// testAllocator records every buffer it is asked to free, so tests can
// inspect it after the fact to confirm scrubbing happened before release.
type testAllocator struct {
	freed [][]byte
}

func (a *testAllocator) install() {
	SetAllocators(Allocators{
		Alloc:   func(size int) []byte { return make([]byte, size) },
		Realloc: func(buf []byte, size int) []byte { out := make([]byte, size); copy(out, buf); return out },
		Free:    func(buf []byte) { a.freed = append(a.freed, buf) },
	})
}

func TestSetAllocatorsRejectsPartialTriple(t *testing.T) {
	defer SetAllocators(Allocators{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for partial allocator triple")
		}
	}()
	SetAllocators(Allocators{Alloc: func(size int) []byte { return make([]byte, size) }})
}

func TestKeyScrubbedOnFree(t *testing.T) {
	alloc := &testAllocator{}
	alloc.install()
	defer SetAllocators(Allocators{})

	tok := New()
	if err := tok.SetAlg(HS256, []byte("top-secret-key")); err != nil {
		t.Fatalf("SetAlg: %v", err)
	}

	tok.Free()

	if len(alloc.freed) == 0 {
		t.Fatal("Free did not forward to the installed allocator")
	}

	// SetAlg already forwarded the token's initial nil key, so the key
	// released by Free is the last buffer and must have the key's length.
	last := alloc.freed[len(alloc.freed)-1]
	if len(last) != len("top-secret-key") {
		t.Fatalf("last freed buffer has %d bytes, want the %d-byte key", len(last), len("top-secret-key"))
	}
	for i, b := range last {
		if b != 0 {
			t.Fatalf("freed key byte %d = %d, want 0", i, b)
		}
	}
}

func TestKeyScrubbedOnSetAlg(t *testing.T) {
	alloc := &testAllocator{}
	alloc.install()
	defer SetAllocators(Allocators{})

	tok := New()
	defer tok.Free()

	if err := tok.SetAlg(HS256, []byte("first-key-material")); err != nil {
		t.Fatalf("SetAlg: %v", err)
	}
	if err := tok.SetAlg(None, nil); err != nil {
		t.Fatalf("SetAlg(None): %v", err)
	}

	if len(alloc.freed) == 0 {
		t.Fatal("SetAlg did not scrub the prior key through the allocator")
	}
	// The first SetAlg forwarded the token's initial nil key, so the
	// prior key released by SetAlg(None) is the last buffer.
	last := alloc.freed[len(alloc.freed)-1]
	if len(last) != len("first-key-material") {
		t.Fatalf("last freed buffer has %d bytes, want the %d-byte prior key", len(last), len("first-key-material"))
	}
	for i, b := range last {
		if b != 0 {
			t.Fatalf("scrubbed key byte %d = %d, want 0", i, b)
		}
	}
}
