package jwt

// Allocators is the process-wide {alloc, realloc, free} triple a caller
// may install for Token key-buffer management. Either all three fields
// are set or none; this mirrors the JSON library's allocator hook the
// triple would also be installed into in a full reimplementation. It is
// meant to be configured once, before any Token exists — changing it
// mid-lifetime is undefined.
type Allocators struct {
	Alloc   func(size int) []byte
	Realloc func(buf []byte, size int) []byte
	Free    func(buf []byte)
}

var allocators *Allocators

// SetAllocators installs the process-wide allocator triple. Calling it
// with a zero value reverts to platform defaults (make/GC). Installing
// only some of the three fields panics.
func SetAllocators(a Allocators) {
	set := 0
	if a.Alloc != nil {
		set++
	}
	if a.Realloc != nil {
		set++
	}
	if a.Free != nil {
		set++
	}
	switch set {
	case 0:
		allocators = nil
	case 3:
		allocators = &a
	default:
		panic("jwt: SetAllocators requires all three fields set, or none")
	}
}

func allocKey(size int) []byte {
	if allocators != nil {
		return allocators.Alloc(size)
	}
	return make([]byte, size)
}

// scrubKey overwrites buf with zeros in place. Called through freeKey on
// the paths that discard a Token's key: SetAlg and Free.
func scrubKey(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// freeKey scrubs buf and, if a custom allocator is installed, forwards
// the release to it.
func freeKey(buf []byte) {
	scrubKey(buf)
	if allocators != nil {
		allocators.Free(buf)
	}
}
