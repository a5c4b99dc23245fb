package jwt

// Token holds the in-memory state the encoder, decoder, and validator
// operate on: an algorithm tag, an optional key buffer, and two JSON
// objects (headers, grants) manipulated through the typed accessors
// below. A zero Token is not ready for use; construct one with New.
type Token struct {
	alg     Algorithm
	key     []byte
	headers []byte
	grants  []byte
}

// New constructs an empty Token: algorithm None, no key, empty header
// and grant objects.
func New() *Token {
	return &Token{
		alg:     None,
		headers: newObject(),
		grants:  newObject(),
	}
}

// Free releases t. The key buffer is zero-wiped before release; headers
// and grants are dropped to the garbage collector.
func (t *Token) Free() {
	freeKey(t.key)
	t.key = nil
	t.headers = nil
	t.grants = nil
}

// Dup returns a deep copy of t: independent key, headers, and grants
// buffers, so mutating the copy never mutates t.
func (t *Token) Dup() *Token {
	dup := &Token{
		alg:     t.alg,
		headers: cloneObject(t.headers),
		grants:  cloneObject(t.grants),
	}
	if len(t.key) > 0 {
		dup.key = allocKey(len(t.key))
		copy(dup.key, t.key)
	}
	return dup
}

// SetAlg changes the token's algorithm and key together. The previous
// key is scrubbed unconditionally, even if the new (alg, key) pair is
// rejected below — a Token never carries a stale, unscrubbed key.
//
// alg must be one of the enumerated algorithms (not Invalid). None
// requires an empty key; every other algorithm requires a non-empty one.
func (t *Token) SetAlg(alg Algorithm, key []byte) error {
	freeKey(t.key)
	t.key = nil
	t.alg = None

	if alg == Invalid || int(alg) >= len(algNames) {
		return ErrInvalid
	}

	if alg == None {
		if len(key) > 0 {
			return ErrInvalid
		}
		return nil
	}

	if len(key) == 0 {
		return ErrInvalid
	}

	t.key = allocKey(len(key))
	if len(t.key) < len(key) {
		freeKey(t.key)
		t.key = nil
		return ErrNoMemory
	}
	copy(t.key, key)
	t.alg = alg
	return nil
}

// Alg returns the token's current algorithm.
func (t *Token) Alg() Algorithm {
	return t.alg
}

// AddHeader adds a string header. It fails with ErrExists if name is
// already present as a string value (see the duplicate-detection open
// question recorded in DESIGN.md: the probe is type-specific).
func (t *Token) AddHeader(name, value string) error {
	return addString(&t.headers, name, value)
}

// AddGrant adds a string grant. See AddHeader for duplicate semantics.
func (t *Token) AddGrant(name, value string) error {
	return addString(&t.grants, name, value)
}

// AddHeaderInt adds an integer header.
func (t *Token) AddHeaderInt(name string, value int64) error {
	return addInt(&t.headers, name, value)
}

// AddGrantInt adds an integer grant.
func (t *Token) AddGrantInt(name string, value int64) error {
	return addInt(&t.grants, name, value)
}

// AddHeaderBool adds a boolean header.
func (t *Token) AddHeaderBool(name string, value bool) error {
	return addBool(&t.headers, name, value)
}

// AddGrantBool adds a boolean grant.
func (t *Token) AddGrantBool(name string, value bool) error {
	return addBool(&t.grants, name, value)
}

func addString(doc *[]byte, name, value string) error {
	if objectHasString(*doc, name) {
		return ErrExists
	}
	out, err := objectSet(*doc, name, value, false)
	if err != nil {
		return err
	}
	*doc = out
	return nil
}

func addInt(doc *[]byte, name string, value int64) error {
	if objectHasInt(*doc, name) {
		return ErrExists
	}
	out, err := objectSet(*doc, name, value, false)
	if err != nil {
		return err
	}
	*doc = out
	return nil
}

func addBool(doc *[]byte, name string, value bool) error {
	if objectHasBool(*doc, name) {
		return ErrExists
	}
	out, err := objectSet(*doc, name, value, false)
	if err != nil {
		return err
	}
	*doc = out
	return nil
}

// AddHeadersJSON parses blob as a JSON object and merges its keys into
// the header object, rejecting any name already present.
func (t *Token) AddHeadersJSON(blob []byte) error {
	out, err := objectMerge(t.headers, blob, true)
	if err != nil {
		return err
	}
	t.headers = out
	return nil
}

// AddGrantsJSON parses blob as a JSON object and merges its keys into
// the grant object, rejecting any name already present.
func (t *Token) AddGrantsJSON(blob []byte) error {
	out, err := objectMerge(t.grants, blob, true)
	if err != nil {
		return err
	}
	t.grants = out
	return nil
}

// GetHeader returns a string header, or ErrNotPresent if absent.
func (t *Token) GetHeader(name string) (string, error) {
	return objectGetString(t.headers, name)
}

// GetGrant returns a string grant, or ErrNotPresent if absent.
func (t *Token) GetGrant(name string) (string, error) {
	return objectGetString(t.grants, name)
}

// GetHeaderInt returns an integer header, or ErrNotPresent if absent.
func (t *Token) GetHeaderInt(name string) (int64, error) {
	return objectGetInt(t.headers, name)
}

// GetGrantInt returns an integer grant, or ErrNotPresent if absent.
func (t *Token) GetGrantInt(name string) (int64, error) {
	return objectGetInt(t.grants, name)
}

// GetHeaderBool returns a boolean header, or ErrNotPresent if absent.
func (t *Token) GetHeaderBool(name string) (bool, error) {
	return objectGetBool(t.headers, name)
}

// GetGrantBool returns a boolean grant, or ErrNotPresent if absent.
func (t *Token) GetGrantBool(name string) (bool, error) {
	return objectGetBool(t.grants, name)
}

// GetHeadersJSON serializes the header subtree named by name (or the
// whole header object when name is empty) as sorted-key compact JSON.
func (t *Token) GetHeadersJSON(name string) ([]byte, error) {
	raw, err := objectGetRaw(t.headers, name)
	if err != nil {
		return nil, err
	}
	return canonicalCompact(raw), nil
}

// GetGrantsJSON serializes the grant subtree named by name (or the whole
// grant object when name is empty) as sorted-key compact JSON.
func (t *Token) GetGrantsJSON(name string) ([]byte, error) {
	raw, err := objectGetRaw(t.grants, name)
	if err != nil {
		return nil, err
	}
	return canonicalCompact(raw), nil
}

// DelHeaders removes the header named name, or clears the whole header
// object when name is empty.
func (t *Token) DelHeaders(name string) error {
	if name == "" {
		t.headers = newObject()
		return nil
	}
	out, err := objectDelete(t.headers, name)
	if err != nil {
		return err
	}
	t.headers = out
	return nil
}

// DelGrants removes the grant named name, or clears the whole grant
// object when name is empty.
func (t *Token) DelGrants(name string) error {
	if name == "" {
		t.grants = newObject()
		return nil
	}
	out, err := objectDelete(t.grants, name)
	if err != nil {
		return err
	}
	t.grants = out
	return nil
}

// DelGrant is the singular alias for DelGrants; behavior is identical.
func (t *Token) DelGrant(name string) error {
	return t.DelGrants(name)
}

// Dump renders the header and grant objects joined by "." with no
// signature segment, for inspection rather than verification. With
// pretty set, each object is 4-space indented and preceded by a newline.
func (t *Token) Dump(pretty bool) []byte {
	if !pretty {
		out := append([]byte{}, canonicalCompact(t.headers)...)
		out = append(out, '.')
		return append(out, canonicalCompact(t.grants)...)
	}

	out := append([]byte("\n"), canonicalPretty(t.headers)...)
	out = append(out, '\n', '.', '\n')
	out = append(out, canonicalPretty(t.grants)...)
	return append(out, '\n')
}
