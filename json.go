package jwt

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// json.go is the facade over the external JSON library (tidwall/gjson for
// reads, tidwall/sjson for writes, tidwall/pretty for canonical dumps).
// Every Token header/grant object and Validator.ReqGrants is represented
// as a raw JSON object document ([]byte); nothing here parses into a Go
// map, which keeps deep copy a byte copy and avoids reflecting over
// caller-supplied scalar kinds.

var emptyObject = []byte("{}")

func newObject() []byte {
	return append([]byte(nil), emptyObject...)
}

func cloneObject(doc []byte) []byte {
	out := make([]byte, len(doc))
	copy(out, doc)
	return out
}

// escapePath backslash-escapes the gjson/sjson path metacharacters so
// that header and grant names are always treated as a single flat key,
// never as a nested path.
func escapePath(name string) string {
	if strings.IndexAny(name, ".*?|\\") < 0 {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func objectHasString(doc []byte, name string) bool {
	r := gjson.GetBytes(doc, escapePath(name))
	return r.Exists() && r.Type == gjson.String
}

func objectHasInt(doc []byte, name string) bool {
	r := gjson.GetBytes(doc, escapePath(name))
	return r.Exists() && r.Type == gjson.Number
}

func objectHasBool(doc []byte, name string) bool {
	r := gjson.GetBytes(doc, escapePath(name))
	return r.Exists() && (r.Type == gjson.True || r.Type == gjson.False)
}

// objectSet writes a scalar value at name. mustNotExist turns a present
// key into ErrExists instead of an overwrite.
func objectSet(doc []byte, name string, value any, mustNotExist bool) ([]byte, error) {
	if mustNotExist && gjson.GetBytes(doc, escapePath(name)).Exists() {
		return doc, ErrExists
	}
	out, err := sjson.SetBytes(doc, escapePath(name), value)
	if err != nil {
		return doc, ErrInvalid
	}
	return out, nil
}

func objectDelete(doc []byte, name string) ([]byte, error) {
	out, err := sjson.DeleteBytes(doc, escapePath(name))
	if err != nil {
		return doc, ErrInvalid
	}
	return out, nil
}

func objectGetString(doc []byte, name string) (string, error) {
	r := gjson.GetBytes(doc, escapePath(name))
	if !r.Exists() {
		return "", ErrNotPresent
	}
	if r.Type != gjson.String {
		return "", ErrInvalid
	}
	return r.String(), nil
}

func objectGetInt(doc []byte, name string) (int64, error) {
	r := gjson.GetBytes(doc, escapePath(name))
	if !r.Exists() {
		return 0, ErrNotPresent
	}
	if r.Type != gjson.Number {
		return 0, ErrInvalid
	}
	return r.Int(), nil
}

func objectGetBool(doc []byte, name string) (bool, error) {
	r := gjson.GetBytes(doc, escapePath(name))
	if !r.Exists() {
		return false, ErrNotPresent
	}
	if r.Type != gjson.True && r.Type != gjson.False {
		return false, ErrInvalid
	}
	return r.Bool(), nil
}

// objectGetRaw returns the raw JSON text for name, or the whole document
// when name is empty (the "accept-any-root" mode used by GetHeadersJSON
// and GetGrantsJSON).
func objectGetRaw(doc []byte, name string) ([]byte, error) {
	if name == "" {
		return doc, nil
	}
	r := gjson.GetBytes(doc, escapePath(name))
	if !r.Exists() {
		return nil, ErrNotPresent
	}
	return []byte(r.Raw), nil
}

// objectMerge parses blob as a JSON object and merges its top-level keys
// into doc, optionally rejecting names already present in doc.
func objectMerge(doc, blob []byte, rejectDuplicates bool) ([]byte, error) {
	if !gjson.ValidBytes(blob) || !gjson.ParseBytes(blob).IsObject() {
		return doc, ErrInvalid
	}

	out := cloneObject(doc)
	var mergeErr error
	gjson.ParseBytes(blob).ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if rejectDuplicates && gjson.GetBytes(out, escapePath(name)).Exists() {
			mergeErr = ErrExists
			return false
		}
		merged, err := sjson.SetRawBytes(out, escapePath(name), []byte(value.Raw))
		if err != nil {
			mergeErr = ErrInvalid
			return false
		}
		out = merged
		return true
	})
	if mergeErr != nil {
		return doc, mergeErr
	}
	return out, nil
}

// canonicalCompact sort-keys and minifies a JSON document, per the
// {sort_keys, compact} serializer mode every encode path relies on.
func canonicalCompact(doc []byte) []byte {
	return pretty.Ugly(pretty.PrettyOptions(doc, &pretty.Options{SortKeys: true}))
}

// canonicalPretty sort-keys a JSON document with 4-space indentation,
// the {sort_keys, pretty-indent} mode used by Dump.
func canonicalPretty(doc []byte) []byte {
	return pretty.PrettyOptions(doc, &pretty.Options{SortKeys: true, Indent: "    "})
}

// objectEqual reports structural equality between two JSON values
// (object, array, or scalar) by comparing their canonical forms.
func objectEqual(a, b []byte) bool {
	return string(canonicalCompact(a)) == string(canonicalCompact(b))
}
