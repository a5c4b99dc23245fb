package jwt

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Validator expresses a verification policy independent of decoding:
// the algorithm a token must carry, the time to check exp/nbf against
// (0 disables time checks), required grants, and the last status
// message produced by Validate.
type Validator struct {
	Alg       Algorithm
	Now       int64
	Hdr       bool // reserved; has no effect on the current validation order
	ReqGrants []byte
	Status    string
}

// NewValidator returns a Validator that requires alg and has no time
// check or required grants configured yet.
func NewValidator(alg Algorithm) *Validator {
	return &Validator{Alg: alg, ReqGrants: newObject()}
}

// RequireGrant adds (name, value) to the set of grants Validate demands
// be present and JSON-equal on every token it checks.
func (v *Validator) RequireGrant(name string, value any) error {
	out, err := objectSet(v.ReqGrants, name, value, false)
	if err != nil {
		return err
	}
	v.ReqGrants = out
	return nil
}

// Validate checks t against v's policy, in the fixed order below, and
// sets v.Status to a human-readable result. The first failing check
// wins except for required grants, where the first mismatching grant is
// reported. It returns true only when every check passes.
func (v *Validator) Validate(t *Token) bool {
	if t == nil {
		v.Status = "Invalid JWT"
		return false
	}

	if v.Alg != t.alg {
		v.Status = "Algorithm does not match"
		return false
	}

	if v.Now != 0 {
		if exp, err := objectGetInt(t.grants, "exp"); err == nil && v.Now >= exp {
			v.Status = "JWT has expired"
			return false
		}
		if nbf, err := objectGetInt(t.grants, "nbf"); err == nil && v.Now < nbf {
			v.Status = "JWT has not matured"
			return false
		}
	}

	for _, name := range [...]string{"iss", "sub"} {
		hv, hErr := objectGetString(t.headers, name)
		gv, gErr := objectGetString(t.grants, name)
		if hErr == nil && gErr == nil && hv != gv {
			v.Status = fmt.Sprintf("JWT %q header does not match", name)
			return false
		}
	}

	hAud, hErr := objectGetRaw(t.headers, "aud")
	gAud, gErr := objectGetRaw(t.grants, "aud")
	if hErr == nil && gErr == nil && !objectEqual(hAud, gAud) {
		v.Status = `JWT "aud" header does not match`
		return false
	}

	ok := true
	gjson.ParseBytes(v.ReqGrants).ForEach(func(key, expected gjson.Result) bool {
		name := key.String()
		actual := gjson.GetBytes(t.grants, escapePath(name))
		if !actual.Exists() {
			v.Status = fmt.Sprintf("JWT %q grant is not present", name)
			ok = false
			return false
		}
		if !objectEqual([]byte(actual.Raw), []byte(expected.Raw)) {
			v.Status = fmt.Sprintf("JWT %q grant does not match", name)
			ok = false
			return false
		}
		return true
	})
	if !ok {
		return false
	}

	v.Status = "Valid JWT"
	return true
}
