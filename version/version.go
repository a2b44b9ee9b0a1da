package version

import (
	"github.com/coreos/go-semver/semver"

	"github.com/eigerco/uniffi-go/errors"
)

// Token is the protocol version this runtime speaks. Generated scaffolding
// captures the generator's own token at generation time and asserts it
// against this one when the scaffolding is compiled.
const Token = "0.26.0"

// maxTokenLen bounds token length (exclusive). The bounded check keeps the
// comparison expressible in build-time facilities on every side of the
// boundary, including foreign toolchains without compile-time loops.
const maxTokenLen = 10

// Token must stay under the bound; a longer token overflows the uint and
// fails compilation here, in the runtime itself.
const _ = uint(maxTokenLen - 1 - len(Token))

// The build-time gate itself lives in the generated code. The generator
// emits a duplicate-map-key assertion with its own token:
//
//	var _ = map[bool]struct{}{false: {}, version.Token == "0.26.0": {}}
//
// When the tokens match the keys are distinct and the file compiles; when
// they diverge both keys are false and compilation fails with a duplicate
// key error. The mismatch is caught while compiling the generated code,
// before any value crosses the boundary.

// TokensEqual reports whether two version tokens are byte-identical. It is
// the gate's comparison as a plain function, for the generator's preflight
// and for runtimes that re-check at load time. Tokens at or over the length
// bound never compare equal, whatever their content.
func TokensEqual(a, b string) bool {
	if len(a) >= maxTokenLen || len(b) >= maxTokenLen {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CheckCompatible reports whether scaffolding generated with the given
// token may link against this runtime. The runtime and generator are
// required to match exactly while the protocol is still evolving.
func CheckCompatible(generated string) bool {
	return TokensEqual(Token, generated)
}

// Validate is the load-time recheck generated module init functions call as
// a backstop behind the compile-time gate. On mismatch the returned error
// classifies the skew when both tokens parse as semantic versions.
func Validate(generated string) error {
	if CheckCompatible(generated) {
		return nil
	}
	return errors.VersionSkew(Token, generated, classifySkew(Token, generated))
}

func classifySkew(runtimeToken, generatedToken string) string {
	rv, err := semver.NewVersion(runtimeToken)
	if err != nil {
		return ""
	}
	gv, err := semver.NewVersion(generatedToken)
	if err != nil {
		return ""
	}
	switch {
	case rv.Major != gv.Major:
		return "major version skew"
	case rv.Minor != gv.Minor:
		return "minor version skew"
	case rv.Patch != gv.Patch:
		return "patch version skew"
	default:
		return "prerelease or metadata skew"
	}
}
