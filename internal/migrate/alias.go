package migrate

import "strings"

var (
	legacyAliasPrefix = []string{"Targets", "Controller", "Custom Devices", "SLSC"}
	nativeAliasPrefix = []string{"Targets", "Controller", "Hardware", "SLSC"}
)

// RewriteAliasPath maps an alias path that addressed a module under the
// legacy device to the same module under the native device:
//
//	Targets/Controller/Custom Devices/SLSC/<chassis>/<module>
//	Targets/Controller/Hardware/SLSC/<chassis>/Modules/<module>
//
// It returns ok=false and the path unchanged for any other shape, including
// deeper paths and empty chassis or module segments.
func RewriteAliasPath(path string) (string, bool) {
	parts := strings.Split(path, "/")
	if len(parts) != len(legacyAliasPrefix)+2 {
		return path, false
	}
	for i, want := range legacyAliasPrefix {
		if parts[i] != want {
			return path, false
		}
	}

	chassis, module := parts[len(parts)-2], parts[len(parts)-1]
	if chassis == "" || module == "" {
		return path, false
	}

	rewritten := make([]string, 0, len(nativeAliasPrefix)+3)
	rewritten = append(rewritten, nativeAliasPrefix...)
	rewritten = append(rewritten, chassis, modulesName, module)
	return strings.Join(rewritten, "/"), true
}
