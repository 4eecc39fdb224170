package display

import "fmt"

// BuildVersion renders the version banner printed for --version, e.g.
// "mytool v1.2.3".
func BuildVersion(prog, version string) string {
	return fmt.Sprintf("%s v%s", prog, version)
}
