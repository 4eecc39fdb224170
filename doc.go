// Package subcommand is a declarative command-line dispatch layer for Go.
// Commands are methods on a struct; each method's parameters are described
// by option declarations, and the library derives a working CLI from that
// metadata: typed argument binding, help and usage text, and nested
// subcommand trees.
//
// Option parsing is delegated to github.com/spf13/pflag; this package
// implements only the binding layer between declarations and method calls.
// Structural mistakes (duplicate names, mismatched signatures) panic with a
// ConfigurationError at registration time, never at dispatch time. Dispatch
// itself reports usage problems on the error stream and returns exit code 1
// (no or unknown command) or 2 (argument parse failure); errors returned by
// command methods propagate unchanged to the caller of Run.
package subcommand
