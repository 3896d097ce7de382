// Package version holds build information for the sfz CLI.
// The variables can be overridden at build time via -ldflags, e.g.
//
//	-X sfzkit/internal/version.Version=1.2.0 -X sfzkit/internal/version.GitCommit=$(git rev-parse HEAD)
package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with major, minor and patch in distinct colors.
// Anything that is not dotted numbers is returned as is.
func Colored(on bool) string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.Split(core, ".")
	if !on || len(parts) != 3 {
		return Version
	}
	cs := []*color.Color{majorColor, minorColor, patchColor}
	for i, c := range cs {
		c.EnableColor()
		parts[i] = c.Sprint(parts[i])
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// String returns the one-line description printed by `sfz version`.
func String(colored bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "sfz %s", Colored(colored))
	if GitCommit != "" {
		commit := GitCommit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		fmt.Fprintf(&b, " (%s)", commit)
	}
	if BuildDate != "" {
		fmt.Fprintf(&b, " built %s", BuildDate)
	}
	return b.String()
}
