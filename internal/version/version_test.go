package version

import (
	"strings"
	"testing"
)

func override(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"plain", "1.2.3", "", "", "sfz 1.2.3"},
		{"commit shortened", "1.2.3", "abc123def4567890", "", "sfz 1.2.3 (abc123def456)"},
		{"short commit", "1.2.3", "abc", "", "sfz 1.2.3 (abc)"},
		{"date", "1.2.3", "", "2024-01-15T10:30:00Z", "sfz 1.2.3 built 2024-01-15T10:30:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override(t, tt.version, tt.commit, tt.date)
			if got := String(false); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColored(t *testing.T) {
	override(t, "0.4.1-rc1", "", "")
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc1") {
		t.Errorf("Colored(true) = %q", got)
	}
	if Colored(false) != "0.4.1-rc1" {
		t.Errorf("Colored(false) = %q", Colored(false))
	}

	override(t, "nightly", "", "")
	if Colored(true) != "nightly" {
		t.Errorf("non-semver version must pass through, got %q", Colored(true))
	}
}
