package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionIsSemver(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Get().Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("Get().GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; info.Platform != want {
		t.Errorf("Get().Platform = %q, want %q", info.Platform, want)
	}
}

func TestInfoString(t *testing.T) {
	out := Info{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-10-18"}.String()

	for _, want := range []string{"sellerdesk v1.2.3", "Git Commit: abc123", "Build Date: 2026-10-18"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q in %q", want, out)
		}
	}
}
