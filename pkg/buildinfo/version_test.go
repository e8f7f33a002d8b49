package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	want := Info{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-02"}
	if got := Get(); got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if got := Get().String(); !strings.Contains(got, "version: v1.2.3") || !strings.Contains(got, "commit: abc123") {
		t.Errorf("String() = %q", got)
	}
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
}
