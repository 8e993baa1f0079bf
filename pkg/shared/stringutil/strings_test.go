package stringutil

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 300); got != "short" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	long := strings.Repeat("x", 400)
	got := Truncate(long, 300)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
	if len(got) != 303 {
		t.Fatalf("expected 300 chars plus marker, got %d", len(got))
	}
}

func TestTruncateMultibyte(t *testing.T) {
	text := strings.Repeat("ü", 10)
	got := Truncate(text, 5)
	if got != strings.Repeat("ü", 5)+"..." {
		t.Fatalf("unexpected truncation of multi-byte text: %q", got)
	}
}

func TestEnvOr(t *testing.T) {
	if got := EnvOr("existing", "  "); got != "existing" {
		t.Fatalf("expected existing value kept, got %q", got)
	}
	if got := EnvOr("existing", "override"); got != "override" {
		t.Fatalf("expected override, got %q", got)
	}
}
