package server

import (
	"strings"
	"testing"
)

func TestUploadName(t *testing.T) {
	a := uploadName("brief.pdf")
	b := uploadName("brief.pdf")
	if a == b {
		t.Fatalf("same-named files must get distinct stored names: %q", a)
	}
	for _, name := range []string{a, b} {
		if !strings.HasPrefix(name, "brief_") || !strings.HasSuffix(name, ".pdf") {
			t.Fatalf("stored name lost its base or extension: %q", name)
		}
	}

	if name := uploadName("weird name (v2)!.jpg"); strings.ContainsAny(name, " ()!") {
		t.Fatalf("unsafe characters survived: %q", name)
	}
	if name := uploadName(".pdf"); !strings.HasPrefix(name, "file_") {
		t.Fatalf("empty base should fall back to a stub: %q", name)
	}
}
