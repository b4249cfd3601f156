package metrics

import "testing"

func TestAttributeKeysAreDistinct(t *testing.T) {
	keys := []string{AttrMethod, AttrPath, AttrStatus, AttrUpstream, AttrOutcome}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" {
			t.Fatal("expected non-empty attribute key")
		}
		if seen[k] {
			t.Fatalf("duplicate attribute key %q", k)
		}
		seen[k] = true
	}
}
