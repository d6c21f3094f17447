package id

import "testing"

func TestNewID32_Format(t *testing.T) {
	got := NewID32()
	if len(got) != 32 {
		t.Fatalf("len = %d, want 32", len(got))
	}
	for i, c := range got {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Fatalf("non-hex char %q at index %d in %s", c, i, got)
		}
	}
}

func TestNewID32_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		v := NewID32()
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id after %d draws: %s", i, v)
		}
		seen[v] = struct{}{}
	}
}
