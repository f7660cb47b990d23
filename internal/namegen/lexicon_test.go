package namegen

import "testing"

func TestLoadLexicon(t *testing.T) {
	lex, err := LoadLexicon()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, size := range lex.Counts() {
		if size == 0 {
			t.Fatalf("expected non-empty list: %s", name)
		}
	}
}

func TestResolveElementAliases(t *testing.T) {
	lex, err := LoadLexicon()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"불", "fire", true},
		{"fire", "fire", true},
		{"얼음", "ice", true},
		{"자연", "nature", true},
		{"플라즈마", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := lex.ResolveElement(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ResolveElement(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestElementKeysSorted(t *testing.T) {
	lex, err := LoadLexicon()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys := lex.ElementKeys()
	if len(keys) != 10 {
		t.Fatalf("expected 10 elements, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("element keys not sorted: %v", keys)
		}
	}
}

func TestClassKeysComplete(t *testing.T) {
	lex, err := LoadLexicon()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lex.ClassKeys()) != 16 {
		t.Fatalf("expected 16 classes, got %d", len(lex.ClassKeys()))
	}
}
