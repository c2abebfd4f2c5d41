package deflist

import "testing"

func TestHasDefinitionLists(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"simple", "Term\n: definition", true},
		{"plain prose", "just a paragraph\nand another line", false},
		{"list marker is not a term", "- item\n: def", false},
		{"heading is not a term", "# Head\n: def", false},
		{"ordered marker is not a term", "1. item\n: def", false},
		{"colon needs space", "Term\n:def", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		if got := HasDefinitionLists(tt.in); got != tt.want {
			t.Errorf("%s: HasDefinitionLists(%q) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestParseSegmentsSplitsDocument(t *testing.T) {
	src := "# Title\n\nTerm 1\n: def a\n: def b\n\nTerm 2\n: def c\n\nclosing paragraph"
	segs := ParseSegments(src)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if segs[0].IsList() || segs[0].Markdown != "# Title\n" {
		t.Fatalf("segment 0 = %+v, want markdown %q", segs[0], "# Title\n")
	}
	list := segs[1].List
	if list == nil || len(list.Items) != 2 {
		t.Fatalf("segment 1 = %+v, want list with 2 items", segs[1])
	}
	if list.Items[0].Term != "Term 1" || len(list.Items[0].Definitions) != 2 {
		t.Fatalf("item 0 = %+v", list.Items[0])
	}
	if list.Items[1].Term != "Term 2" || list.Items[1].Definitions[0] != "def c" {
		t.Fatalf("item 1 = %+v", list.Items[1])
	}
	if segs[2].IsList() || segs[2].Markdown != "closing paragraph" {
		t.Fatalf("segment 2 = %+v", segs[2])
	}
}

func TestParseSegmentsToleratesBlankBetweenDefinitions(t *testing.T) {
	src := "Term\n: first\n\n: second"
	segs := ParseSegments(src)
	if len(segs) != 1 || !segs[0].IsList() {
		t.Fatalf("segments = %+v, want one list segment", segs)
	}
	defs := segs[0].List.Items[0].Definitions
	if len(defs) != 2 || defs[0] != "first" || defs[1] != "second" {
		t.Fatalf("definitions = %q", defs)
	}
}

func TestParseSegmentsAgreesWithPreCheck(t *testing.T) {
	inputs := []string{
		"no lists here\n\njust prose",
		"Term\n: def",
		"- a\n- b",
		"a\nb\nc\n: not preceded by term? b is a term\n",
	}
	for _, in := range inputs {
		var hasList bool
		for _, s := range ParseSegments(in) {
			if s.IsList() {
				hasList = true
			}
		}
		if got := HasDefinitionLists(in); got != hasList {
			t.Errorf("HasDefinitionLists(%q) = %v, segmenter says %v", in, got, hasList)
		}
	}
}

func TestFormat(t *testing.T) {
	list := &List{Items: []Item{
		{Term: "Apple", Definitions: []string{"a fruit", "a company"}},
		{Term: "Go", Definitions: []string{"a language"}},
	}}
	want := "Apple\n: a fruit\n: a company\n\nGo\n: a language"
	if got := Format(list); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}
