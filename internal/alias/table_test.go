package alias

import "testing"

func TestDefaultLookup(t *testing.T) {
	tbl := Default()
	cases := map[string]string{
		"bool":   "Boolean",
		"float":  "Single",
		"int":    "Int32",
		"uint":   "UInt32",
		"ulong":  "Int64",
		"string": "String",
	}
	for in, want := range cases {
		got, ok := tbl.Lookup(in)
		if !ok || got != want {
			t.Fatalf("Lookup(%q)=%q,%v want %q", in, got, ok, want)
		}
	}
	for _, miss := range []string{"", "Int", "integer", "in", "String", "var", "enum"} {
		if _, ok := tbl.Lookup(miss); ok {
			t.Fatalf("Lookup(%q) should miss", miss)
		}
	}
	if tbl.Len() != 15 {
		t.Fatalf("expected 15 entries, got %d", tbl.Len())
	}
	if tbl.MaxLen() != len("decimal") {
		t.Fatalf("unexpected max length: %d", tbl.MaxLen())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	tbl := Default()
	entries := tbl.Entries()
	entries[0].Canonical = "Mutated"
	if got, _ := tbl.Lookup(entries[0].Alias); got == "Mutated" {
		t.Fatal("table must not be mutable through Entries")
	}
	if tbl.Entries()[0].Canonical == "Mutated" {
		t.Fatal("entries slice is shared with the table")
	}
}

func TestNewSkipsDuplicatesAndEmpty(t *testing.T) {
	tbl := New(Entry{Alias: "x", Canonical: "X1"}, Entry{Alias: "x", Canonical: "X2"}, Entry{Canonical: "Y"})
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", tbl.Len())
	}
	if got, _ := tbl.Lookup("x"); got != "X1" {
		t.Fatalf("first spelling should win, got %q", got)
	}
	var zero Table
	if _, ok := zero.Lookup("int"); ok {
		t.Fatal("zero table should match nothing")
	}
}
