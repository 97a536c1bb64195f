package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/phyten/aliasfix/internal/engine"
)

var checkResult = engine.Result{
	Mode:  "check",
	Files: 2,
	Items: []engine.Item{
		{File: "src/A.cs", Alias: "int", Canonical: "Int32", Row: 3, Column: 9},
		{File: "src/B.cs", Alias: "string", Canonical: "String", Row: 1, Column: 12, InEnum: true},
	},
	Total: 2,
	Errors: []engine.ItemError{
		{File: "big.cs", Stage: "size", Message: "file exceeds 10 bytes"},
	},
	ErrorCount: 1,
}

var fixResult = engine.Result{
	Mode:  "fix",
	Files: 2,
	Changes: []engine.ChangeItem{
		{File: "src/A.cs", Row: 3, Old: "\tint x = 1; // a, b", New: "\tInt32 x = 1; // a, b"},
		{File: "src/C.cs", Row: 7, Old: `var s = "q|r"; string t;`, New: `var s = "q|r"; String t;`},
	},
	Changed: []string{"src/A.cs", "src/C.cs"},
	Total:   2,
}

func TestWriteCSV(t *testing.T) {
	cases := []struct {
		name string
		res  engine.Result
		want string
	}{
		{
			name: "check",
			res:  checkResult,
			want: "file,row,column,alias,canonical,in_enum\r\n" +
				"src/A.cs,3,9,int,Int32,false\r\n" +
				"src/B.cs,1,12,string,String,true\r\n",
		},
		{
			name: "fix",
			res:  fixResult,
			want: "file,row,old,new\r\n" +
				"src/A.cs,3,\"\tint x = 1; // a, b\",\"\tInt32 x = 1; // a, b\"\r\n" +
				"src/C.cs,7,\"var s = \"\"q|r\"\"; string t;\",\"var s = \"\"q|r\"\"; String t;\"\r\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCSV(&buf, tc.res); err != nil {
				t.Fatalf("WriteCSV failed: %v", err)
			}
			if diff := diffStrings(tc.want, buf.String()); diff != "" {
				t.Fatalf("output mismatch:\n%s", diff)
			}
		})
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, checkResult); err != nil {
		t.Fatalf("WriteNDJSON failed: %v", err)
	}
	want := `{"file":"src/A.cs","alias":"int","canonical":"Int32","row":3,"column":9}` + "\n" +
		`{"file":"src/B.cs","alias":"string","canonical":"String","row":1,"column":12,"in_enum":true}` + "\n" +
		`{"error":{"file":"big.cs","line":0,"stage":"size","message":"file exceeds 10 bytes"}}` + "\n"
	if diff := diffStrings(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch:\n%s", diff)
	}
}

func TestWriteNDJSONChanges(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, fixResult); err != nil {
		t.Fatalf("WriteNDJSON failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(fixResult.Changes) {
		t.Fatalf("expected %d lines, got %d", len(fixResult.Changes), len(lines))
	}
	for i, line := range lines {
		var ch engine.ChangeItem
		if err := json.Unmarshal([]byte(line), &ch); err != nil {
			t.Fatalf("failed to decode line %d: %v", i, err)
		}
		if ch != fixResult.Changes[i] {
			t.Fatalf("line %d decoded to %+v", i, ch)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, fixResult); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	var got engine.Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Mode != "fix" || len(got.Changes) != 2 || len(got.Changed) != 2 {
		t.Fatalf("unexpected decoded result: %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  \"mode\": \"fix\"") {
		t.Fatalf("expected indented output, got %s", buf.String())
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, fixResult); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	want := "| file | row | old | new |\n" +
		"| --- | --- | --- | --- |\n" +
		"| src/A.cs | 3 | int x = 1; // a, b | Int32 x = 1; // a, b |\n" +
		"| src/C.cs | 7 | var s = \"q\\|r\"; string t; | var s = \"q\\|r\"; String t; |\n"
	if diff := diffStrings(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch:\n%s", diff)
	}
}

func TestWriteMarkdownTableTruncatesLongLines(t *testing.T) {
	res := engine.Result{Mode: "fix", Changes: []engine.ChangeItem{
		{File: "A.cs", Row: 1, Old: strings.Repeat("a", 100), New: "b"},
	}}
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, res); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	if !strings.Contains(buf.String(), "| "+strings.Repeat("a", CellWidth-1)+"… | b |") {
		t.Fatalf("expected truncated cell, got %s", buf.String())
	}
}

func TestHeaders(t *testing.T) {
	h := Headers("check")
	h[0] = "mutated"
	if Headers("check")[0] != "file" {
		t.Fatal("Headers must return a copy")
	}
	if len(Headers("fix")) != 4 {
		t.Fatalf("unexpected fix headers: %v", Headers("fix"))
	}
}

func diffStrings(want, got string) string {
	if want == got {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("want:\n")
	buf.WriteString(want)
	if !strings.HasSuffix(want, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("got:\n")
	buf.WriteString(got)
	return buf.String()
}
