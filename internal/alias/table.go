package alias

// Entry は組み込み型エイリアスと正式な型名の組です。
type Entry struct {
	Alias     string
	Canonical string
}

// Table はエイリアスから正式名への固定の対応表です。生成後は変更されません。
type Table struct {
	entries []Entry
	index   map[string]string
	maxLen  int
}

var defaultEntries = []Entry{
	{Alias: "bool", Canonical: "Boolean"},
	{Alias: "byte", Canonical: "Byte"},
	{Alias: "sbyte", Canonical: "SByte"},
	{Alias: "char", Canonical: "Char"},
	{Alias: "decimal", Canonical: "Decimal"},
	{Alias: "double", Canonical: "Double"},
	{Alias: "float", Canonical: "Single"},
	{Alias: "int", Canonical: "Int32"},
	{Alias: "uint", Canonical: "UInt32"},
	{Alias: "long", Canonical: "Int64"},
	{Alias: "ulong", Canonical: "Int64"},
	{Alias: "object", Canonical: "Object"},
	{Alias: "short", Canonical: "Int16"},
	{Alias: "ushort", Canonical: "UInt16"},
	{Alias: "string", Canonical: "String"},
}

// Default returns the C# alias table.
func Default() Table {
	return New(defaultEntries...)
}

// New builds a table from entries. Later duplicates of an alias are ignored.
func New(entries ...Entry) Table {
	t := Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.Alias == "" {
			continue
		}
		if _, ok := t.index[e.Alias]; ok {
			continue
		}
		t.index[e.Alias] = e.Canonical
		t.entries = append(t.entries, e)
		if len(e.Alias) > t.maxLen {
			t.maxLen = len(e.Alias)
		}
	}
	return t
}

// Lookup reports the canonical name for an exact alias spelling.
func (t Table) Lookup(word string) (string, bool) {
	if len(word) == 0 || len(word) > t.maxLen {
		return "", false
	}
	canon, ok := t.index[word]
	return canon, ok
}

// Entries returns a copy of the table in declaration order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t Table) Len() int { return len(t.entries) }

// MaxLen is the length of the longest alias spelling.
func (t Table) MaxLen() int { return t.maxLen }
