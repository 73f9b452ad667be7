package record

import "strings"

// DefaultDelimiter separates fields of a training line.
const DefaultDelimiter = ','

// FieldScanner yields the delimited fields of a single line one at a time.
// There is no quoting or escaping. A line that is exhausted yields nothing
// more, so "a," yields only "a" and an empty line yields no field at all.
type FieldScanner struct {
	line  string
	delim byte
	pos   int
}

func Fields(line string, delim byte) *FieldScanner {
	return &FieldScanner{line: line, delim: delim}
}

// Next returns the next field and true, or "" and false when the line has
// no characters left.
func (f *FieldScanner) Next() (string, bool) {
	if f.pos >= len(f.line) {
		return "", false
	}
	rest := f.line[f.pos:]
	idx := strings.IndexByte(rest, f.delim)
	if idx < 0 {
		f.pos = len(f.line)
		return rest, true
	}
	f.pos += idx + 1
	return rest[:idx], true
}
