package accessor

import "strings"

// MemoryDocument is a small in-memory Accessor, the reference host used by
// cmd/edlex and by every lexer test. It precomputes line start offsets on
// construction and keeps parallel per-line state/fold slices.
type MemoryDocument struct {
	text        []byte
	styles      []int
	lineStarts  []int
	lineStates  []int
	foldLevels  []int
	keywords    map[int]KeywordSet
	properties  map[string]int
	pendingFrom int
	flushed     bool
}

// NewMemoryDocument builds a document over text with keyword lists and
// dialect/fold properties supplied up front, mirroring how a host editor
// wires a lexer invocation (spec.md §2 data flow).
func NewMemoryDocument(text []byte, keywords map[int]KeywordSet, properties map[string]int) *MemoryDocument {
	d := &MemoryDocument{
		text:       append([]byte(nil), text...),
		styles:     make([]int, len(text)),
		keywords:   keywords,
		properties: properties,
	}
	d.reindexLines()
	d.lineStates = make([]int, len(d.lineStarts))
	d.foldLevels = make([]int, len(d.lineStarts))
	return d
}

func (d *MemoryDocument) reindexLines() {
	d.lineStarts = d.lineStarts[:0]
	d.lineStarts = append(d.lineStarts, 0)
	for i, b := range d.text {
		if b == '\n' {
			d.lineStarts = append(d.lineStarts, i+1)
		}
	}
}

func (d *MemoryDocument) Len() int { return len(d.text) }

func (d *MemoryDocument) ByteAt(i int) byte {
	if i < 0 || i >= len(d.text) {
		return 0
	}
	return d.text[i]
}

func (d *MemoryDocument) StyleAt(i int) int {
	if i < 0 || i >= len(d.styles) {
		return 0
	}
	return d.styles[i]
}

func (d *MemoryDocument) SetStyleRange(begin, end int, style int) {
	if begin < 0 {
		begin = 0
	}
	if end > len(d.styles) {
		end = len(d.styles)
	}
	for i := begin; i < end; i++ {
		d.styles[i] = style
	}
}

func (d *MemoryDocument) LineOf(i int) int {
	if i < 0 {
		return 0
	}
	// Binary search over lineStarts for the last start <= i.
	lo, hi := 0, len(d.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.lineStarts[mid] <= i {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (d *MemoryDocument) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lineStarts) {
		return len(d.text)
	}
	return d.lineStarts[line]
}

// LineEnd returns the offset just past the line's content, excluding the
// trailing newline byte (or Len() for the last line).
func (d *MemoryDocument) LineEnd(line int) int {
	start := d.LineStart(line)
	idx := bytesIndexByte(d.text[start:], '\n')
	if idx < 0 {
		return len(d.text)
	}
	return start + idx
}

func bytesIndexByte(b []byte, c byte) int {
	return strings.IndexByte(string(b), c)
}

func (d *MemoryDocument) LineCount() int { return len(d.lineStarts) }

func (d *MemoryDocument) LineState(line int) int {
	if line < 0 || line >= len(d.lineStates) {
		return 0
	}
	return d.lineStates[line]
}

func (d *MemoryDocument) SetLineState(line int, state int) {
	d.growLineSlices(line)
	d.lineStates[line] = state
}

func (d *MemoryDocument) FoldLevel(line int) int {
	if line < 0 || line >= len(d.foldLevels) {
		return 0
	}
	return d.foldLevels[line]
}

func (d *MemoryDocument) SetFoldLevel(line int, level int) {
	d.growLineSlices(line)
	d.foldLevels[line] = level
}

func (d *MemoryDocument) growLineSlices(line int) {
	for len(d.lineStates) <= line {
		d.lineStates = append(d.lineStates, 0)
	}
	for len(d.foldLevels) <= line {
		d.foldLevels = append(d.foldLevels, 0)
	}
}

func (d *MemoryDocument) KeywordList(index int) KeywordSet {
	return d.keywords[index]
}

func (d *MemoryDocument) PropertyInt(name string, def int) int {
	if v, ok := d.properties[name]; ok {
		return v
	}
	return def
}

func (d *MemoryDocument) Flush() error {
	d.flushed = true
	return nil
}

// Flushed reports whether Flush has been called since construction - tests
// use this to confirm a lexer pass commits its writes.
func (d *MemoryDocument) Flushed() bool { return d.flushed }

// Text returns the underlying document bytes (read-only use by callers
// such as the fingerprinting cache).
func (d *MemoryDocument) Text() []byte { return d.text }

// Styles returns a copy of the per-byte style array, for assertions.
func (d *MemoryDocument) Styles() []int {
	out := make([]int, len(d.styles))
	copy(out, d.styles)
	return out
}
