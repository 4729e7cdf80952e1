package accessor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aledsdavies/edlex/pkg/accessor"
)

func TestPackUnpackFoldLevelRoundTrip(t *testing.T) {
	cases := []struct {
		level          int
		header, blank  bool
	}{
		{0, false, false},
		{1, true, false},
		{42, false, true},
		{accessor.FoldLevelMask, true, true},
	}
	for _, c := range cases {
		packed := accessor.PackFoldLevel(c.level, c.header, c.blank)
		level, header, blank := accessor.UnpackFoldLevel(packed)
		assert.Equal(t, c.level, level)
		assert.Equal(t, c.header, header)
		assert.Equal(t, c.blank, blank)
	}
}

func TestMemoryDocumentLineIndexing(t *testing.T) {
	doc := accessor.NewMemoryDocument([]byte("ab\ncd\nef"), nil, nil)
	assert.Equal(t, 3, doc.LineCount())
	assert.Equal(t, 0, doc.LineOf(0))
	assert.Equal(t, 0, doc.LineOf(2))
	assert.Equal(t, 1, doc.LineOf(3))
	assert.Equal(t, 2, doc.LineOf(7))
	assert.Equal(t, 0, doc.LineStart(0))
	assert.Equal(t, 3, doc.LineStart(1))
	assert.Equal(t, 6, doc.LineStart(2))
	// Past the last line, LineStart clamps to document length - the Resume
	// Finder relies on this to bound its backward walk.
	assert.Equal(t, doc.Len(), doc.LineStart(99))
}

func TestMemoryDocumentStyleRangeAndByteAt(t *testing.T) {
	doc := accessor.NewMemoryDocument([]byte("hello"), nil, nil)
	doc.SetStyleRange(1, 3, 7)
	assert.Equal(t, 0, doc.StyleAt(0))
	assert.Equal(t, 7, doc.StyleAt(1))
	assert.Equal(t, 7, doc.StyleAt(2))
	assert.Equal(t, 0, doc.StyleAt(3))
	assert.Equal(t, byte('h'), doc.ByteAt(0))
	assert.Equal(t, byte(0), doc.ByteAt(99))
}

func TestMemoryDocumentPropertyIntDefault(t *testing.T) {
	doc := accessor.NewMemoryDocument([]byte(""), nil, map[string]int{"fold.compact": 1})
	assert.Equal(t, 1, doc.PropertyInt("fold.compact", 0))
	assert.Equal(t, 5, doc.PropertyInt("fold.base", 5))
}

func TestMemoryDocumentLineStateGrowsOnDemand(t *testing.T) {
	doc := accessor.NewMemoryDocument([]byte("a\nb\nc"), nil, nil)
	doc.SetLineState(4, 9) // the document has lines 0-2 only
	assert.Equal(t, 9, doc.LineState(4))
	assert.Equal(t, 0, doc.LineState(1))
}

func TestMemoryDocumentFlush(t *testing.T) {
	doc := accessor.NewMemoryDocument([]byte("x"), nil, nil)
	assert.False(t, doc.Flushed())
	assert.NoError(t, doc.Flush())
	assert.True(t, doc.Flushed())
}
