package parser

import (
	"sort"
	"unicode/utf8"

	"github.com/teranos/fakegen/tsdecl/ast"
)

// lineIndex maps byte offsets of a source to 1-based lines and rune columns
type lineIndex struct {
	src    string
	starts []int
}

func newLineIndex(src string) lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{src: src, starts: starts}
}

// position converts a byte offset; offsets past the end clamp to it
func (li lineIndex) position(offset int) ast.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.src) {
		offset = len(li.src)
	}
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset })
	start := li.starts[line-1]
	return ast.Position{
		Line:      line,
		Character: utf8.RuneCountInString(li.src[start:offset]),
		Offset:    offset,
	}
}

// lineAt returns the full source line containing offset, without its newline
func lineAt(source string, offset int) string {
	if offset > len(source) {
		offset = len(source)
	}
	start := offset
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(source) && source[end] != '\n' {
		end++
	}
	return source[start:end]
}
