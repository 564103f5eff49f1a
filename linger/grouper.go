package linger

import (
	"fmt"
	"strings"
)

// lineScanner yields the source one whitespace-trimmed line at a time,
// tracking 1-based line numbers for diagnostics.
type lineScanner struct {
	src  []byte
	pos  int
	line int
}

func newLineScanner(src []byte) *lineScanner {
	return &lineScanner{src: src}
}

// next returns the next trimmed line and its line number. ok is false once
// the source is exhausted.
func (s *lineScanner) next() (text string, line int, ok bool) {
	if s.pos >= len(s.src) {
		return "", 0, false
	}
	s.line++
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	raw := string(s.src[start:s.pos])
	if s.pos < len(s.src) {
		s.pos++ // consume '\n'
	}
	return strings.TrimSpace(raw), s.line, true
}

// Group is one stimulus group: a spec line and every following line up to
// the next spec line, blank line, or end of input.
type Group struct {
	Lines []string
	Line  int // file line number of Lines[0]
}

// GroupScanner splits the input into stimulus groups, lazily, one group per
// Next call. Blank lines separate blocks; a run of blanks, or blanks at the
// start or end of the input, yields no group. Within a block, each
// spec-prefixed line opens a new group. The first line of every block must
// be a spec line.
type GroupScanner struct {
	lines   *lineScanner
	cur     []string
	curLine int
}

// NewGroupScanner creates a GroupScanner over the given source bytes.
func NewGroupScanner(src []byte) *GroupScanner {
	return &GroupScanner{lines: newLineScanner(src)}
}

// Next returns the next stimulus group, or nil once the input is exhausted.
// Returns a *GroupError if a block opens with a non-spec line.
func (g *GroupScanner) Next() (*Group, error) {
	for {
		text, line, ok := g.lines.next()
		if !ok {
			return g.flush(), nil
		}
		switch {
		case text == "":
			// Blank line: close the current block. Runs of blanks
			// between blocks produce nothing.
			if grp := g.flush(); grp != nil {
				return grp, nil
			}
		case strings.HasPrefix(text, SpecPrefix):
			grp := g.flush()
			g.cur = []string{text}
			g.curLine = line
			if grp != nil {
				return grp, nil
			}
		default:
			if len(g.cur) == 0 {
				return nil, &GroupError{ParseError{
					Message: fmt.Sprintf("block must start with a %q spec line, got %q", SpecPrefix, text),
					Line:    line,
				}}
			}
			g.cur = append(g.cur, text)
		}
	}
}

// flush returns the in-progress group and resets it, or nil if no group is
// open.
func (g *GroupScanner) flush() *Group {
	if len(g.cur) == 0 {
		return nil
	}
	grp := &Group{Lines: g.cur, Line: g.curLine}
	g.cur = nil
	g.curLine = 0
	return grp
}
