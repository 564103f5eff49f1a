package linger

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// SpecPrefix opens a spec line carrying experiment/item/condition metadata.
	SpecPrefix = "# "
	// QuestionPrefix opens a comprehension-question line.
	QuestionPrefix = "? "
)

// Parse returns a lazy sequence over the stimuli in src. Grammar errors
// surface from StimSeq.Next as the parse advances.
func Parse(src []byte) *StimSeq {
	return &StimSeq{groups: NewGroupScanner(src)}
}

// StimSeq lazily parses stimulus groups into Stims, one per Next call.
type StimSeq struct {
	groups *GroupScanner
}

// Next returns the next parsed stimulus, or nil once the input is
// exhausted. Returns a *GroupError, *SpecError, or *QuestionError on
// malformed input.
func (s *StimSeq) Next() (*Stim, error) {
	grp, err := s.groups.Next()
	if err != nil || grp == nil {
		return nil, err
	}
	return parseStim(grp)
}

// parseStim assembles one group into a Stim: line 1 is the spec, line 2 the
// sentence verbatim, remaining lines become the lazy question sequence.
func parseStim(g *Group) (*Stim, error) {
	if len(g.Lines) < 2 {
		return nil, &GroupError{ParseError{
			Message: "stimulus group needs a spec line and a sentence line",
			Line:    g.Line,
		}}
	}
	spec, err := ParseSpec(g.Lines[0], g.Line)
	if err != nil {
		return nil, err
	}
	return &Stim{
		Spec:      spec,
		Sentence:  g.Lines[1],
		Questions: &QuestionSeq{lines: g.Lines[2:], line: g.Line + 2},
	}, nil
}

// ParseSpec parses one spec line: the "# " prefix followed by
// whitespace-separated tokens `experiment item condition rest...`.
func ParseSpec(line string, lineNo int) (Spec, error) {
	if !strings.HasPrefix(line, SpecPrefix) {
		return Spec{}, &SpecError{ParseError{
			Message: fmt.Sprintf("spec line must start with %q, got %q", SpecPrefix, line),
			Line:    lineNo,
		}}
	}
	fields := strings.Fields(line[len(SpecPrefix):])
	if len(fields) < 3 {
		return Spec{}, &SpecError{ParseError{
			Message: fmt.Sprintf("spec line needs experiment, item and condition, got %d token(s)", len(fields)),
			Line:    lineNo,
		}}
	}
	item, err := strconv.Atoi(fields[1])
	if err != nil {
		return Spec{}, &SpecError{ParseError{
			Message: fmt.Sprintf("invalid item number %q: %v", fields[1], err),
			Line:    lineNo,
			Cause:   err,
		}}
	}
	if item < 0 {
		return Spec{}, &SpecError{ParseError{
			Message: fmt.Sprintf("item number must be non-negative, got %d", item),
			Line:    lineNo,
		}}
	}
	return Spec{
		Experiment: fields[0],
		Condition:  fields[2],
		Item:       item,
		Rest:       fields[3:],
	}, nil
}

// ParseQuestion parses one question line: the "? " prefix, the question
// text, and a trailing yes/no answer token split off at the last space.
// Internal whitespace in the question text is preserved.
func ParseQuestion(line string, lineNo int) (Question, error) {
	if !strings.HasPrefix(line, QuestionPrefix) {
		return Question{}, &QuestionError{ParseError{
			Message: fmt.Sprintf("question line must start with %q, got %q", QuestionPrefix, line),
			Line:    lineNo,
		}}
	}
	body := line[len(QuestionPrefix):]
	i := strings.LastIndexByte(body, ' ')
	if i < 0 {
		return Question{}, &QuestionError{ParseError{
			Message: fmt.Sprintf("question line needs a trailing yes/no answer: %q", body),
			Line:    lineNo,
		}}
	}
	text, answer := body[:i], body[i+1:]
	var answers [2]string
	switch strings.ToLower(answer) {
	case "y", "yes":
		answers = [2]string{"Yes", "No"}
	case "n", "no":
		answers = [2]string{"No", "Yes"}
	default:
		return Question{}, &QuestionError{ParseError{
			Message: fmt.Sprintf("unrecognized answer %q in question: %q", answer, body),
			Line:    lineNo,
		}}
	}
	return Question{Question: text, Answers: answers}, nil
}
