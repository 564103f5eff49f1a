package linger

import "strings"

// FillerPrefix marks experiments whose items are fillers. Fillers carry no
// meaningful item number and render as a bare condition label.
const FillerPrefix = "filler"

// Spec identifies one trial's experimental cell: which experiment and
// condition the following sentence belongs to, and its item number.
type Spec struct {
	Experiment string
	Condition  string
	Item       int      // non-negative
	Rest       []string // unconsumed spec tokens, preserved for forward compatibility
}

// IsFiller reports whether the spec names a filler experiment.
func (s Spec) IsFiller() bool {
	return strings.HasPrefix(s.Experiment, FillerPrefix)
}

// ConditionLabel returns the underscore-joined experiment_condition label
// used in the output's shuffle directive and spec fragments.
func (s Spec) ConditionLabel() string {
	return s.Experiment + "_" + s.Condition
}

// Question is one comprehension question attached to a stimulus. Answers
// always holds the pair Yes/No, ordered so the authored correct answer
// comes first; the runner presents answers in array order and scores by
// position.
type Question struct {
	Question string
	Answers  [2]string
}

// Stim is one experimental trial: the sentence to display plus its
// comprehension questions. Questions is lazy and single-pass; it is
// consumed exactly once during rendering.
type Stim struct {
	Spec      Spec
	Sentence  string
	Questions *QuestionSeq
}

// QuestionSeq lazily parses the question lines attached to a stimulus.
// Each Next call parses one line; the sequence cannot be restarted.
type QuestionSeq struct {
	lines []string
	line  int // file line number of lines[0]
	pos   int
}

// Next returns the next parsed question, or nil when the sequence is
// exhausted. A malformed question line aborts with a *QuestionError.
func (q *QuestionSeq) Next() (*Question, error) {
	if q.pos >= len(q.lines) {
		return nil, nil
	}
	parsed, err := ParseQuestion(q.lines[q.pos], q.line+q.pos)
	if err != nil {
		return nil, err
	}
	q.pos++
	return &parsed, nil
}
