// Package ibex renders parsed linger stimuli into the JS configuration
// fragment consumed by the ibex experiment runner.
package ibex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kristina2018/linger2ibex/linger"
)

// Document is one rendered experiment configuration fragment.
type Document struct {
	Text       string   // the full JS fragment, ending in a newline
	StimCount  int      // number of stimulus fragments rendered
	Conditions []string // deduplicated condition labels, sorted
}

// Write consumes the stimulus sequence and renders the full document:
// scaffold, rshuffle condition set, and one fragment per stimulus in parse
// order. The first parse or render error aborts with no partial output.
func Write(stimType string, stims *linger.StimSeq) (*Document, error) {
	var fragments []string
	seen := make(map[string]bool)
	var conditions []string
	for {
		stim, err := stims.Next()
		if err != nil {
			return nil, err
		}
		if stim == nil {
			break
		}
		frag, err := writeStim(stimType, stim)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, frag)
		if label := stim.Spec.ConditionLabel(); !seen[label] {
			seen[label] = true
			conditions = append(conditions, label)
		}
	}
	// The condition list has set semantics; sort it so output is stable
	// across runs.
	sort.Strings(conditions)
	quoted := make([]string, len(conditions))
	for i, c := range conditions {
		quoted[i] = enquote(c)
	}
	text := fmt.Sprintf(documentTemplate,
		strings.Join(quoted, fragmentJoiner),
		strings.Join(fragments, ","))
	return &Document{
		Text:       text,
		StimCount:  len(fragments),
		Conditions: conditions,
	}, nil
}

// writeStim renders one stimulus fragment, draining its lazy question
// sequence.
func writeStim(stimType string, stim *linger.Stim) (string, error) {
	questions, err := writeQuestions(stim.Questions)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(stimTemplate, writeSpec(stim.Spec), stimType, stim.Sentence, questions), nil
}

// writeSpec renders the spec fragment. Fillers have no meaningful item
// number and render as a bare quoted condition label.
func writeSpec(spec linger.Spec) string {
	if spec.IsFiller() {
		return enquote(spec.ConditionLabel())
	}
	return fmt.Sprintf(specTemplate, spec.ConditionLabel(), spec.Item)
}

func writeQuestions(qs *linger.QuestionSeq) (string, error) {
	var parts []string
	for {
		q, err := qs.Next()
		if err != nil {
			return "", err
		}
		if q == nil {
			break
		}
		parts = append(parts, writeQuestion(q))
	}
	return strings.Join(parts, fragmentJoiner), nil
}

func writeQuestion(q *linger.Question) string {
	return fmt.Sprintf(questionTemplate, q.Question, writeAnswers(q.Answers))
}

func writeAnswers(answers [2]string) string {
	return enquote(answers[0]) + fragmentJoiner + enquote(answers[1])
}

func enquote(s string) string {
	return `"` + s + `"`
}
