package models

// QuestionType distinguishes the two kinds of diagnostic questions.
type QuestionType string

const (
	QuestionBoolean QuestionType = "boolean"
	QuestionSelect  QuestionType = "select"
)

// DiagnosticQuestion is one entry of the static per-service question
// catalog. Urgent marks boolean questions whose "yes" answer triggers the
// urgency surcharge and the call-now warning.
type DiagnosticQuestion struct {
	ID      string       `json:"id"`
	Label   string       `json:"label"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
	Urgent  bool         `json:"urgent"`
}

// Answer is the tagged value recorded for a diagnostic question: exactly one
// of Bool or Choice is set, matching the question's type.
type Answer struct {
	Bool   *bool   `json:"bool,omitempty"`
	Choice *string `json:"choice,omitempty"`
}

// BoolAnswer builds a boolean answer.
func BoolAnswer(v bool) Answer {
	return Answer{Bool: &v}
}

// ChoiceAnswer builds a single-select answer.
func ChoiceAnswer(v string) Answer {
	return Answer{Choice: &v}
}

// IsYes reports whether the answer is an affirmative boolean.
func (a Answer) IsYes() bool {
	return a.Bool != nil && *a.Bool
}
