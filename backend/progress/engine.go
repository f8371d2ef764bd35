package progress

import (
	"iter"
	"math"

	"coursetracker/backend/models"
)

// CompletedSignal is the wire value that means "mark the current topic complete".
const CompletedSignal = "Completed"

// Step is the result of NextTopic. Malformed is set when the current topic
// could not be located in the sequence.
type Step struct {
	Next      string `json:"next,omitempty"`
	HasNext   bool   `json:"hasNext"`
	IsLast    bool   `json:"isLast"`
	Malformed bool   `json:"-"`
}

// NextTopic locates current in seq and returns the topic that follows it.
// An empty current means nothing has been attempted yet.
func NextTopic(seq []string, current string) Step {
	_, step := next(seq, current)
	return step
}

func next(seq []string, current string) (int, Step) {
	n := len(seq)
	if n == 0 {
		return -1, Step{}
	}
	if current == "" {
		return 0, Step{Next: seq[0], HasNext: true, IsLast: n == 1}
	}
	i := indexOf(seq, current)
	switch {
	case i < 0:
		return -1, Step{Malformed: true}
	case i == n-1:
		return -1, Step{IsLast: true}
	default:
		return i + 1, Step{Next: seq[i+1], HasNext: true, IsLast: i+1 == n-1}
	}
}

func indexOf(seq []string, title string) int {
	for i, t := range seq {
		if t == title {
			return i
		}
	}
	return -1
}

type SignalKind int

const (
	SignalMarkComplete SignalKind = iota
	SignalOverride
)

// Signal drives Advance: either step forward once, or jump to Topic.
type Signal struct {
	Kind  SignalKind
	Topic string
}

func MarkComplete() Signal { return Signal{Kind: SignalMarkComplete} }

func Override(topic string) Signal { return Signal{Kind: SignalOverride, Topic: topic} }

// ParseSignal maps the wire value used by the update endpoints.
func ParseSignal(v string) Signal {
	if v == CompletedSignal {
		return MarkComplete()
	}
	return Override(v)
}

type Outcome string

const (
	OutcomeAdvanced   Outcome = "advanced"
	OutcomeCompleted  Outcome = "completed"
	OutcomeOverridden Outcome = "overridden"
	OutcomeStalled    Outcome = "stalled"
)

// Transition is what Advance decided. On OutcomeCompleted the record is
// unchanged and the caller must retire it from the owner's ongoing set.
type Transition struct {
	Record    models.Enrollment
	Outcome   Outcome
	Malformed bool
}

// Advance applies sig to rec. It never touches rec's backing arrays.
func Advance(rec models.Enrollment, sig Signal) Transition {
	if sig.Kind == SignalOverride {
		// Any title is accepted, including ones outside the snapshot.
		rec.CurrentTopic = sig.Topic
		return Transition{Record: rec, Outcome: OutcomeOverridden}
	}

	seq := rec.Snapshot()
	idx, step := next(seq, rec.CurrentTopic)
	switch {
	case step.HasNext:
		rec.CurrentTopic = step.Next
		rec.ProgressLevel = Percent(idx+1, len(seq))
		rec.Status = models.EnrollmentInProgress
		return Transition{Record: rec, Outcome: OutcomeAdvanced}
	case step.IsLast:
		return Transition{Record: rec, Outcome: OutcomeCompleted}
	default:
		return Transition{Record: rec, Outcome: OutcomeStalled, Malformed: step.Malformed}
	}
}

type TopicStatus string

const (
	TopicCompleted  TopicStatus = "Completed"
	TopicInProgress TopicStatus = "In Progress"
	TopicLocked     TopicStatus = "Locked"
)

type TopicView struct {
	Title  string      `json:"title"`
	Status TopicStatus `json:"status"`
}

// ClassifyTopics labels each topic relative to current. The returned
// sequence can be ranged over any number of times.
func ClassifyTopics(allTopics []string, current string) iter.Seq[TopicView] {
	c := -1
	if current != "" {
		c = indexOf(allTopics, current)
	}
	return func(yield func(TopicView) bool) {
		for j, title := range allTopics {
			status := TopicLocked
			switch {
			case c < 0:
			case j == c:
				status = TopicInProgress
			case j < c:
				status = TopicCompleted
			}
			if !yield(TopicView{Title: title, Status: status}) {
				return
			}
		}
	}
}

// Percent is round(100 * part / total), 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// OverallProgressPercent is the share of completed courses in the catalog.
func OverallProgressPercent(completed, total int) int {
	return Percent(completed, total)
}
