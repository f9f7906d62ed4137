package testutil

import (
	"fmt"
	"sync"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
)

// Event is one captured reporter call
type Event struct {
	Kind    string
	Message string
}

// Recorder implements types.Reporter and keeps every call in order
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(kind, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Kind: kind, Message: msg})
}

func (r *Recorder) Info(msg string)    { r.add("info", msg) }
func (r *Recorder) Success(msg string) { r.add("success", msg) }
func (r *Recorder) Warn(msg string)    { r.add("warn", msg) }
func (r *Recorder) Error(msg string)   { r.add("error", msg) }

func (r *Recorder) LinkCreated(name string) { r.add("created", name) }
func (r *Recorder) LinkRemoved(name string) { r.add("removed", name) }
func (r *Recorder) LinkSkipped(name, reason string) {
	r.add("skipped", fmt.Sprintf("%s: %s", name, reason))
}

// Messages returns the messages of one kind
func (r *Recorder) Messages(kind string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e.Message)
		}
	}
	return out
}

var _ types.Reporter = (*Recorder)(nil)

// StaticPrompter answers every question with the same value and records the
// questions asked.
type StaticPrompter struct {
	Answer    bool
	Err       error
	Questions []string
}

// Confirm implements types.Prompter
func (p *StaticPrompter) Confirm(question string, _ bool) (bool, error) {
	p.Questions = append(p.Questions, question)
	return p.Answer, p.Err
}

var _ types.Prompter = (*StaticPrompter)(nil)
