// Package builder serves the resume builder: one workspace per session, rendered section by section.
package builder

import (
	"sync"

	"careerhub/internal/preview"
	"careerhub/internal/resume"
	"careerhub/internal/shared/metrics"
	"careerhub/internal/view"
)

// Review is the latest AI review shown beside the builder.
type Review struct {
	Suggestions []string `json:"suggestions"`
	Fallback    bool     `json:"fallback"`
}

// Snapshot is everything a client needs to draw the builder.
type Snapshot struct {
	Version uint64          `json:"version"`
	Section Section         `json:"section"`
	Form    *view.Node      `json:"form"`
	Actions []string        `json:"actions"`
	Preview preview.Preview `json:"preview"`
	Review  *Review         `json:"review,omitempty"`
}

// Workspace owns one session's document and the view derived from it.
// All methods are safe for concurrent use; edits are applied one at a time.
type Workspace struct {
	mu      sync.Mutex
	editor  *resume.Editor
	section Section
	form    *view.Node
	actions *view.Registry
	preview preview.Preview
	review  *Review
	version uint64

	subs    map[int]chan Snapshot
	nextSub int
	closed  bool
}

// NewWorkspace starts a workspace on doc, or on an empty document when doc is nil.
// The personal section is active initially.
func NewWorkspace(doc *resume.Document) *Workspace {
	w := &Workspace{
		section: SectionPersonal,
		subs:    make(map[int]chan Snapshot),
	}
	w.editor = resume.NewEditor(doc, w.documentChanged)
	w.preview = preview.Project(w.editor.Document())
	w.rerender()
	return w
}

// documentChanged runs inside the editor while w.mu is held.
func (w *Workspace) documentChanged(doc *resume.Document) {
	w.preview = preview.Project(doc)
	w.version++
	metrics.IncBuilderEdit()
}

func (w *Workspace) rerender() {
	form, actions, err := Render(w.section, w.editor)
	if err != nil {
		// section is validated before it is stored
		panic(err)
	}
	w.form = form
	w.actions = actions
}

// Show makes section active and re-renders its form and the preview.
// Showing the section that is already active changes nothing.
func (w *Workspace) Show(section Section) (Snapshot, error) {
	parsed, err := ParseSection(string(section))
	if err != nil {
		return Snapshot{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if parsed == w.section {
		return w.snapshot(), nil
	}
	w.section = parsed
	w.rerender()
	w.preview = preview.Project(w.editor.Document())
	w.version++
	return w.publish(), nil
}

// Dispatch runs the handler bound to action in the active form.
func (w *Workspace) Dispatch(action, value string) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.actions.Dispatch(action, value); err != nil {
		return w.snapshot(), err
	}
	w.rerender()
	return w.publish(), nil
}

// Edit applies fn to the editor directly, for callers that address the
// document by field rather than through the active form.
func (w *Workspace) Edit(fn func(ed *resume.Editor) error) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := fn(w.editor); err != nil {
		return w.snapshot(), err
	}
	w.rerender()
	return w.publish(), nil
}

// SetReview records the outcome of an AI review. Outcomes are applied in the
// order they complete, so a slow earlier request can replace a newer one.
func (w *Workspace) SetReview(r Review) Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.review = &Review{Suggestions: append([]string(nil), r.Suggestions...), Fallback: r.Fallback}
	w.version++
	return w.publish()
}

// Snapshot returns the current state.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// Document returns a copy of the document.
func (w *Workspace) Document() *resume.Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.editor.Document().Clone()
}

// Preview returns the current preview.
func (w *Workspace) Preview() preview.Preview {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.preview
}

// Subscribe returns a channel receiving a snapshot after every change. A slow
// reader only ever sees the newest snapshot. Call cancel to stop receiving.
func (w *Workspace) Subscribe() (<-chan Snapshot, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ch := make(chan Snapshot, 1)
	if w.closed {
		close(ch)
		return ch, func() {}
	}
	id := w.nextSub
	w.nextSub++
	w.subs[id] = ch
	ch <- w.snapshot()
	return ch, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub)
		}
	}
}

// Subscribers returns the number of open subscriptions.
func (w *Workspace) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// Close ends all subscriptions. Further edits still work but are not pushed.
func (w *Workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	for id, ch := range w.subs {
		delete(w.subs, id)
		close(ch)
	}
}

func (w *Workspace) snapshot() Snapshot {
	var review *Review
	if w.review != nil {
		r := *w.review
		review = &r
	}
	return Snapshot{
		Version: w.version,
		Section: w.section,
		Form:    w.form,
		Actions: w.actions.Actions(),
		Preview: w.preview,
		Review:  review,
	}
}

func (w *Workspace) publish() Snapshot {
	snap := w.snapshot()
	for _, ch := range w.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
	return snap
}
