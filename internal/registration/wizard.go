// Package registration implements the multi-step registration wizard.
//
// The wizard is a linear state machine over steps 1..TotalSteps. It never
// skips or branches; Next is gated on the current step's required fields and
// Prev is always allowed. Collected values accumulate across steps and are
// submitted in one request from the final step.
package registration

import (
	"context"
	"maps"

	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/validate"
)

// User-facing messages.
const (
	MsgStepInvalid     = "يرجى ملء جميع الحقول المطلوبة"
	MsgTermsRequired   = "يجب الموافقة على الشروط والأحكام"
	MsgSubmitFailed    = "حدث خطأ أثناء التسجيل"
	MsgConnectionError = "حدث خطأ في الاتصال بالخادم"
)

// Progress marks of a step in the progress indicator.
const (
	MarkNone      = ""
	MarkActive    = "active"
	MarkCompleted = "completed"
)

// Result is the registration endpoint's response envelope.
type Result struct {
	Success   bool   `json:"success"`
	StudentID string `json:"student_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Submitter sends the accumulated data to the registration endpoint.
// An error means the request did not complete (transport failure).
type Submitter interface {
	SubmitRegistration(ctx context.Context, data map[string]string) (Result, error)
}

// ProgramLabeler resolves a program id to its display name.
type ProgramLabeler interface {
	ProgramLabel(id string) (string, bool)
}

// Indicator is the blocking loading indicator shown while submitting.
type Indicator interface {
	Show()
	Hide()
}

// Viewport is scrolled back to the top after every step transition.
type Viewport interface {
	ScrollToTop()
}

// Deps are the capabilities the wizard needs. Indicator and Viewport are optional.
type Deps struct {
	Checker   validate.Checker
	Notifier  notify.Notifier
	Submitter Submitter
	Programs  ProgramLabeler
	Indicator Indicator
	Viewport  Viewport
}

// State is the serialisable part of the wizard.
type State struct {
	CurrentStep int               `json:"current_step"`
	FormData    map[string]string `json:"form_data"`
	Selected    string            `json:"selected_program,omitempty"`
}

// Confirmation is the read-only summary shown on the final step.
type Confirmation struct {
	Name    string
	Age     string
	Gender  string
	Phone   string
	Email   string
	Address string
	Program string
}

// Outcome reports what Submit did.
type Outcome struct {
	// Sent is true when a request reached the submitter.
	Sent bool
	// Redirect is the schedule page to navigate to after a successful registration.
	Redirect string
}

// Wizard is the registration flow of one visitor.
type Wizard struct {
	deps  Deps
	steps []Step
	forms map[int]*validate.Form

	current      int
	data         map[string]string
	selected     string
	confirmation Confirmation
}

// New creates a wizard positioned on step 1. With no steps, DefaultSteps is used.
func New(deps Deps, steps ...Step) *Wizard {
	if len(steps) == 0 {
		steps = DefaultSteps()
	}
	w := &Wizard{
		deps:    deps,
		steps:   steps,
		forms:   make(map[int]*validate.Form, len(steps)),
		current: 1,
		data:    make(map[string]string),
	}
	for _, s := range steps {
		w.forms[s.Number] = validate.NewForm(deps.Checker, s.Fields...)
	}
	return w
}

// Restore loads previously saved state. Out-of-range steps are clamped.
func (w *Wizard) Restore(st State) {
	w.current = clamp(st.CurrentStep)
	w.data = make(map[string]string, len(st.FormData))
	maps.Copy(w.data, st.FormData)
	w.selected = st.Selected
	if w.current == TotalSteps {
		w.buildConfirmation()
	}
}

// State returns a copy of the wizard state.
func (w *Wizard) State() State {
	return State{CurrentStep: w.current, FormData: w.Data(), Selected: w.selected}
}

// CurrentStep returns the active step number, always within [1, TotalSteps].
func (w *Wizard) CurrentStep() int { return w.current }

// Steps returns the step definitions.
func (w *Wizard) Steps() []Step { return w.steps }

// Data returns a copy of the accumulated field values.
func (w *Wizard) Data() map[string]string {
	return maps.Clone(w.data)
}

// Next validates the current step and advances on success.
// values holds the inputs of the current step.
func (w *Wizard) Next(values map[string]string) bool {
	values = w.withSelection(values)
	if !w.validateCurrent(values) {
		w.deps.Notifier.Notify(MsgStepInvalid, notify.Error, 0)
		return false
	}
	if w.current >= TotalSteps {
		return false
	}

	w.collect(values)
	w.current++
	if w.current == TotalSteps {
		w.buildConfirmation()
	}
	w.rendered()
	return true
}

// Prev goes back one step without validation.
func (w *Wizard) Prev() {
	if w.current <= 1 {
		return
	}
	w.current--
	w.rendered()
}

// SelectProgram marks a program option as the only selected one.
func (w *Wizard) SelectProgram(id string) {
	w.selected = id
}

// SelectedProgram returns the currently selected program option.
func (w *Wizard) SelectedProgram() string {
	if w.selected != "" {
		return w.selected
	}
	return w.data[FieldProgram]
}

// StepVisible reports whether step n is the one displayed.
func (w *Wizard) StepVisible(n int) bool { return n == w.current }

// Progress returns the indicator mark of every step, index 0 being step 1.
func (w *Wizard) Progress() []string {
	marks := make([]string, TotalSteps)
	for i := range marks {
		n := i + 1
		switch {
		case n == w.current:
			marks[i] = MarkActive
		case n < w.current:
			marks[i] = MarkCompleted
		default:
			marks[i] = MarkNone
		}
	}
	return marks
}

// FieldErrors returns the inline messages of the current step.
func (w *Wizard) FieldErrors() map[string]string {
	return w.forms[w.current].Errors()
}

// Confirmation returns the summary built when the final step was entered.
func (w *Wizard) Confirmation() Confirmation { return w.confirmation }

// Submit sends the accumulated data once. It only acts on the final step and
// requires the terms to be accepted. On failure the wizard stays on the final
// step with its data intact.
func (w *Wizard) Submit(ctx context.Context, values map[string]string, termsAccepted bool) Outcome {
	if w.current != TotalSteps {
		return Outcome{}
	}
	if !termsAccepted {
		w.deps.Notifier.Notify(MsgTermsRequired, notify.Warning, 0)
		return Outcome{}
	}

	w.collect(values)

	if w.deps.Indicator != nil {
		w.deps.Indicator.Show()
	}
	res, err := w.deps.Submitter.SubmitRegistration(ctx, w.Data())
	if w.deps.Indicator != nil {
		w.deps.Indicator.Hide()
	}

	switch {
	case err != nil:
		w.deps.Notifier.Notify(MsgConnectionError, notify.Error, 0)
	case res.Success:
		return Outcome{Sent: true, Redirect: "/schedule/" + res.StudentID}
	default:
		msg := res.Message
		if msg == "" {
			msg = MsgSubmitFailed
		}
		w.deps.Notifier.Notify(msg, notify.Error, 0)
	}
	return Outcome{Sent: true}
}

func (w *Wizard) withSelection(values map[string]string) map[string]string {
	if w.current != 2 || w.selected == "" || values[FieldProgram] != "" {
		return values
	}
	out := maps.Clone(values)
	if out == nil {
		out = make(map[string]string)
	}
	out[FieldProgram] = w.selected
	return out
}

func (w *Wizard) validateCurrent(values map[string]string) bool {
	form := w.forms[w.current]
	if form == nil {
		return true
	}
	form.Fill(values)
	return form.ValidateAll()
}

// collect merges the current step's inputs into the accumulated data. Radio and
// checkbox inputs contribute only when checked.
func (w *Wizard) collect(values map[string]string) {
	for _, s := range w.steps {
		if s.Number != w.current {
			continue
		}
		for _, f := range s.Fields {
			v, ok := values[f.Name]
			if isChoice(f.Kind) {
				if ok && v != "" {
					w.data[f.Name] = v
				}
				continue
			}
			w.data[f.Name] = v
		}
	}
	if w.current == 2 && w.data[FieldProgram] != "" {
		w.selected = w.data[FieldProgram]
	}
}

func (w *Wizard) buildConfirmation() {
	d := w.data
	c := Confirmation{
		Name:    d[FieldFirstName] + " " + d[FieldLastName],
		Age:     d[FieldAge] + " سنة",
		Gender:  d[FieldGender],
		Phone:   d[FieldPhone],
		Email:   d[FieldEmail],
		Address: d[FieldAddress] + ", " + d[FieldState],
	}
	if id := w.SelectedProgram(); id != "" && w.deps.Programs != nil {
		if label, ok := w.deps.Programs.ProgramLabel(id); ok {
			c.Program = label
		}
	}
	w.confirmation = c
}

func (w *Wizard) rendered() {
	if w.deps.Viewport != nil {
		w.deps.Viewport.ScrollToTop()
	}
}

func clamp(step int) int {
	if step < 1 {
		return 1
	}
	if step > TotalSteps {
		return TotalSteps
	}
	return step
}
