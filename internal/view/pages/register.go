package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/registration"
	"github.com/nfrund/zawiya/internal/validate"
	"github.com/nfrund/zawiya/internal/view/components"
)

// Wizard endpoints.
const (
	WizardNextPath   = "/register/next"
	WizardPrevPath   = "/register/prev"
	WizardSelectPath = "/register/select"
	WizardSubmitPath = "/register/submit"
)

// Modals declared on the registration page.
const (
	TermsModal   = "terms"
	PrivacyModal = "privacy"
)

// RegisterModals lists the modal ids of the registration page.
var RegisterModals = []string{TermsModal, PrivacyModal}

var registerModals = map[string]components.ModalProps{
	TermsModal: {
		ID:    TermsModal,
		Title: "الشروط والأحكام",
		Body: Ul(
			Li(g.Text("الالتزام بمواعيد الحصص والحضور المنتظم.")),
			Li(g.Text("احترام المعلمين والزملاء والالتزام بآداب طالب العلم.")),
			Li(g.Text("استعمال روابط الحصص للأغراض التعليمية فقط.")),
		),
	},
	PrivacyModal: {
		ID:    PrivacyModal,
		Title: "سياسة الخصوصية",
		Body:  P(g.Text("تستعمل بياناتك لأغراض التسجيل والتواصل فقط ولا تشارك مع أي طرف آخر.")),
	},
}

// RegisterModal renders a modal of the registration page, or nil for an unknown id.
func RegisterModal(id string, open, oob bool) g.Node {
	p, ok := registerModals[id]
	if !ok {
		return nil
	}
	p.Open = open
	p.OOB = oob
	return components.Modal(p)
}

var genders = []components.Choice{{Value: "ذكر", Label: "ذكر"}, {Value: "أنثى", Label: "أنثى"}}

// RegisterProps is the content of the registration page.
type RegisterProps struct {
	Wizard   *registration.Wizard
	Programs []domain.Program
	States   []string
	// Values are the inputs to show, the accumulated data overlaid with what was
	// just submitted.
	Values     map[string]string
	OpenModals map[string]bool
}

// Register renders the registration page body.
func Register(p RegisterProps) g.Node {
	return Section(Class("register-section"),
		Div(Class("container"),
			Div(Class("section-header"),
				H2(Class("section-title"), g.Text("التسجيل في المدرسة")),
				P(Class("section-subtitle"), g.Text("املأ النموذج للانضمام إلى برامجنا")),
			),
			Wizard(p),
		),
		RegisterModal(TermsModal, p.OpenModals[TermsModal], false),
		RegisterModal(PrivacyModal, p.OpenModals[PrivacyModal], false),
	)
}

// Wizard renders the form with every step; only the current one is visible so the
// inputs of all steps travel with each request.
func Wizard(p RegisterProps) g.Node {
	w := p.Wizard
	errs := w.FieldErrors()
	return Div(ID("wizard"), Class("registration-wizard"),
		progress(w),
		Form(ID("registrationForm"), Class("registration-form"),
			hx.Target("#wizard"),
			hx.Swap("outerHTML show:window:top"),
			g.Map(w.Steps(), func(s registration.Step) g.Node {
				return Div(c.Classes{"form-step": true, "active": w.StepVisible(s.Number)},
					Data("step", strconv.Itoa(s.Number)),
					H3(Class("step-title"), g.Text(s.Title)),
					stepBody(p, s, errs),
					stepButtons(s.Number),
				)
			}),
		),
	)
}

func progress(w *registration.Wizard) g.Node {
	marks := w.Progress()
	return Div(Class("progress-steps"),
		g.Map(w.Steps(), func(s registration.Step) g.Node {
			mark := ""
			if s.Number-1 < len(marks) {
				mark = marks[s.Number-1]
			}
			return Div(c.Classes{"step": true, "active": mark == registration.MarkActive, "completed": mark == registration.MarkCompleted},
				Data("step", strconv.Itoa(s.Number)),
				Span(Class("step-number"), g.Text(strconv.Itoa(s.Number))),
				Span(Class("step-label"), g.Text(s.Title)),
			)
		}),
	)
}

func stepBody(p RegisterProps, s registration.Step, errs map[string]string) g.Node {
	w := p.Wizard
	visible := w.StepVisible(s.Number)
	errFor := func(name string) string {
		if !visible {
			return ""
		}
		return errs[name]
	}

	switch s.Number {
	case 2:
		return programOptions(p, errFor(registration.FieldProgram))
	case registration.TotalSteps:
		return confirmation(w.Confirmation(), p.Values[registration.FieldTerms] != "")
	}

	return Div(Class("form-grid"),
		g.Map(s.Fields, func(f validate.Field) g.Node {
			props := components.FieldProps{Field: f, Value: p.Values[f.Name], Error: errFor(f.Name)}
			switch f.Name {
			case registration.FieldGender:
				props.Choices = genders
			case registration.FieldState:
				props.Choices = components.Choices(p.States)
			case registration.FieldPhone:
				props.Placeholder = "0XXXXXXXXX"
			}
			return components.FormField(props)
		}),
	)
}

func programOptions(p RegisterProps, errMsg string) g.Node {
	selected := p.Wizard.SelectedProgram()
	return Div(Class("program-options"),
		g.Map(p.Programs, func(prog domain.Program) g.Node {
			return Label(c.Classes{"program-option": true, "selected": prog.ID == selected},
				hx.Post(WizardSelectPath),
				hx.Vals(`{"program":"`+prog.ID+`"}`),
				hx.Trigger("click"),
				Input(Type("radio"), Name(registration.FieldProgram), Value(prog.ID), g.If(prog.ID == selected, Checked())),
				Div(Class("program-option-content"),
					I(Class("fas "+prog.Icon)),
					H3(g.Text(prog.Name)),
					P(g.Text(prog.AgeRange)),
				),
			)
		}),
		Span(Class("error-message"), g.Text(errMsg)),
	)
}

func confirmation(cf registration.Confirmation, terms bool) g.Node {
	row := func(label, value string) g.Node {
		return Div(Class("confirm-row"), Span(Class("confirm-label"), g.Text(label)), Span(Class("confirm-value"), g.Text(value)))
	}
	return Div(Class("confirmation"),
		row("الاسم الكامل", cf.Name),
		row("العمر", cf.Age),
		row("الجنس", cf.Gender),
		row("رقم الهاتف", cf.Phone),
		row("البريد الإلكتروني", cf.Email),
		row("العنوان", cf.Address),
		Div(ID("confirm-program"), Class("confirm-row"),
			Span(Class("confirm-label"), g.Text("البرنامج المختار")),
			Span(Class("confirm-value"), I(Class("fas fa-check-circle")), g.Text(" "+cf.Program)),
		),
		Label(Class("checkbox-label"),
			Input(Type("checkbox"), ID(registration.FieldTerms), Name(registration.FieldTerms), Value("on"), g.If(terms, Checked())),
			Span(g.Text("أوافق على "), components.ModalTrigger(TermsModal, "الشروط والأحكام"),
				g.Text(" و"), components.ModalTrigger(PrivacyModal, "سياسة الخصوصية")),
		),
	)
}

func stepButtons(step int) g.Node {
	prev := Button(Type("button"), Class("btn btn-outline btn-prev"), hx.Post(WizardPrevPath), g.Text("السابق"))
	next := Button(Type("button"), Class("btn btn-primary btn-next"), hx.Post(WizardNextPath), g.Text("التالي"))
	submit := Button(Type("button"), Class("btn btn-primary btn-submit"),
		hx.Post(WizardSubmitPath),
		hx.Indicator("#loadingOverlay"),
		g.Text("تأكيد التسجيل"),
	)
	return Div(Class("form-buttons"),
		g.If(step > 1, prev),
		g.If(step < registration.TotalSteps, next),
		g.If(step == registration.TotalSteps, submit),
	)
}
