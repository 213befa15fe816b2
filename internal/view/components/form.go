package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/validate"
)

// FieldProps carries what is needed to render one form field.
type FieldProps struct {
	Field       validate.Field
	Value       string
	Error       string
	Placeholder string
	// Choices are the options of select and radio fields, as value/label pairs.
	Choices []Choice
}

// Choice is an option of a select or radio group.
type Choice struct {
	Value string
	Label string
}

// Choices turns plain labels into choices whose value is the label.
func Choices(labels []string) []Choice {
	out := make([]Choice, len(labels))
	for i, l := range labels {
		out[i] = Choice{Value: l, Label: l}
	}
	return out
}

// FormField renders a labelled input with its inline error message. The error
// state class is set when Error is not empty.
func FormField(p FieldProps) g.Node {
	f := p.Field
	return Div(c.Classes{"form-group": true, "has-error": p.Error != ""},
		g.If(f.Kind != validate.KindRadio && f.Kind != validate.KindCheckbox,
			Label(For(f.Name), g.Text(f.Label), g.If(f.Required, Span(Class("required"), g.Text(" *")))),
		),
		input(p),
		Span(Class("error-message"), ID(f.Name+"-error"), g.Text(p.Error)),
	)
}

func input(p FieldProps) g.Node {
	f := p.Field
	common := g.Group{
		ID(f.Name),
		Name(f.Name),
		c.Classes{"form-control": true, "error": p.Error != ""},
		g.If(f.Required, Required()),
		g.If(p.Placeholder != "", Placeholder(p.Placeholder)),
	}

	switch f.Kind {
	case validate.KindTextarea:
		return Textarea(common, Rows("5"), g.Text(p.Value))
	case validate.KindSelect:
		return Select(common,
			Option(Value(""), g.Text("اختر...")),
			g.Map(p.Choices, func(o Choice) g.Node {
				return Option(Value(o.Value), g.If(o.Value == p.Value, Selected()), g.Text(o.Label))
			}),
		)
	case validate.KindRadio:
		return Div(Class("radio-group"),
			Span(Class("radio-group-label"), g.Text(f.Label), g.If(f.Required, Span(Class("required"), g.Text(" *")))),
			g.Map(p.Choices, func(o Choice) g.Node {
				return Label(Class("radio-label"),
					Input(Type("radio"), Name(f.Name), Value(o.Value), g.If(o.Value == p.Value, Checked()), g.If(f.Required, Required())),
					Span(g.Text(o.Label)),
				)
			}),
		)
	case validate.KindCheckbox:
		return Label(Class("checkbox-label"),
			Input(Type("checkbox"), ID(f.Name), Name(f.Name), Value("on"), g.If(p.Value != "", Checked())),
			Span(g.Text(f.Label)),
		)
	default:
		return Input(common,
			Type(string(f.Kind)),
			Value(p.Value),
			g.If(f.Min != nil, Min(formatFloat(f.Min))),
			g.If(f.Max != nil, Max(formatFloat(f.Max))),
		)
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
