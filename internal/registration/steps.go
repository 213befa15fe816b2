package registration

import "github.com/nfrund/zawiya/internal/validate"

// TotalSteps is the number of wizard steps; the last one is the confirmation.
const TotalSteps = 3

// Field names shared by the wizard, the pages and the registration endpoint.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldAge       = "age"
	FieldGender    = "gender"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldAddress   = "address"
	FieldState     = "state"
	FieldProgram   = "program"
	FieldTerms     = "terms"
)

// Step is one page of the wizard with the fields it collects.
type Step struct {
	Number int
	Title  string
	Fields []validate.Field
}

// DefaultSteps returns the registration flow: personal details, program choice
// and confirmation.
func DefaultSteps() []Step {
	return []Step{
		{
			Number: 1,
			Title:  "المعلومات الشخصية",
			Fields: []validate.Field{
				{Name: FieldFirstName, Label: "الاسم", Kind: validate.KindText, Required: true},
				{Name: FieldLastName, Label: "اللقب", Kind: validate.KindText, Required: true},
				{Name: FieldAge, Label: "العمر", Kind: validate.KindNumber, Required: true, Min: validate.Bound(5), Max: validate.Bound(100)},
				{Name: FieldGender, Label: "الجنس", Kind: validate.KindRadio, Required: true},
				{Name: FieldPhone, Label: "رقم الهاتف", Kind: validate.KindPhone, Required: true},
				{Name: FieldEmail, Label: "البريد الإلكتروني", Kind: validate.KindEmail, Required: true},
				{Name: FieldAddress, Label: "مكان الإقامة", Kind: validate.KindText, Required: true},
				{Name: FieldState, Label: "الولاية", Kind: validate.KindSelect, Required: true},
			},
		},
		{
			Number: 2,
			Title:  "اختيار البرنامج",
			Fields: []validate.Field{
				{Name: FieldProgram, Label: "البرنامج", Kind: validate.KindRadio, Required: true},
			},
		},
		{
			Number: 3,
			Title:  "التأكيد",
			Fields: []validate.Field{
				{Name: FieldTerms, Label: "الموافقة على الشروط والأحكام", Kind: validate.KindCheckbox},
			},
		},
	}
}

// isChoice reports whether the field only contributes a value when checked.
func isChoice(k validate.Kind) bool {
	return k == validate.KindRadio || k == validate.KindCheckbox
}
