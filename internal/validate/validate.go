// Package validate checks user-entered form fields against the site's input rules.
//
// A check never fails with an error: an invalid value is reported through Result
// and the field's error state, so callers can always keep going.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind is the declared input kind of a field.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPhone    Kind = "tel"
	KindNumber   Kind = "number"
	KindSelect   Kind = "select"
	KindTextarea Kind = "textarea"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
)

// User-facing reasons.
const (
	MsgRequired = "هذا الحقل مطلوب"
	MsgEmail    = "البريد الإلكتروني غير صحيح"
	MsgPhone    = "رقم الهاتف غير صحيح (10 أرقام تبدأ بـ 05 أو 06 أو 07)"
	msgMin      = "القيمة يجب أن تكون أكبر من أو تساوي %s"
	msgMax      = "القيمة يجب أن تكون أصغر من أو تساوي %s"
)

// Tags registered on the underlying go-playground validator.
const (
	TagEmail = "simple_email"
	TagPhone = "dz_phone"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Algerian mobile numbers: 10 digits starting with 05, 06 or 07.
	phonePattern = regexp.MustCompile(`^0[567][0-9]{8}$`)
)

// Field is a single named form value with its declared rules.
type Field struct {
	Name     string
	Label    string
	Value    string
	Kind     Kind
	Required bool
	Min      *float64
	Max      *float64
}

// Bound is a convenience for declaring Min/Max.
func Bound(v float64) *float64 {
	return &v
}

// Result is the outcome of checking one field.
type Result struct {
	Valid  bool
	Reason string
}

// Checker is the validation capability handed to forms and the registration wizard.
type Checker interface {
	Check(field Field) Result
}

// Validator implements Checker on top of go-playground/validator.
type Validator struct {
	engine *validator.Validate
}

// New creates a Validator with the site's custom tags registered.
func New() *Validator {
	engine := validator.New(validator.WithRequiredStructEnabled())
	// Report struct fields by their JSON names, as the API clients know them.
	engine.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = engine.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = engine.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Validator{engine: engine}
}

// Engine exposes the configured go-playground validator, e.g. for echo.Validator.
func (v *Validator) Engine() *validator.Validate {
	return v.engine
}

// Check applies the rules in order; the first failing rule wins.
func (v *Validator) Check(field Field) Result {
	value := strings.TrimSpace(field.Value)

	if field.Required && value == "" {
		return invalid(MsgRequired)
	}
	if value == "" {
		return Result{Valid: true}
	}

	switch field.Kind {
	case KindEmail:
		if v.engine.Var(value, TagEmail) != nil {
			return invalid(MsgEmail)
		}
	case KindPhone:
		if v.engine.Var(value, TagPhone) != nil {
			return invalid(MsgPhone)
		}
	case KindNumber:
		return checkRange(value, field.Min, field.Max)
	}

	return Result{Valid: true}
}

// checkRange treats an unparsable number as out of range when a bound is declared.
func checkRange(value string, min, max *float64) Result {
	n, err := strconv.ParseFloat(value, 64)
	if min != nil && (err != nil || n < *min) {
		return invalid(fmt.Sprintf(msgMin, formatBound(*min)))
	}
	if max != nil && (err != nil || n > *max) {
		return invalid(fmt.Sprintf(msgMax, formatBound(*max)))
	}
	return Result{Valid: true}
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func invalid(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhone reports whether s is a valid mobile number.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

var nonDigits = regexp.MustCompile(`\D`)

// FormatPhone strips non-digits and groups a 10-digit number as "0555 12 34 56".
// Any other length is returned with only the non-digits removed.
func FormatPhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) != 10 {
		return digits
	}
	return digits[:4] + " " + digits[4:6] + " " + digits[6:8] + " " + digits[8:]
}
