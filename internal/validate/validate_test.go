package validate

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_Required(t *testing.T) {
	v := New()

	res := v.Check(Field{Name: "firstName", Value: "   ", Kind: KindText, Required: true})
	assert.False(t, res.Valid)
	assert.Equal(t, MsgRequired, res.Reason)

	res = v.Check(Field{Name: "notes", Value: "", Kind: KindText})
	assert.True(t, res.Valid, "optional empty field is valid")
}

func TestCheck_RequiredWinsOverKind(t *testing.T) {
	v := New()
	res := v.Check(Field{Name: "email", Value: "", Kind: KindEmail, Required: true})
	assert.Equal(t, MsgRequired, res.Reason)
}

func TestCheck_Email(t *testing.T) {
	v := New()
	cases := map[string]bool{
		"student@zawiya.dz":   true,
		"a.b@c.d":             true,
		"  padded@mail.com  ": true,
		"no-at-sign.com":      false,
		"two@@signs.com":      false,
		"missing@tld":         false,
		"space in@mail.com":   false,
		"@nolocal.com":        false,
		"trailing@dot.":       false,
	}
	for input, want := range cases {
		res := v.Check(Field{Name: "email", Value: input, Kind: KindEmail})
		assert.Equal(t, want, res.Valid, "email %q", input)
		if !want {
			assert.Equal(t, MsgEmail, res.Reason)
		}
	}
}

func TestCheck_Phone(t *testing.T) {
	v := New()
	cases := map[string]bool{
		"0555123456":  true,
		"0612345678":  true,
		"0799999999":  true,
		"0455123456":  false,
		"055512345":   false,
		"05551234567": false,
		"+213555123":  false,
		"0555 123456": false,
		"05a5123456":  false,
	}
	for input, want := range cases {
		res := v.Check(Field{Name: "phone", Value: input, Kind: KindPhone})
		assert.Equal(t, want, res.Valid, "phone %q", input)
		if !want {
			assert.Equal(t, MsgPhone, res.Reason)
		}
	}
}

// phoneOracle restates the phone rule without regular expressions.
func phoneOracle(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s[0] == '0' && (s[1] == '5' || s[1] == '6' || s[1] == '7')
}

func TestCheck_PhoneMatchesOracle(t *testing.T) {
	v := New()
	rng := rand.New(rand.NewSource(42))
	alphabet := "0123456789567x "

	for i := 0; i < 5000; i++ {
		n := 8 + rng.Intn(4)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		s := b.String()
		if strings.TrimSpace(s) != s || s == "" {
			continue
		}
		res := v.Check(Field{Name: "phone", Value: s, Kind: KindPhone})
		assert.Equal(t, phoneOracle(s), res.Valid, "phone %q", s)
	}
}

func TestCheck_NumberRange(t *testing.T) {
	v := New()
	age := Field{Name: "age", Kind: KindNumber, Min: Bound(5), Max: Bound(100)}

	age.Value = "4"
	res := v.Check(age)
	assert.False(t, res.Valid)
	assert.Equal(t, "القيمة يجب أن تكون أكبر من أو تساوي 5", res.Reason)

	age.Value = "101"
	res = v.Check(age)
	assert.False(t, res.Valid)
	assert.Equal(t, "القيمة يجب أن تكون أصغر من أو تساوي 100", res.Reason)

	age.Value = "5"
	assert.True(t, v.Check(age).Valid)
	age.Value = "100"
	assert.True(t, v.Check(age).Valid)

	age.Value = "abc"
	assert.False(t, v.Check(age).Valid)

	unbounded := Field{Name: "count", Kind: KindNumber, Value: "abc"}
	assert.True(t, v.Check(unbounded).Valid, "no bounds declared means no range rule")
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "0555 12 34 56", FormatPhone("0555123456"))
	assert.Equal(t, "0555 12 34 56", FormatPhone("0555-12-34-56"))
	assert.Equal(t, "12345", FormatPhone("12 345"))
}
