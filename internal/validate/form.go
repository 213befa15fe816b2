package validate

// FieldState is the visual error state of one field: the "error" marker and
// the inline message shown next to it.
type FieldState struct {
	Error   bool
	Message string
}

// Form is an ordered set of fields with their error states.
type Form struct {
	checker Checker
	order   []string
	fields  map[string]*Field
	states  map[string]FieldState
}

// NewForm creates a form over the given field declarations.
func NewForm(checker Checker, fields ...Field) *Form {
	f := &Form{
		checker: checker,
		fields:  make(map[string]*Field, len(fields)),
		states:  make(map[string]FieldState, len(fields)),
	}
	for i := range fields {
		field := fields[i]
		f.order = append(f.order, field.Name)
		f.fields[field.Name] = &field
	}
	return f
}

// Set updates a field's value. Unknown names are ignored.
func (f *Form) Set(name, value string) {
	if field, ok := f.fields[name]; ok {
		field.Value = value
	}
}

// Fill sets every known field from values; fields missing from values become empty.
func (f *Form) Fill(values map[string]string) {
	for _, name := range f.order {
		f.fields[name].Value = values[name]
	}
}

// ValidateField clears the field's error state, re-checks it and records the outcome.
func (f *Form) ValidateField(name string) bool {
	field, ok := f.fields[name]
	if !ok {
		return true
	}
	delete(f.states, name)

	res := f.checker.Check(*field)
	if !res.Valid {
		f.states[name] = FieldState{Error: true, Message: res.Reason}
	}
	return res.Valid
}

// Revalidate re-checks a field only while it is in the error state, mirroring
// live re-validation on input.
func (f *Form) Revalidate(name string) bool {
	if !f.states[name].Error {
		return true
	}
	return f.ValidateField(name)
}

// ValidateAll checks every required field, marking each failing one.
// All required fields are checked even after the first failure.
func (f *Form) ValidateAll() bool {
	ok := true
	for _, name := range f.order {
		if !f.fields[name].Required {
			continue
		}
		if !f.ValidateField(name) {
			ok = false
		}
	}
	return ok
}

// State returns the current error state of a field.
func (f *Form) State(name string) FieldState {
	return f.states[name]
}

// Errors returns the inline messages of all fields currently in the error state.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.states))
	for name, st := range f.states {
		out[name] = st.Message
	}
	return out
}

// Fields returns the field declarations in order, with their current values.
func (f *Form) Fields() []Field {
	out := make([]Field, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, *f.fields[name])
	}
	return out
}

// Values returns the current value of every field.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.order))
	for _, name := range f.order {
		out[name] = f.fields[name].Value
	}
	return out
}

// Reset clears all values and error states.
func (f *Form) Reset() {
	for _, name := range f.order {
		f.fields[name].Value = ""
	}
	f.states = make(map[string]FieldState)
}
