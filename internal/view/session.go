package view

import (
	"encoding/json"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/registration"
)

const (
	wizardKey = "wizard"
	modalsKey = "modals"
)

// LoadJSON decodes the session value stored under key into dst. It reports
// false when the value is missing or cannot be decoded.
func LoadJSON(c echo.Context, key string, dst any) bool {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return false
	}
	raw, ok := sess.Values[key].(string)
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Discarding unreadable session value", "key", key, "error", err)
		return false
	}
	return true
}

// SaveJSON stores v under key as a JSON string and saves the session.
func SaveJSON(c echo.Context, key string, v any) error {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	sess.Values[key] = string(raw)
	return sess.Save(c.Request(), c.Response())
}

// Forget removes key from the session.
func Forget(c echo.Context, key string) error {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, key)
	return sess.Save(c.Request(), c.Response())
}

// LoadWizard returns the visitor's wizard state, if a registration is in progress.
func LoadWizard(c echo.Context) (registration.State, bool) {
	var st registration.State
	ok := LoadJSON(c, wizardKey, &st)
	return st, ok
}

// SaveWizard keeps the wizard state for the next request.
func SaveWizard(c echo.Context, st registration.State) error {
	return SaveJSON(c, wizardKey, st)
}

// ClearWizard drops the wizard state so the next visit starts on step 1.
func ClearWizard(c echo.Context) error {
	return Forget(c, wizardKey)
}

// ModalState is the visitor's open modals and the page scroll lock they control.
type ModalState struct {
	Open   []string `json:"open,omitempty"`
	Locked bool     `json:"locked,omitempty"`
}

// LoadModals returns the visitor's modal state.
func LoadModals(c echo.Context) ModalState {
	var st ModalState
	LoadJSON(c, modalsKey, &st)
	return st
}

// SaveModals stores the modal state; an all-closed, unlocked state is dropped.
func SaveModals(c echo.Context, st ModalState) error {
	if len(st.Open) == 0 && !st.Locked {
		return Forget(c, modalsKey)
	}
	return SaveJSON(c, modalsKey, st)
}
