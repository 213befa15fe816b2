// Package script runs the Tengo rules that decide which classes a student sees.
// Rules are plain Tengo source so they can be changed without a rebuild.
package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// DefaultScheduleRule shows a class when it belongs to the student's program or
// to one of the programs open to everybody.
const DefaultScheduleRule = `
shared := ["review", "tijani"]
eligible := class_program == student_program
if !eligible {
	for _, p in shared {
		if p == class_program {
			eligible = true
		}
	}
}
`

// MaxExecutionTime bounds a single rule evaluation.
const MaxExecutionTime = time.Second

// allowedModules are the stdlib modules a rule may import.
var allowedModules = []string{"text", "fmt"}

var ErrNoResult = errors.New("rule did not set eligible")

// ScheduleRule is a compiled eligibility rule. It is safe for concurrent use.
type ScheduleRule struct {
	mu       sync.RWMutex
	compiled *tengo.Compiled
	source   string
}

// NewScheduleRule compiles source. An empty source selects DefaultScheduleRule.
func NewScheduleRule(source string) (*ScheduleRule, error) {
	r := &ScheduleRule{}
	if err := r.Reload(source); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload swaps in a new rule. On a compile error the previous rule stays active.
func (r *ScheduleRule) Reload(source string) error {
	if source == "" {
		source = DefaultScheduleRule
	}

	s := tengo.NewScript([]byte(source))
	s.SetImports(stdlib.GetModuleMap(allowedModules...))
	for _, name := range []string{"student_program", "class_program"} {
		if err := s.Add(name, ""); err != nil {
			return fmt.Errorf("failed to declare %s: %w", name, err)
		}
	}
	if err := s.Add("log", logFunc()); err != nil {
		return fmt.Errorf("failed to declare log: %w", err)
	}

	compiled, err := s.Compile()
	if err != nil {
		return fmt.Errorf("failed to compile schedule rule: %w", err)
	}

	r.mu.Lock()
	r.compiled, r.source = compiled, source
	r.mu.Unlock()
	slog.Debug("Schedule rule compiled", "bytes", len(source))
	return nil
}

// Source returns the active rule text.
func (r *ScheduleRule) Source() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.source
}

// Eligible evaluates the rule for one class.
func (r *ScheduleRule) Eligible(ctx context.Context, studentProgram, classProgram string) (bool, error) {
	r.mu.RLock()
	c := r.compiled.Clone()
	r.mu.RUnlock()

	if err := c.Set("student_program", studentProgram); err != nil {
		return false, err
	}
	if err := c.Set("class_program", classProgram); err != nil {
		return false, err
	}

	runCtx, cancel := context.WithTimeout(ctx, MaxExecutionTime)
	defer cancel()
	if err := c.RunContext(runCtx); err != nil {
		return false, fmt.Errorf("schedule rule failed: %w", err)
	}

	if !c.IsDefined("eligible") {
		return false, ErrNoResult
	}
	return c.Get("eligible").Bool(), nil
}

func logFunc() *tengo.UserFunction {
	return &tengo.UserFunction{
		Name: "log",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			msg, _ := tengo.ToString(args[0])
			slog.Info("Script log", "message", msg, "source", "schedule_rule")
			return tengo.UndefinedValue, nil
		},
	}
}
