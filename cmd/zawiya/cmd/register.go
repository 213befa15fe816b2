package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nfrund/zawiya/internal/apiclient"
	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/registration"
	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/validate"
)

var genders = []string{"ذكر", "أنثى"}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a student through the interactive wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegister(cmd.Context(), surveyPrompter{}, newClient(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

// programList labels programs fetched from the server.
type programList []domain.Program

func (p programList) ProgramLabel(id string) (string, bool) {
	for _, prog := range p {
		if prog.ID == id {
			return prog.Name, true
		}
	}
	return "", false
}

func (p programList) names() []string {
	out := make([]string, len(p))
	for i, prog := range p {
		out[i] = prog.Name
	}
	return out
}

func (p programList) idOf(name string) string {
	for _, prog := range p {
		if prog.Name == name {
			return prog.ID
		}
	}
	return ""
}

// runRegister walks the wizard step by step. A step is asked again until it
// validates; the final step submits once the terms are accepted.
func runRegister(ctx context.Context, p prompter, client *apiclient.Client, out io.Writer) error {
	programs, err := client.Programs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load programs: %w", err)
	}

	w := registration.New(registration.Deps{
		Checker:   validate.New(),
		Notifier:  notify.NewCenter(notify.Writer{W: out}, notify.RealTimer{}),
		Submitter: client,
		Programs:  programList(programs),
	})
	states := catalog.Default().States()

	for w.CurrentStep() < registration.TotalSteps {
		step := w.Steps()[w.CurrentStep()-1]
		fmt.Fprintf(out, "\n== %s (%d/%d)\n", step.Title, step.Number, registration.TotalSteps)

		values := make(map[string]string, len(step.Fields))
		for _, f := range step.Fields {
			v, err := askField(p, f, w.Data()[f.Name], states, programList(programs))
			if err != nil {
				return err
			}
			values[f.Name] = v
		}
		if step.Number == 2 {
			w.SelectProgram(values[registration.FieldProgram])
		}
		if !w.Next(values) {
			for name, msg := range w.FieldErrors() {
				fmt.Fprintf(out, "  %s: %s\n", name, msg)
			}
		}
	}

	printConfirmation(out, w.Confirmation())
	for {
		accepted, err := p.Confirm("أوافق على الشروط والأحكام")
		if err != nil {
			return err
		}
		outcome := w.Submit(ctx, nil, accepted)
		if outcome.Redirect != "" {
			fmt.Fprintf(out, "%s%s\n", client.BaseURL(), outcome.Redirect)
			return nil
		}
		if outcome.Sent {
			return fmt.Errorf("registration was not accepted")
		}
	}
}

func askField(p prompter, f validate.Field, current string, states []string, programs programList) (string, error) {
	switch f.Name {
	case registration.FieldGender:
		return p.Select(f.Label, genders)
	case registration.FieldState:
		return p.Select(f.Label, states)
	case registration.FieldProgram:
		name, err := p.Select(f.Label, programs.names())
		return programs.idOf(name), err
	default:
		return p.Input(f.Label, current)
	}
}

func printConfirmation(out io.Writer, c registration.Confirmation) {
	fmt.Fprintln(out, "\n== التأكيد")
	for _, row := range [][2]string{
		{"الاسم", c.Name},
		{"العمر", c.Age},
		{"الجنس", c.Gender},
		{"رقم الهاتف", c.Phone},
		{"البريد الإلكتروني", c.Email},
		{"مكان الإقامة", c.Address},
		{"البرنامج", c.Program},
	} {
		fmt.Fprintf(out, "  %s: %s\n", row[0], row[1])
	}
}
