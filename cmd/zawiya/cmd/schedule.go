package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/ui/schedule"
	"github.com/nfrund/zawiya/internal/ui/share"
)

var (
	scheduleProgram string
	scheduleCopy    int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "List class sessions, optionally copying a meeting link",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := newClient().Schedules(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load schedules: %w", err)
		}
		out := cmd.OutOrStdout()
		helper := &share.Helper{
			Primary:  systemClipboard{},
			Notifier: notify.NewCenter(notify.Writer{W: out}, notify.RealTimer{}),
		}
		return printSchedule(cmd.Context(), out, sessions, scheduleProgram, scheduleCopy, helper, time.Now())
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleProgram, "program", "", "only list sessions of this program id")
	scheduleCmd.Flags().IntVar(&scheduleCopy, "copy", 0, "copy the meeting link of this session id to the clipboard")
	rootCmd.AddCommand(scheduleCmd)
}

type systemClipboard struct{}

func (systemClipboard) WriteText(text string) error { return clipboard.WriteAll(text) }

// printSchedule lists the sessions, marking today's, and copies the link of
// session copyID when it is non-zero.
func printSchedule(_ context.Context, out io.Writer, sessions []domain.ClassSession, program string, copyID int, helper *share.Helper, now time.Time) error {
	var link string
	for _, s := range sessions {
		if program != "" && s.Program != program {
			continue
		}
		mark := " "
		if schedule.IsToday(s.Day, now) {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %3d  %-10s %-14s %s (%s)\n", mark, s.ID, s.Day, s.Time, s.Title, s.Teacher)
		if s.ID == copyID {
			link = s.MeetLink
		}
	}
	if copyID == 0 {
		return nil
	}
	if link == "" {
		return fmt.Errorf("no session %d with a meeting link", copyID)
	}
	if !helper.Copy(link) {
		return fmt.Errorf("failed to copy the link of session %d", copyID)
	}
	return nil
}
