package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/ui/anim"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show live registration statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newClient().Statistics(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load statistics: %w", err)
		}
		animateStats(cmd.OutOrStdout(), stats, anim.TickerScheduler{})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statLabels = []struct{ id, label string }{
	{"total", "الطلاب"},
	{"active", "النشطون"},
	{"recent", "آخر 30 يوما"},
}

// animateStats counts every statistic up on one terminal line and returns when
// all counters have reached their targets.
func animateStats(out io.Writer, stats domain.RegistrationStats, s anim.FrameScheduler) {
	targets := map[string]int{
		"total":  stats.TotalStudents,
		"active": stats.ActiveStudents,
		"recent": stats.RecentRegistrations,
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	shown := make(map[string]string, len(targets))
	draw := func(id, text string) {
		mu.Lock()
		defer mu.Unlock()
		shown[id] = text
		parts := make([]string, 0, len(statLabels))
		for _, l := range statLabels {
			parts = append(parts, fmt.Sprintf("%s: %s", l.label, shown[l.id]))
		}
		fmt.Fprintf(out, "\r%s", strings.Join(parts, "  "))
		if strings.HasSuffix(text, "+") {
			wg.Done()
		}
	}

	observer := anim.NewObserver(s)
	for _, l := range statLabels {
		shown[l.id] = "0"
		observer.Observe(anim.NewCounter(l.id, targets[l.id], draw))
	}
	wg.Add(len(statLabels))
	for _, l := range statLabels {
		observer.Visibility(l.id, 1)
	}
	wg.Wait()
	fmt.Fprintln(out)

	for _, program := range slices.Sorted(maps.Keys(stats.ProgramsDistribution)) {
		fmt.Fprintf(out, "  %s: %d\n", program, stats.ProgramsDistribution[program])
	}
}
