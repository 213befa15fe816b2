// Package schedule decorates the weekly class schedule for the current day.
package schedule

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// TodayLabel is the text of the badge added to today's classes.
const TodayLabel = "اليوم"

// arabicWeekdays is indexed by time.Weekday (Sunday first), matching the
// long weekday names used in the ar-DZ locale.
var arabicWeekdays = [7]string{
	"الأحد",
	"الاثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// ArabicWeekday returns the long Arabic name of t's weekday.
func ArabicWeekday(t time.Time) string {
	return arabicWeekdays[t.Weekday()]
}

// Card is a schedule card with its displayed day badge.
type Card struct {
	ClassID  int
	DayBadge string
	Today    bool
}

// IsToday reports whether a day badge names the weekday of now.
func IsToday(dayBadge string, now time.Time) bool {
	return strings.Contains(norm.NFC.String(dayBadge), norm.NFC.String(ArabicWeekday(now)))
}

// Highlight marks the cards whose badge contains today's weekday.
func Highlight(cards []Card, now time.Time) []Card {
	for i := range cards {
		cards[i].Today = IsToday(cards[i].DayBadge, now)
	}
	return cards
}
