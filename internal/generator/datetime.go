package generator

import (
	"fmt"
	"time"
)

// DateFormat is one of the supported date pattern keys.
type DateFormat string

const (
	FormatISO     DateFormat = "yyyy-MM-dd"
	FormatDMY     DateFormat = "dd/MM/yyyy"
	FormatMDY     DateFormat = "MM/dd/yyyy"
	FormatChinese DateFormat = "yyyy年MM月dd日"
)

var dateLayouts = map[DateFormat]string{
	FormatISO:     "2006-01-02",
	FormatDMY:     "02/01/2006",
	FormatMDY:     "01/02/2006",
	FormatChinese: "2006年01月02日",
}

// Layout returns the time layout of f. Unknown keys use the ISO layout.
func (f DateFormat) Layout() string {
	if layout, ok := dateLayouts[f]; ok {
		return layout
	}
	return dateLayouts[FormatISO]
}

const secondsPerDay = 24 * 60 * 60

// day truncates t to its UTC calendar date.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date returns a uniformly drawn calendar day in [start, end] rendered with format. Bounds are
// taken as UTC calendar days, both inclusive, and swapped if given in reverse.
func (g *Generator) Date(start, end time.Time, format DateFormat) string {
	start, end = day(start), day(end)
	if start.After(end) {
		start, end = end, start
	}
	// Counted in days: a time.Duration saturates after about 292 years.
	days := (end.Unix()-start.Unix())/secondsPerDay + 1
	offset := g.src.Uint64N(uint64(days))
	return start.AddDate(0, 0, int(offset)).Format(format.Layout())
}

// TimeSpec selects the clock style of a generated time.
type TimeSpec struct {
	Hour24  bool
	Seconds bool
}

// Time returns a uniformly drawn time of day. The 12-hour clock reads 12 for hour zero and
// carries an AM/PM suffix.
func (g *Generator) Time(spec TimeSpec) string {
	hour := g.intn(24)
	minute := g.intn(60)
	second := g.intn(60)

	h := hour
	if !spec.Hour24 {
		h = hour % 12
		if h == 0 {
			h = 12
		}
	}

	s := fmt.Sprintf("%02d:%02d", h, minute)
	if spec.Seconds {
		s += fmt.Sprintf(":%02d", second)
	}
	if !spec.Hour24 {
		if hour < 12 {
			s += " AM"
		} else {
			s += " PM"
		}
	}
	return s
}
