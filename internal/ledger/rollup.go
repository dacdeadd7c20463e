package ledger

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one dated amount feeding a period rollup.
type Entry struct {
	Date   time.Time
	Amount decimal.Decimal
}

// BuildYearRollup assembles a year → month → day tree from the given
// entries. Entries outside the year are skipped. Day and month groups are
// created on demand in chronological order; leaves within a day keep the
// input order of equal dates.
func BuildYearRollup(year int, entries []Entry) (*Group, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	root := NewGroup(strconv.Itoa(year))
	months := make(map[time.Month]*Group)
	days := make(map[string]*Group)

	for _, entry := range sorted {
		if entry.Date.Year() != year {
			continue
		}

		leaf, err := NewLeaf(entry.Amount)
		if err != nil {
			return nil, err
		}

		month, ok := months[entry.Date.Month()]
		if !ok {
			month = NewGroup(entry.Date.Format("2006-01"))
			months[entry.Date.Month()] = month
			root.Add(month)
		}

		dayKey := entry.Date.Format("2006-01-02")
		day, ok := days[dayKey]
		if !ok {
			day = NewGroup(dayKey)
			days[dayKey] = day
			month.Add(day)
		}

		day.Add(leaf)
	}

	return root, nil
}

// BuildWeekRollup assembles a single-week group (ISO week of the given date)
// with one day group per day that has entries.
func BuildWeekRollup(anchor time.Time, entries []Entry) (*Group, error) {
	year, week := anchor.ISOWeek()
	root := NewGroup(strconv.Itoa(year) + "-W" + strconv.Itoa(week))

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	days := make(map[string]*Group)
	for _, entry := range sorted {
		y, w := entry.Date.ISOWeek()
		if y != year || w != week {
			continue
		}

		leaf, err := NewLeaf(entry.Amount)
		if err != nil {
			return nil, err
		}

		dayKey := entry.Date.Format("2006-01-02")
		day, ok := days[dayKey]
		if !ok {
			day = NewGroup(dayKey)
			days[dayKey] = day
			root.Add(day)
		}
		day.Add(leaf)
	}

	return root, nil
}
