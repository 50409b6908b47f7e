// Package calendar lays out a month for display and matches events to its days.
package calendar

import (
	"fmt"
	"time"

	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
)

const DateLayout = "2006-01-02"

// Month is a calendar month; Month.Month is 1-based.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing `t`.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Parse returns the month named by `year` and `month`, falling back to `fallback` for out-of-range values.
func Parse(year, month int, fallback Month) Month {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return fallback
	}
	return Month{Year: year, Month: time.Month(month)}
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Prev() Month { return MonthOf(m.first().AddDate(0, -1, 0)) }

func (m Month) Next() Month { return MonthOf(m.first().AddDate(0, 1, 0)) }

// Days is the number of days in the month.
func (m Month) Days() int {
	return m.first().AddDate(0, 1, -1).Day()
}

// Date formats `day` of the month as an event date.
func (m Month) Date(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}

// Day is one cell of the grid. Day 0 is a blank cell before the first of the month.
type Day struct {
	Day    int
	Date   string
	Today  bool
	Events []gateway.Event
}

func (d Day) Blank() bool { return d.Day == 0 }

// Grid returns the month's cells, weeks starting on Sunday, preceded by one blank cell
// per weekday before the first of the month. `today` flags the matching cell.
func Grid(m Month, events []gateway.Event, today time.Time) []Day {
	lead := int(m.first().Weekday())
	days := m.Days()
	todayDate := today.Format(DateLayout)

	grid := make([]Day, 0, lead+days)
	for i := 0; i < lead; i++ {
		grid = append(grid, Day{})
	}
	for d := 1; d <= days; d++ {
		date := m.Date(d)
		grid = append(grid, Day{
			Day:    d,
			Date:   date,
			Today:  date == todayDate,
			Events: EventsOn(events, date),
		})
	}
	return grid
}

// Weeks splits a grid into rows of seven, padding the last one with blanks.
func Weeks(grid []Day) [][]Day {
	var weeks [][]Day
	for len(grid) > 0 {
		n := 7
		if len(grid) < n {
			n = len(grid)
		}
		week := append(make([]Day, 0, 7), grid[:n]...)
		for len(week) < 7 {
			week = append(week, Day{})
		}
		weeks = append(weeks, week)
		grid = grid[n:]
	}
	return weeks
}

// EventsOn returns, in order, the events whose date is `date` (YYYY-MM-DD).
func EventsOn(events []gateway.Event, date string) []gateway.Event {
	var matched []gateway.Event
	for _, e := range events {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched
}
