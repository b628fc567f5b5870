package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

const (
	DayIDLayout      = "2006-01-02"
	PreparationLabel = "Dia de Preparação"
	summarySeparator = ", "
)

var (
	ErrDayNotFound  = errors.New("reading day not found")
	ErrInvalidMonth = errors.New("invalid month (must be 1-12)")
)

// ReadingDay is one calendar day of a plan. It is built once by the
// generator and never mutated afterwards.
type ReadingDay struct {
	ID            string    `json:"id"`
	DayOfYear     int       `json:"day_of_year"`
	Date          time.Time `json:"date"`
	AssignedUnits []string  `json:"assigned_units"`
	Summary       string    `json:"summary"`
}

func (d ReadingDay) IsPreparation() bool {
	return len(d.AssignedUnits) == 0
}

// Week is the 1-based week of the plan the day falls in.
func (d ReadingDay) Week() int {
	return (d.DayOfYear + 6) / 7
}

type Plan struct {
	Year int                   `json:"year"`
	Days map[string]ReadingDay `json:"days"`
}

func DaysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

func DayID(t time.Time) string {
	return t.Format(DayIDLayout)
}

// GeneratePlan distributes the catalog over every day of year, starting on
// January 1st.
func GeneratePlan(year int, catalog Catalog, reservedLeadDays int, quota QuotaSchedule) Plan {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return GeneratePlanSpan(start, DaysInYear(year), catalog, reservedLeadDays, quota)
}

// GeneratePlanSpan distributes the catalog over totalDays consecutive days
// from start. Days are numbered from 1; that number is what the quota
// schedule and the reserved lead are measured against.
//
// A quota/catalog mismatch is not an error: when the catalog runs out the
// current day is cut short and every later day stays empty.
func GeneratePlanSpan(start time.Time, totalDays int, catalog Catalog, reservedLeadDays int, quota QuotaSchedule) Plan {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	plan := Plan{
		Year: start.Year(),
		Days: make(map[string]ReadingDay, max(totalDays, 0)),
	}

	cur := cursor{catalog: catalog, subUnit: 1}
	cur.skipEmpty()

	for day := 1; day <= totalDays; day++ {
		date := start.AddDate(0, 0, day-1)

		var units []string
		if day > reservedLeadDays && quota != nil {
			units = cur.take(quota(day))
		}
		if units == nil {
			units = []string{}
		}

		summary := PreparationLabel
		if len(units) > 0 {
			summary = strings.Join(units, summarySeparator)
		}

		id := DayID(date)
		plan.Days[id] = ReadingDay{
			ID:            id,
			DayOfYear:     day,
			Date:          date,
			AssignedUnits: units,
			Summary:       summary,
		}
	}

	return plan
}

type cursor struct {
	catalog Catalog
	unit    int
	subUnit int
}

func (c *cursor) done() bool {
	return c.unit >= len(c.catalog)
}

func (c *cursor) skipEmpty() {
	for !c.done() && c.catalog[c.unit].SubUnitCount < 1 {
		c.unit++
	}
}

func (c *cursor) take(n int) []string {
	var out []string
	for i := 0; i < n && !c.done(); i++ {
		u := c.catalog[c.unit]
		out = append(out, u.label(c.subUnit))

		c.subUnit++
		if c.subUnit > u.SubUnitCount {
			c.subUnit = 1
			c.unit++
			c.skipEmpty()
		}
	}
	return out
}

func (p Plan) Len() int {
	return len(p.Days)
}

func (p Plan) Day(id string) (ReadingDay, error) {
	d, ok := p.Days[id]
	if !ok {
		return ReadingDay{}, ErrDayNotFound
	}
	return d, nil
}

// Ordered returns the days sorted by DayOfYear.
func (p Plan) Ordered() []ReadingDay {
	days := make([]ReadingDay, 0, len(p.Days))
	for _, d := range p.Days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].DayOfYear < days[j].DayOfYear
	})
	return days
}

// Today looks up the reading for a date. Dates outside the plan fall back to
// the plan's first day.
func (p Plan) Today(date time.Time) ReadingDay {
	if d, ok := p.Days[DayID(date)]; ok {
		return d
	}
	// Other years map onto the same month and day of the plan year.
	if date.Year() != p.Year {
		shifted := time.Date(p.Year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		if shifted.Month() == date.Month() {
			if d, ok := p.Days[DayID(shifted)]; ok {
				return d
			}
		}
	}
	return p.first()
}

func (p Plan) first() ReadingDay {
	var first ReadingDay
	for _, d := range p.Days {
		if first.ID == "" || d.DayOfYear < first.DayOfYear {
			first = d
		}
	}
	return first
}

func (p Plan) Month(month int) ([]ReadingDay, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	var days []ReadingDay
	for _, d := range p.Ordered() {
		if int(d.Date.Month()) == month {
			days = append(days, d)
		}
	}
	return days, nil
}

// AssignedCount is the number of sub-units placed across all days.
func (p Plan) AssignedCount() int {
	total := 0
	for _, d := range p.Days {
		total += len(d.AssignedUnits)
	}
	return total
}

// AssignedSequence concatenates every day's units in day order.
func (p Plan) AssignedSequence() []string {
	seq := make([]string, 0, p.AssignedCount())
	for _, d := range p.Ordered() {
		seq = append(seq, d.AssignedUnits...)
	}
	return seq
}
