package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidQuotaTiers = errors.New("invalid quota tiers (expected PERDAYxDAYS[,PERDAY...])")

// QuotaSchedule returns how many sub-units are assigned on a given day of
// the year (1-based).
type QuotaSchedule func(dayOfYear int) int

// QuotaTier assigns PerDay sub-units for Days consecutive days.
// Days == 0 means the tier runs until the end of the year.
type QuotaTier struct {
	PerDay int `json:"per_day"`
	Days   int `json:"days,omitempty"`
}

func ConstantQuota(perDay int) QuotaSchedule {
	return func(int) int { return perDay }
}

// TieredQuota walks the tiers starting on the first day after the reserved
// lead. Days past the last bounded tier get zero.
func TieredQuota(reservedLeadDays int, tiers []QuotaTier) QuotaSchedule {
	copied := append([]QuotaTier(nil), tiers...)
	return func(day int) int {
		offset := day - reservedLeadDays
		if offset < 1 {
			return 0
		}
		for _, t := range copied {
			if t.Days == 0 || offset <= t.Days {
				return t.PerDay
			}
			offset -= t.Days
		}
		return 0
	}
}

// QuotaTotal sums a schedule over days 1..totalDays.
func QuotaTotal(q QuotaSchedule, totalDays int) int {
	total := 0
	for day := 1; day <= totalDays; day++ {
		if n := q(day); n > 0 {
			total += n
		}
	}
	return total
}

// ParseQuotaTiers reads the config form "4x100,3": four per day for a
// hundred days, then three per day for the rest of the year.
func ParseQuotaTiers(s string) ([]QuotaTier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidQuotaTiers
	}

	parts := strings.Split(s, ",")
	tiers := make([]QuotaTier, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		perStr, daysStr, bounded := strings.Cut(part, "x")

		perDay, err := strconv.Atoi(perStr)
		if err != nil || perDay < 0 {
			return nil, fmt.Errorf("%w: tier %d %q", ErrInvalidQuotaTiers, i+1, part)
		}

		tier := QuotaTier{PerDay: perDay}
		if bounded {
			days, err := strconv.Atoi(daysStr)
			if err != nil || days < 1 {
				return nil, fmt.Errorf("%w: tier %d %q", ErrInvalidQuotaTiers, i+1, part)
			}
			tier.Days = days
		} else if i != len(parts)-1 {
			return nil, fmt.Errorf("%w: only the last tier may be open-ended", ErrInvalidQuotaTiers)
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

func FormatQuotaTiers(tiers []QuotaTier) string {
	parts := make([]string, 0, len(tiers))
	for _, t := range tiers {
		if t.Days == 0 {
			parts = append(parts, strconv.Itoa(t.PerDay))
			continue
		}
		parts = append(parts, fmt.Sprintf("%dx%d", t.PerDay, t.Days))
	}
	return strings.Join(parts, ",")
}
