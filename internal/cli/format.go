package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

// fatih/color disables itself when output is not a TTY.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

func printDay(w io.Writer, d domain.ReadingDay) {
	headerColor.Fprintf(w, "▸ %s (day %d)\n", d.ID, d.DayOfYear)
	fmt.Fprintln(w, daySummary(d))
	if len(d.AssignedUnits) > 0 {
		fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("Units:"), strings.Join(d.AssignedUnits, ", "))
	}
}

func daySummary(d domain.ReadingDay) string {
	if d.IsPreparation() {
		return dimColor.Sprint(d.Summary)
	}
	return d.Summary
}
