package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/catalog"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/services"
)

// planFlags are shared by every subcommand.
type planFlags struct {
	catalog  string
	year     int
	reserved int
	quota    string
	json     bool
}

// service builds the plan. Lead and quota fall back to the catalog's
// preset unless set on the command line.
func (f *planFlags) service(cmd *cobra.Command) (*services.PlanService, error) {
	preset := catalog.PresetFor(f.catalog)
	if !cmd.Flags().Changed("reserved") {
		f.reserved = preset.ReservedLeadDays
	}
	if !cmd.Flags().Changed("quota") {
		f.quota = preset.QuotaTiers
	}

	units, err := catalog.ByName(f.catalog)
	if err != nil {
		return nil, err
	}
	if err := units.Validate(); err != nil {
		return nil, err
	}
	if f.year < 1 || f.year > 9999 {
		return nil, fmt.Errorf("year %d out of range", f.year)
	}
	if f.reserved < 0 {
		return nil, fmt.Errorf("reserved days must not be negative")
	}

	tiers, err := domain.ParseQuotaTiers(f.quota)
	if err != nil {
		return nil, err
	}

	return services.NewPlanService(services.PlanConfig{
		Year:             f.year,
		Catalog:          units,
		ReservedLeadDays: f.reserved,
		QuotaTiers:       tiers,
	}), nil
}

func SetVersion(root *cobra.Command, v string) {
	if v == "" {
		return
	}
	root.Version = v
	root.SetVersionTemplate("{{.Version}}\n")
}

// NewRootCommand builds the planctl command tree. Each call returns a fresh
// tree so tests can run commands independently.
func NewRootCommand() *cobra.Command {
	flags := &planFlags{}

	root := &cobra.Command{
		Use:     "planctl",
		Version: "dev",
		Short:   "Inspect the yearly reading plan",
		Long: `planctl generates the reading plan offline and prints single days,
whole months or the quota check, using the same generator as the API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.catalog, "catalog", catalog.NameBible, "content catalog ("+fmt.Sprint(catalog.Names())+")")
	pf.IntVar(&flags.year, "year", catalog.DefaultYear, "plan year")
	pf.IntVar(&flags.reserved, "reserved", catalog.DefaultReservedLeadDays, "preparation days at the start of the year (default: catalog preset)")
	pf.StringVar(&flags.quota, "quota", catalog.DefaultQuotaTiers, "daily quota tiers, e.g. 4x100,3 (default: catalog preset)")
	pf.BoolVar(&flags.json, "json", false, "output in JSON format")

	root.AddCommand(
		newTodayCommand(flags),
		newDayCommand(flags),
		newMonthCommand(flags),
		newVerifyCommand(flags),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
