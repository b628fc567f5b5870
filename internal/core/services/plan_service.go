package services

import (
	"time"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/catalog"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

// PlanConfig is everything the generator needs; it comes from configuration.
type PlanConfig struct {
	Year             int
	Catalog          domain.Catalog
	ReservedLeadDays int
	QuotaTiers       []domain.QuotaTier
}

// PlanService serves one plan generated at construction. It is read-only
// and safe for concurrent use.
type PlanService struct {
	cfg        PlanConfig
	plan       domain.Plan
	quotaTotal int
}

func NewPlanService(cfg PlanConfig) *PlanService {
	quota := domain.TieredQuota(cfg.ReservedLeadDays, cfg.QuotaTiers)
	return &PlanService{
		cfg:        cfg,
		plan:       domain.GeneratePlan(cfg.Year, cfg.Catalog, cfg.ReservedLeadDays, quota),
		quotaTotal: domain.QuotaTotal(quota, domain.DaysInYear(cfg.Year)),
	}
}

type TodayReading struct {
	domain.ReadingDay
	Week    int    `json:"week"`
	Message string `json:"message"`
}

type PlanVerification struct {
	Year             int    `json:"year"`
	Days             int    `json:"days"`
	ReservedLeadDays int    `json:"reserved_lead_days"`
	QuotaTiers       string `json:"quota_tiers"`
	CatalogUnits     int    `json:"catalog_units"`
	QuotaTotal       int    `json:"quota_total"`
	AssignedUnits    int    `json:"assigned_units"`
	Unassigned       int    `json:"unassigned_units"`
	Consistent       bool   `json:"consistent"`
}

func (s *PlanService) Plan() domain.Plan {
	return s.plan
}

func (s *PlanService) Today(date time.Time) TodayReading {
	day := s.plan.Today(date)
	return TodayReading{
		ReadingDay: day,
		Week:       day.Week(),
		Message:    catalog.MessageFor(day.DayOfYear),
	}
}

func (s *PlanService) Day(id string) (domain.ReadingDay, error) {
	return s.plan.Day(id)
}

func (s *PlanService) Month(month int) ([]domain.ReadingDay, error) {
	return s.plan.Month(month)
}

// Verify compares what the plan assigned against the catalog and quota
// totals. The generator truncates silently; this is where drift shows up.
func (s *PlanService) Verify() PlanVerification {
	catalogTotal := s.cfg.Catalog.TotalSubUnits()
	assigned := s.plan.AssignedCount()

	return PlanVerification{
		Year:             s.plan.Year,
		Days:             s.plan.Len(),
		ReservedLeadDays: s.cfg.ReservedLeadDays,
		QuotaTiers:       domain.FormatQuotaTiers(s.cfg.QuotaTiers),
		CatalogUnits:     catalogTotal,
		QuotaTotal:       s.quotaTotal,
		AssignedUnits:    assigned,
		Unassigned:       catalogTotal - assigned,
		Consistent:       catalogTotal == s.quotaTotal && assigned == catalogTotal,
	}
}
