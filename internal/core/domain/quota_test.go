package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

func TestTieredQuota(t *testing.T) {
	quota := domain.TieredQuota(2, []domain.QuotaTier{
		{PerDay: 4, Days: 100},
		{PerDay: 3},
	})

	assert.Equal(t, 0, quota(1))
	assert.Equal(t, 0, quota(2))
	assert.Equal(t, 4, quota(3))
	assert.Equal(t, 4, quota(102))
	assert.Equal(t, 3, quota(103))
	assert.Equal(t, 3, quota(365))

	assert.Equal(t, 400+263*3, domain.QuotaTotal(quota, 365))
}

func TestTieredQuota_BoundedTiersEndAtZero(t *testing.T) {
	quota := domain.TieredQuota(0, []domain.QuotaTier{{PerDay: 2, Days: 3}})

	assert.Equal(t, 2, quota(3))
	assert.Equal(t, 0, quota(4))
	assert.Equal(t, 6, domain.QuotaTotal(quota, 10))
}

func TestTieredQuota_CopiesTiers(t *testing.T) {
	tiers := []domain.QuotaTier{{PerDay: 2}}
	quota := domain.TieredQuota(0, tiers)

	tiers[0].PerDay = 9

	assert.Equal(t, 2, quota(1))
}

func TestParseQuotaTiers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []domain.QuotaTier
		wantErr bool
	}{
		{
			name:  "Default plan tiers",
			input: "4x100,3",
			want:  []domain.QuotaTier{{PerDay: 4, Days: 100}, {PerDay: 3}},
		},
		{
			name:  "Whitespace and uppercase X",
			input: " 5X10 , 2x20 ",
			want:  []domain.QuotaTier{{PerDay: 5, Days: 10}, {PerDay: 2, Days: 20}},
		},
		{
			name:  "Single open tier",
			input: "3",
			want:  []domain.QuotaTier{{PerDay: 3}},
		},
		{name: "Empty", input: "", wantErr: true},
		{name: "Not a number", input: "fourx100", wantErr: true},
		{name: "Negative per day", input: "-1x10", wantErr: true},
		{name: "Zero days", input: "4x0", wantErr: true},
		{name: "Open tier not last", input: "4,3x10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseQuotaTiers(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidQuotaTiers)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatQuotaTiers(t *testing.T) {
	tiers := []domain.QuotaTier{{PerDay: 4, Days: 100}, {PerDay: 3}}
	assert.Equal(t, "4x100,3", domain.FormatQuotaTiers(tiers))

	parsed, err := domain.ParseQuotaTiers(domain.FormatQuotaTiers(tiers))
	require.NoError(t, err)
	assert.Equal(t, tiers, parsed)
}

func TestCatalog_Validate(t *testing.T) {
	assert.NoError(t, smallCatalog().Validate())
	assert.ErrorIs(t, domain.Catalog{}.Validate(), domain.ErrCatalogEmpty)
	assert.ErrorIs(t, domain.Catalog{{Name: " ", SubUnitCount: 1}}.Validate(), domain.ErrUnitNameEmpty)
	assert.ErrorIs(t, domain.Catalog{{Name: "A", SubUnitCount: 0}}.Validate(), domain.ErrUnitSubUnitsNotPos)

	t.Run("Success: Free-text blocks", func(t *testing.T) {
		assert.NoError(t, domain.CatalogFromBlocks([]string{"Salmos 1-2", "Provérbios 1"}).Validate())
	})

	t.Run("Fail: Block spanning several sub-units", func(t *testing.T) {
		repeated := domain.Catalog{{Name: "Salmos 1-2", SubUnitCount: 3, Block: true}}
		assert.ErrorIs(t, repeated.Validate(), domain.ErrBlockUnitCount)
	})
}

func TestCatalog_SubUnits(t *testing.T) {
	assert.Equal(t, 5, smallCatalog().TotalSubUnits())
	assert.Equal(t, []string{"A 1", "A 2", "B 1", "B 2", "B 3"}, smallCatalog().SubUnits())
}
