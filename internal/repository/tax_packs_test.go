package repository

import (
	"errors"
	"testing"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/taxengine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func assertSameBrackets(t *testing.T, want, got model.BracketTable) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Min.Equal(got[i].Min), "bracket %d min", i)
		assert.True(t, want[i].Rate.Equal(got[i].Rate), "bracket %d rate", i)
		assert.True(t, want[i].FixedAmount.Equal(got[i].FixedAmount), "bracket %d fixed", i)
		assert.Equal(t, want[i].Unbounded(), got[i].Unbounded(), "bracket %d bounds", i)
		if !want[i].Unbounded() {
			assert.True(t, want[i].Max.Decimal.Equal(got[i].Max.Decimal), "bracket %d max", i)
		}
	}
}

func TestTaxPackDocument_Namibia(t *testing.T) {
	pack := taxengine.DefaultNamibiaPack()

	doc, err := NewTaxPackDocument(pack, "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, "NA", doc.Country)
	assert.Equal(t, 2025, doc.Year)
	assert.Equal(t, 3, doc.Month)
	assert.Equal(t, "ops@example.com", doc.CreatedBy)
	assert.Nil(t, doc.Brackets[len(doc.Brackets)-1].Max)
	assert.Len(t, doc.Rates, 5)

	back, err := doc.ToModel()
	require.NoError(t, err)
	na, ok := back.(*model.NamibiaTaxPack)
	require.True(t, ok)
	assert.Equal(t, pack.PackPeriod, na.PackPeriod)
	assertSameBrackets(t, pack.PAYEBrackets, na.PAYEBrackets)
	assert.True(t, pack.SSCEmployeeRate.Equal(na.SSCEmployeeRate))
	assert.True(t, pack.SSCMaxCeiling.Equal(na.SSCMaxCeiling))
	assert.True(t, pack.VETLevyRate.Equal(na.VETLevyRate))
	assert.NoError(t, na.Validate())
}

func TestTaxPackDocument_SouthAfrica(t *testing.T) {
	pack := taxengine.DefaultSouthAfricaPack()

	doc, err := NewTaxPackDocument(pack, "")
	require.NoError(t, err)
	assert.Equal(t, "ZA", doc.Country)
	assert.Len(t, doc.Rates, 7)

	back, err := doc.ToModel()
	require.NoError(t, err)
	za, ok := back.(*model.SouthAfricaTaxPack)
	require.True(t, ok)
	assertSameBrackets(t, pack.PAYEBrackets, za.PAYEBrackets)
	assert.True(t, pack.PrimaryRebate.Equal(za.PrimaryRebate))
	assert.True(t, pack.TertiaryRebate.Equal(za.TertiaryRebate))
	assert.True(t, pack.UIFMaxCeiling.Equal(za.UIFMaxCeiling))
	assert.True(t, pack.SDLRate.Equal(za.SDLRate))
}

func TestTaxPackDocument_ToModelErrors(t *testing.T) {
	t.Run("unknown country", func(t *testing.T) {
		doc := &TaxPackDocument{Country: "BW"}
		_, err := doc.ToModel()
		assert.True(t, errors.Is(err, model.ErrUnsupportedJurisdiction))
	})

	t.Run("missing rate", func(t *testing.T) {
		doc, err := NewTaxPackDocument(taxengine.DefaultSouthAfricaPack(), "")
		require.NoError(t, err)
		delete(doc.Rates, rateSDL)

		_, err = doc.ToModel()
		require.Error(t, err)
		assert.Contains(t, err.Error(), rateSDL)
	})
}

func TestDecimal128Conversion(t *testing.T) {
	for _, s := range []string{"0", "0.009", "17712", "2479.1666666666666666"} {
		d := decimal.RequireFromString(s)
		v, err := toDecimal128(d)
		require.NoError(t, err)
		back, err := fromDecimal128(v)
		require.NoError(t, err)
		assert.True(t, d.Equal(back), s)
	}

	_, err := fromDecimal128(primitive.NewDecimal128(0x7c00000000000000, 0))
	assert.Error(t, err, "NaN has no decimal form")
}
