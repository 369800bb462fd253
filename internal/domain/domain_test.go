package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageStateTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total has no pages", total: 0, limit: 20, want: 0},
		{name: "exact multiple", total: 40, limit: 20, want: 2},
		{name: "remainder rounds up", total: 45, limit: 20, want: 3},
		{name: "single short page", total: 7, limit: 50, want: 1},
		{name: "one record", total: 1, limit: 20, want: 1},
		{name: "zero limit is guarded", total: 45, limit: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &PageState{Total: tt.total, Limit: tt.limit}
			assert.Equal(t, tt.want, s.TotalPages())
		})
	}
}

func TestPageStateSearchResetsToFirstPage(t *testing.T) {
	s := NewPageState(ResourceUsers)
	s.Page = 4
	s.Total = 90

	s.ResetToFirstPage("ali")

	assert.Equal(t, 1, s.Page)
	assert.Equal(t, "ali", s.Search)
}

func TestPageStateApplyKeepsPriorTotalOnZeroValues(t *testing.T) {
	s := NewPageState(ResourceFoods)
	s.Apply(120, 2, 50)
	require.Equal(t, 120, s.Total)
	require.Equal(t, 2, s.Page)

	// A response echoing zero page/limit must not corrupt the state.
	s.Apply(118, 0, 0)
	assert.Equal(t, 118, s.Total)
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, 50, s.Limit)
}

func TestDefaultPageLimits(t *testing.T) {
	assert.Equal(t, 20, DefaultPageLimit(ResourceUsers))
	assert.Equal(t, 50, DefaultPageLimit(ResourceFoods))
	assert.Equal(t, 50, DefaultPageLimit(ResourceLogs))
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("operator@example.com"))

	var verr *ValidationError
	err := ValidateEmail("not-an-address")
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("   "))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  string
	}{
		{name: "matching pair of six passes", password: "secret", confirm: "secret"},
		{name: "length five is rejected", password: "short", confirm: "short", wantErr: "at least 6"},
		{name: "mismatch is rejected", password: "secret1", confirm: "secret2", wantErr: "do not match"},
		{name: "empty is rejected", password: "", confirm: "", wantErr: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.confirm)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseAmountCoercesLeniently(t *testing.T) {
	assert.Equal(t, 52.5, ParseAmount("52.5"))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 12.0, ParseAmount(" 12 "))
}

func TestParseOptionalFieldsBecomeAbsent(t *testing.T) {
	assert.Nil(t, ParseOptionalFloat(""))
	assert.Nil(t, ParseOptionalFloat("n/a"))
	require.NotNil(t, ParseOptionalFloat("72.4"))
	assert.Equal(t, 72.4, *ParseOptionalFloat("72.4"))

	assert.Nil(t, ParseOptionalInt(""))
	require.NotNil(t, ParseOptionalInt("29"))
	assert.Equal(t, 29, *ParseOptionalInt("29"))

	assert.Nil(t, OptionalString("  "))
	require.NotNil(t, OptionalString(" 100g "))
	assert.Equal(t, "100g", *OptionalString(" 100g "))
}

func TestNewFoodDraftDefaults(t *testing.T) {
	draft := NewFoodDraft("Elma", "", "0.3", "", "0.2", "", "", "")

	assert.Equal(t, 0.0, draft.Calories)
	assert.Equal(t, 0.3, draft.Protein)
	assert.Equal(t, 0.0, draft.Carbs)
	assert.Equal(t, DefaultFoodCategory, draft.Category)
	assert.Nil(t, draft.ServingSize)
	assert.Nil(t, draft.Barcode)
	require.NoError(t, draft.Validate())
}

func TestFoodDraftRequiresName(t *testing.T) {
	draft := NewFoodDraft("  ", "100", "", "", "", "", "Meyve", "")

	err := draft.Validate()
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUserUpdateValidatesEmail(t *testing.T) {
	update := UserUpdate{Email: "missing-at-sign"}
	require.Error(t, update.Validate())

	update.Email = "ayse@example.com"
	assert.NoError(t, update.Validate())
}
