package refdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinIsValid(t *testing.T) {
	d := Builtin()
	require.NoError(t, d.Validate())
	assert.Equal(t, []string{RegionHokkaido, RegionTokyo}, d.RegionKeys())
}

func TestBuiltinReturnsIndependentCopies(t *testing.T) {
	a := Builtin()
	b := Builtin()

	a.Regions[RegionTokyo].AptitudeModifier = 99
	a.Coefficients.Scoring.IndustryScores["manufacturing"] = 1

	assert.InDelta(t, 2.0, b.Regions[RegionTokyo].AptitudeModifier, 1e-9)
	assert.InDelta(t, 65.0, b.Coefficients.Scoring.IndustryScores["manufacturing"], 1e-9)
}

func TestValidateRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Dataset)
		table  string
	}{
		{
			name:   "negative gender weight",
			mutate: func(d *Dataset) { d.Regions[RegionHokkaido].Genders[0].Weight = -1 },
			table:  "hokkaido.genders",
		},
		{
			name:   "no cities",
			mutate: func(d *Dataset) { d.Regions[RegionTokyo].Cities = nil },
			table:  "tokyo.cities",
		},
		{
			name:   "life weights off",
			mutate: func(d *Dataset) { d.Coefficients.Scoring.LifeWeights.Lifespan = 0.5 },
			table:  "scoring.life_weights",
		},
		{
			name:   "multiplier out of range",
			mutate: func(d *Dataset) { d.Coefficients.Scoring.CompanySizeMultiplier["small"] = 0.3 },
			table:  "scoring.company_size_multiplier",
		},
		{
			name:   "unsorted curve",
			mutate: func(d *Dataset) { d.Coefficients.Scoring.IncomeCurve[2].X = 1 },
			table:  "scoring.income_curve",
		},
		{
			name:   "rank gap",
			mutate: func(d *Dataset) { d.Coefficients.Scoring.Ranks[5].Min = 5 },
			table:  "scoring.ranks",
		},
		{
			name:   "reassignment does not sum to one",
			mutate: func(d *Dataset) { d.Coefficients.Scoring.Reassignment.Boosted = 0.5 },
			table:  "scoring.reassignment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Builtin()
			tt.mutate(d)

			err := d.Validate()
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.table, cfgErr.Table)
		})
	}
}

func TestUnknownRegion(t *testing.T) {
	_, err := Builtin().Region("osaka")
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadOverlayFromFile(t *testing.T) {
	overlayYAML := `
regions:
  tokyo:
    aptitude_modifier: 3.5
    genders:
      - key: male
        weight: 1
      - key: female
        weight: 3
coefficients:
  scoring:
    default_industry_score: 60
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlayYAML), 0600))

	d, err := Load(path)
	require.NoError(t, err)

	tokyo := d.Regions[RegionTokyo]
	assert.InDelta(t, 3.5, tokyo.AptitudeModifier, 1e-9)
	assert.Len(t, tokyo.Genders, 2)
	assert.InDelta(t, 3.0, tokyo.Genders[1].Weight, 1e-9)

	// untouched tables keep their built-in values
	assert.NotEmpty(t, tokyo.Cities)
	assert.True(t, tokyo.OpenDistrict)
	assert.InDelta(t, 60.0, d.Coefficients.Scoring.DefaultIndustryScore, 1e-9)
	assert.InDelta(t, 0.40, d.Coefficients.Scoring.LifeWeights.Lifespan, 1e-9)
	assert.InDelta(t, 100.0, d.Coefficients.Scoring.IndustryScores["information_communication"], 1e-9)
}

func TestLoadJSONOverlay(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "overlay.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"regions": {"hokkaido": {"default_university_rate": 45}}}`), 0600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, d.Regions[RegionHokkaido].DefaultUniversityRate, 1e-9)
}

func TestLoadRejectsInvalidOverlay(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("regions:\n  tokyo:\n    default_income:\n      - key: under_1m\n        weight: -5\n"), 0600))

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadEmptySourceIsBuiltin(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Len(t, d.Regions, 2)
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/overlay.yaml")
	assert.Error(t, err)
}

func TestFetchFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("regions:\n  hokkaido:\n    aptitude_modifier: -2\n"))
	}))
	defer server.Close()

	d, err := LoadWithContext(context.Background(), server.URL)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, d.Regions[RegionHokkaido].AptitudeModifier, 1e-9)
}

func TestFetchFromURLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestMarshalRoundTripsThroughApply(t *testing.T) {
	data, err := Marshal(Builtin())
	require.NoError(t, err)

	d := &Dataset{}
	require.NoError(t, Apply(d, data))
	require.NoError(t, d.Validate())
	assert.Equal(t, len(Builtin().Regions[RegionHokkaido].HighSchools), len(d.Regions[RegionHokkaido].HighSchools))
}

func TestCurveAt(t *testing.T) {
	c := Curve{{X: 0, Y: 0}, {X: 10, Y: 50}, {X: 20, Y: 100}}

	tests := []struct {
		x, want float64
	}{
		{-5, 0},
		{0, 0},
		{5, 25},
		{10, 50},
		{15, 75},
		{20, 100},
		{30, 100},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, c.At(tt.x), 1e-9, "x=%v", tt.x)
	}
	assert.InDelta(t, 0.0, Curve{}.At(5), 1e-9)
}
