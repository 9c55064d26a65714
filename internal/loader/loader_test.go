package loader

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testColumns() contract.ColumnMapping {
	return contract.ColumnMapping{
		JumpCol:  "jump_height_cm",
		BatCol:   "bat_speed_mph",
		LevelCol: "playing_level",
		IDCol:    "athlete_id",
	}
}

// TestLoadForceSeries_Valid tests a clean force-time file.
func TestLoadForceSeries_Valid(t *testing.T) {
	path := writeTempCSV(t, "time_s,force_n\n0,800\n0.001,805\n0.002,812\n")

	series, err := LoadForceSeries(path, 1000)
	require.NoError(t, err)
	require.Equal(t, 3, series.Len())
	assert.InDelta(t, 0.001, series.Samples[1].TimeS, 1e-12)
	assert.InDelta(t, 812, series.Samples[2].ForceN, 1e-12)
	assert.Equal(t, 1000, series.SamplingRate)
}

// TestLoadForceSeries_HeaderWhitespace tests trimmed header matching.
func TestLoadForceSeries_HeaderWhitespace(t *testing.T) {
	path := writeTempCSV(t, " time_s , force_n \n0,800\n0.001,805\n")

	series, err := LoadForceSeries(path, 500)
	require.NoError(t, err)
	assert.Equal(t, 2, series.Len())
}

// TestLoadForceSeries_Errors covers each rejection path.
func TestLoadForceSeries_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errSub  string
	}{
		{
			name:    "missing columns",
			content: "timestamp,newtons\n0,800\n",
			errSub:  "must have columns time_s, force_n",
		},
		{
			name:    "header only",
			content: "time_s,force_n\n",
			errSub:  "looks empty",
		},
		{
			name:    "bad time cell",
			content: "time_s,force_n\n0,800\nabc,805\n",
			errSub:  "row 3: bad time_s value",
		},
		{
			name:    "bad force cell",
			content: "time_s,force_n\n0,800\n0.001,?\n",
			errSub:  "row 3: bad force_n value",
		},
		{
			name:    "time goes backwards",
			content: "time_s,force_n\n0.002,800\n0.001,805\n",
			errSub:  "time went backwards",
		},
		{
			name:    "short row missing force cell",
			content: "time_s,force_n\n0,800\n0.5\n",
			errSub:  "row 3: bad force_n value",
		},
		{
			name:    "empty data row",
			content: "time_s,force_n\n0,800\n\"\"\n",
			errSub:  "row 3: bad time_s value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadForceSeries(writeTempCSV(t, tt.content), 1000)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

// TestLoadForceSeries_MissingFile tests the open failure path.
func TestLoadForceSeries_MissingFile(t *testing.T) {
	_, err := LoadForceSeries(filepath.Join(t.TempDir(), "nope.csv"), 1000)
	assert.ErrorContains(t, err, "cannot open")
}

// TestLoadAthleteDataset_Valid tests full column mapping.
func TestLoadAthleteDataset_Valid(t *testing.T) {
	path := writeTempCSV(t,
		"athlete_id,playing_level,jump_height_cm,bat_speed_mph\n"+
			"a1,College,45.5,72.3\n"+
			"a2,Pro,50,78\n")

	samples, err := LoadAthleteDataset(path, testColumns())
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "a1", samples[0].AthleteID)
	assert.Equal(t, schema.CollegeLevel, samples[0].Level)
	assert.InDelta(t, 45.5, samples[0].JumpHeightCM, 1e-12)
	assert.InDelta(t, 78, samples[1].BatSpeedMPH, 1e-12)
}

// TestLoadAthleteDataset_BadCellsBecomeNaN checks that unparsable numeric
// cells survive loading as NaN instead of failing the file.
func TestLoadAthleteDataset_BadCellsBecomeNaN(t *testing.T) {
	path := writeTempCSV(t,
		"athlete_id,playing_level,jump_height_cm,bat_speed_mph\n"+
			"a1,College,not-a-number,72.3\n"+
			"a2,College,45,\n")

	samples, err := LoadAthleteDataset(path, testColumns())
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.True(t, math.IsNaN(samples[0].JumpHeightCM))
	assert.True(t, math.IsNaN(samples[1].BatSpeedMPH))
	assert.False(t, samples[0].Usable())
	assert.False(t, samples[1].Usable())
}

// TestLoadAthleteDataset_OptionalColumns checks loading without level/ID.
func TestLoadAthleteDataset_OptionalColumns(t *testing.T) {
	path := writeTempCSV(t, "jump_height_cm,bat_speed_mph\n45,70\n50,75\n")

	samples, err := LoadAthleteDataset(path, testColumns())
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Empty(t, samples[0].AthleteID)
	assert.Empty(t, string(samples[0].Level))
}

// TestLoadAthleteDataset_MissingRequiredColumns tests explicit mapping: no
// fuzzy matching, a missing mapped column is an error.
func TestLoadAthleteDataset_MissingRequiredColumns(t *testing.T) {
	path := writeTempCSV(t, "jump_cm,bat_speed_mph\n45,70\n")

	_, err := LoadAthleteDataset(path, testColumns())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing jump height column "jump_height_cm"`)
}

// TestLoadAthleteDataset_ShortRows checks that rows with fewer cells than the
// header are tolerated and pad with NaN/empty.
func TestLoadAthleteDataset_ShortRows(t *testing.T) {
	path := writeTempCSV(t,
		"jump_height_cm,bat_speed_mph,playing_level\n"+
			"45,70,College\n"+
			"50,75\n")

	samples, err := LoadAthleteDataset(path, testColumns())
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Empty(t, string(samples[1].Level))
	assert.True(t, samples[1].Usable())
}
