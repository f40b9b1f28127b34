package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTarget(t *testing.T) Target {
	t.Helper()
	target, err := ParseTarget("12345678.01", "1234.01")
	require.NoError(t, err)
	return target
}

func TestClassify(t *testing.T) {
	target := testTarget(t)

	cases := []struct {
		name     string
		filename string

		wantDesc   Descriptor
		wantDate   string
		wantObs    string
		wantFilter string
		wantPx     string
		wantReason string
	}{
		{
			name:     "measurement table",
			filename: "TIC12345678-01_20230115_ObsA_V_measurements.tbl",
			wantDesc: DescMeasurementTable, wantDate: "20230115", wantObs: "ObsA", wantFilter: "V",
		},
		{
			name:     "measurement table with pixel size",
			filename: "TIC12345678-01_20230115_ObsA_V_20px_measurements.tbl",
			wantDesc: DescMeasurementTable, wantDate: "20230115", wantObs: "ObsA", wantFilter: "V", wantPx: "20",
		},
		{
			name:     "notes file",
			filename: "TIC12345678-01_20230115_ObsA_V_notes.txt",
			wantDesc: DescNotes, wantDate: "20230115", wantObs: "ObsA", wantFilter: "V",
		},
		{
			name:     "plate solved image",
			filename: "TIC12345678-01_20230115_ObsA_V_WCS.fits",
			wantDesc: DescPlateSolved, wantDate: "20230115", wantObs: "ObsA", wantFilter: "V",
		},
		{
			name:     "NEB check zip outranks bare tail",
			filename: "TIC12345678-01_20230115_ObsA_V_measurements_NEBcheck.zip",
			wantDesc: DescNEBDepthPlots, wantDate: "20230115", wantObs: "ObsA", wantFilter: "V",
		},
		{
			name:     "filter with plus sign",
			filename: "TIC12345678-01_20230115_ObsA_g+r_lightcurve.png",
			wantDesc: DescLightCurve, wantDate: "20230115", wantObs: "ObsA", wantFilter: "g+r",
		},
		{
			name:     "observatory with dash",
			filename: "TIC12345678-01_20230115_Obs-North_ip_field.png",
			wantDesc: DescFieldImage, wantDate: "20230115", wantObs: "Obs-North", wantFilter: "ip",
		},
		{
			name:       "pattern mismatch",
			filename:   "random-file.png",
			wantReason: ReasonPatternMismatch,
		},
		{
			name:       "date too short",
			filename:   "TIC12345678-01_2023_ObsA_V_notes.txt",
			wantReason: ReasonPatternMismatch,
		},
		{
			name:       "wrong TIC number",
			filename:   "TIC99999999-01_20230115_ObsA_V_notes.txt",
			wantReason: ReasonPrefixMismatch,
		},
		{
			name:       "wrong planet index",
			filename:   "TIC12345678-02_20230115_ObsA_V_notes.txt",
			wantReason: ReasonPrefixMismatch,
		},
		{
			name:       "unrecognized tail",
			filename:   "TIC12345678-01_20230115_ObsA_V_mystery.dat",
			wantReason: ReasonUnknownRole,
		},
		{
			name:       "tail must fullmatch",
			filename:   "TIC12345678-01_20230115_ObsA_V_old-measurements.tbl.bak",
			wantReason: ReasonUnknownRole,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rec, rej := Classify(tt.filename, target)
			if tt.wantReason != "" {
				require.Nil(t, rec)
				require.NotNil(t, rej)
				assert.Equal(t, tt.filename, rej.Filename)
				assert.Equal(t, tt.wantReason, rej.Reason)
				return
			}
			require.NotNil(t, rec)
			require.Nil(t, rej)
			assert.Equal(t, tt.filename, rec.Filename)
			assert.Equal(t, tt.wantDesc, rec.Descriptor)
			assert.Equal(t, tt.wantDate, rec.Date)
			assert.Equal(t, tt.wantObs, rec.Observatory)
			assert.Equal(t, tt.wantFilter, rec.Filter)
			assert.Equal(t, tt.wantPx, rec.PixelSize)
		})
	}
}

// Classification is total: every input yields exactly one of record or
// rejection, never both, never neither.
func TestClassify_Total(t *testing.T) {
	target := testTarget(t)
	inputs := []string{
		"",
		"TIC12345678-01_20230115_ObsA_V_measurements.tbl",
		"TIC12345678-01_20230115_ObsA_V_nonsense",
		"notes.txt",
	}
	for _, in := range inputs {
		rec, rej := Classify(in, target)
		assert.True(t, (rec == nil) != (rej == nil), "input %q", in)
	}
}

func TestParseTarget(t *testing.T) {
	cases := []struct {
		name    string
		tic     string
		toi     string
		wantErr bool

		wantPrefix string
		wantPlanet string
		wantTitle  string
	}{
		{
			name: "tic and toi", tic: "12345678.01", toi: "1234.01",
			wantPrefix: "TIC12345678-01", wantPlanet: "TOI1234.01",
			wantTitle: "TIC 12345678.01 (TOI 1234.01)",
		},
		{
			name: "no toi sentinel", tic: "12345678.02", toi: "0",
			wantPrefix: "TIC12345678-02", wantPlanet: "",
			wantTitle: "TIC 12345678.02 (no TOI identifier)",
		},
		{name: "whitespace tolerated", tic: " 12345678.01 ", toi: " 0 ",
			wantPrefix: "TIC12345678-01", wantPlanet: "",
			wantTitle: "TIC 12345678.01 (no TOI identifier)"},
		{name: "bad tic", tic: "12345678", toi: "0", wantErr: true},
		{name: "one-digit planet index", tic: "12345678.1", toi: "0", wantErr: true},
		{name: "bad toi", tic: "12345678.01", toi: "1234", wantErr: true},
		{name: "mismatched planet index", tic: "12345678.01", toi: "1234.02", wantErr: true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			target, err := ParseTarget(tt.tic, tt.toi)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, target.Prefix())
			assert.Equal(t, tt.wantPlanet, target.PlanetLabel())
			assert.Equal(t, tt.wantTitle, target.Title())
		})
	}
}

func TestOptionalDescriptors(t *testing.T) {
	opt := OptionalDescriptors()

	assert.ElementsMatch(t, []Descriptor{
		DescLightCurve,
		DescNEBTable,
		DescNEBDepthPlots,
		DescDmagRMSPlot,
		DescSubsetTable,
	}, opt)
	assert.NotContains(t, opt, DescNotes) // globally required, not optional
}
