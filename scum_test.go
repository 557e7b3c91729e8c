package scumcode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelly-tou/scum-code/errs"
	"github.com/kelly-tou/scum-code/regression"
)

// writeCapture writes capture content into a temp dir and returns its path.
func writeCapture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "capture.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestBestFit(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{3, 5, 7, 9, 11} // y = 3 + 2x

	model, err := BestFit(x, y, regression.WithModels(regression.ModelTypeLinear))
	require.NoError(t, err)
	require.NotNil(t, model)

	assert.Equal(t, regression.ModelTypeLinear, model.Type)
	assert.InDelta(t, 3.0, model.Coefficients[0], 1e-9)
	assert.InDelta(t, 2.0, model.Coefficients[1], 1e-9)
	assert.InDelta(t, 13.0, model.Estimator.Estimate(5), 1e-9)
}

func TestBestFitNoData(t *testing.T) {
	_, err := BestFit(nil, nil)
	assert.ErrorIs(t, err, errs.ErrNoData)
}

func TestReadCapture(t *testing.T) {
	path := writeCapture(t, "scan,adc\n0,1\n1,3\n2,5\n")

	table, err := ReadCapture(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"scan", "adc"}, table.Columns)
	assert.Equal(t, 3, table.NumRows())
}

func TestFitCapture(t *testing.T) {
	path := writeCapture(t, "scan,adc\n0,1\n1,3\n2,5\n3,7\n")

	model, err := FitCapture(path, regression.WithModels(regression.ModelTypeLinear))
	require.NoError(t, err)
	require.NotNil(t, model)

	assert.NotEmpty(t, model.Formula)
	assert.InDelta(t, 9.0, model.Estimator.Estimate(4), 1e-9)
}

func TestFitCaptureSingleColumn(t *testing.T) {
	path := writeCapture(t, "adc\n1\n2\n")

	_, err := FitCapture(path)
	assert.ErrorIs(t, err, errs.ErrColumnOutOfRange)
}

func TestFingerprint(t *testing.T) {
	content := "scan,adc\n0,1\n1,3\n"
	path := writeCapture(t, content)

	table, err := ReadCapture(path)
	require.NoError(t, err)

	assert.Equal(t, table.Fingerprint, Fingerprint([]byte(content)))
	assert.NotEqual(t, Fingerprint([]byte(content)), Fingerprint([]byte("other")))
}
