// Package errs defines the sentinel error values shared across scum-code
// packages.
//
// Callers match these with errors.Is. Packages wrap them with additional
// context using fmt.Errorf("%w: ...", errs.ErrX, ...).
package errs

import "errors"

// Regression errors.
var (
	// ErrNoData indicates that an empty sample set was passed to a fit.
	ErrNoData = errors.New("no data points provided")
	// ErrLengthMismatch indicates that the x and y sample slices differ in length.
	ErrLengthMismatch = errors.New("mismatched sample lengths")
	// ErrInsufficientData indicates fewer samples than free model parameters.
	ErrInsufficientData = errors.New("insufficient data points for fit")
	// ErrDomain indicates samples outside the model's domain (e.g. x <= 0 for ln).
	ErrDomain = errors.New("sample outside model domain")
	// ErrFitDiverged indicates that the iterative fit failed to converge.
	ErrFitDiverged = errors.New("fit did not converge")
	// ErrSingular indicates a rank-deficient design matrix (e.g. all x equal).
	ErrSingular = errors.New("singular design matrix")
	// ErrUnknownModel indicates an unrecognized model type name.
	ErrUnknownModel = errors.New("unknown model type")
	// ErrInvalidCoefficients indicates a coefficient vector of the wrong size.
	ErrInvalidCoefficients = errors.New("invalid coefficient count")
)

// Dataset errors.
var (
	// ErrEmptyTable indicates a capture file with no data rows.
	ErrEmptyTable = errors.New("no data rows in table")
	// ErrInvalidCell indicates a cell that could not be parsed as a number.
	ErrInvalidCell = errors.New("invalid cell value")
	// ErrRaggedRow indicates a data row whose cell count differs from the header.
	ErrRaggedRow = errors.New("row length does not match header")
	// ErrUnknownColumn indicates a column name absent from the table header.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrColumnOutOfRange indicates a column index outside the table.
	ErrColumnOutOfRange = errors.New("column index out of range")
)

// ADC configuration errors.
var (
	// ErrUnknownBoard indicates a board name absent from the config registry.
	ErrUnknownBoard = errors.New("unknown board")
	// ErrInvalidRatio indicates a malformed time-constant ratio expression.
	ErrInvalidRatio = errors.New("invalid ratio expression")
)

// Compression errors.
var (
	// ErrUnknownCompression indicates an unrecognized compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
)

// CIC filter errors.
var (
	// ErrInvalidDecimation indicates a decimation factor below 1.
	ErrInvalidDecimation = errors.New("decimation factor must be at least 1")
	// ErrInvalidStages indicates a stage count below 1.
	ErrInvalidStages = errors.New("stage count must be at least 1")
	// ErrTapsNotDivisor indicates comb taps that do not divide the decimation factor.
	ErrTapsNotDivisor = errors.New("comb tap count must divide decimation factor")
	// ErrInvalidTaps indicates comb taps that cannot be normalized (zero mean).
	ErrInvalidTaps = errors.New("comb taps must have a nonzero mean")
	// ErrInvalidFFTLength indicates an FFT length below 1.
	ErrInvalidFFTLength = errors.New("fft length must be at least 1")
)

// Differential mesh errors.
var (
	// ErrInvalidGridSize indicates non-positive grid dimensions.
	ErrInvalidGridSize = errors.New("grid dimensions must be positive")
	// ErrUnknownSolver indicates a solver name absent from the registry.
	ErrUnknownSolver = errors.New("unknown solver")
	// ErrMissingEdge indicates an edge absent from the mesh grid.
	ErrMissingEdge = errors.New("edge not in grid")
	// ErrSolverDiverged indicates an iterative solver that hit its iteration cap.
	ErrSolverDiverged = errors.New("solver did not converge")
)

// Plotting errors.
var (
	// ErrUnknownStyle indicates an unrecognized series style name.
	ErrUnknownStyle = errors.New("unknown plot style")
)

// Shared errors.
var (
	// ErrInvalidIterations indicates a non-positive iteration or trial count.
	ErrInvalidIterations = errors.New("iteration count must be at least 1")
)
