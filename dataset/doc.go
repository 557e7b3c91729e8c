// Package dataset reads SCuM capture files into numeric tables.
//
// Captures are CSV files logged from the mote's serial output: a header row
// naming each sensor or antenna, followed by numeric rows. Lines starting
// with '#' carry capture metadata and are skipped. Large captures may be
// stored compressed; the file extension (.zst, .s2, .lz4) selects the codec
// transparently.
//
// Cells parse as float64 by default. Columns holding non-numeric text, such
// as the tick ratio expressions of time constant columns, are handled with
// per-column CellParser options:
//
//	table, err := dataset.Read("capture.csv",
//	    dataset.WithCellParserAt(2, adc.EvalRatio),
//	)
//
// Each table records the xxHash64 fingerprint of the file's raw bytes so
// analysis logs can identify the exact capture they ran on.
package dataset
