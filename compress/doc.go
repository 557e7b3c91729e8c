// Package compress provides compression codecs for capture files.
//
// Characterization captures are plain CSV text, which compresses well.
// Long-running mux sweeps are archived compressed; the dataset package
// routes reads through this package so callers never handle compression
// themselves. The algorithm is inferred from the file extension:
//
//	data.csv       -> TypeNone
//	data.csv.zst   -> TypeZstd
//	data.csv.s2    -> TypeS2
//	data.csv.lz4   -> TypeLZ4
//
// # Supported Algorithms
//
//   - None: pass-through for plain captures
//   - Zstd: best ratio, for archived captures (pure Go by default, cgo
//     gozstd behind the "gozstd" build tag)
//   - S2: fast decompression, good default for captures re-read often
//   - LZ4: fast block compression, for captures written on-device
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.FromPath(path))
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileBytes)
//
// All codecs operate on whole payloads. A returned slice is owned by the
// caller except for the no-op codec, which passes the input through.
package compress
