// Package cjson is a configurable JSON encoder/decoder built around an
// explicit value model and caller-owned codec policies.
//
// The package converts a tagged Value graph (objects, arrays, scalars, null)
// to JSON text and parses JSON text back into that graph, under a set of
// per-call policies: numeric precision, invalid-number handling, nesting
// limits, sparse-array conversion, and buffer reuse. Number conversion is
// locale-independent in both directions.
//
// # Basic Usage
//
// Encode and decode with default policies:
//
//	text, err := cjson.Encode(value, nil)
//	value, err := cjson.Decode([]byte(`{"answer":42}`), nil)
//
// Configure policies with a caller-owned Config:
//
//	cfg := cjson.NewConfig()
//	cfg.SetEncodeNumberPrecision(3)
//	cfg.SetDecodeMaxDepth(64)
//	text, err := cjson.Encode(value, cfg)
//
// Non-throwing variants return the error as text instead:
//
//	value, errText := cjson.SafeDecode(data, cfg)
//	if errText != "" {
//		// errText is exactly what Decode's error would render
//	}
//
// # Configuration
//
// Each Config instance is independent: there is no package-level mutable
// configuration, so concurrent callers with their own Config never interfere.
// A single Config is meant for one logical call at a time (the keep-buffer
// policy stores a reusable encode buffer on the Config).
//
// # Error Reporting
//
// Decode errors carry a 1-based character offset into the input and stable
// message text of the form "Expected <what> but found <found> at character
// <N>". Encode errors describe the offending value class. Nesting violations
// report the depth at which the configured bound was crossed. These messages
// are part of the package contract and safe to match against.
//
// # Core Types Organization
//
//   - value.go: the Value tagged union and native-Go conversion
//   - config.go: Config, Settings, validated policy setters
//   - decode.go: tokenizer and recursive-descent parser
//   - encode.go: serializer, sparse-array classification, depth guard
//   - number.go: locale-independent number formatting and scanning
//   - errors.go: ParseError, EncodeError, ConfigError and sentinels
//   - safe.go: non-throwing encode/decode variants
package cjson
