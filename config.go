package cjson

import (
	"bytes"
	"fmt"
)

// InvalidNumberMode selects how NaN, Infinity, and non-standard numeric
// literals are handled.
type InvalidNumberMode uint8

const (
	// InvalidNumbersReject refuses invalid numbers on both encode and decode.
	InvalidNumbersReject InvalidNumberMode = iota
	// InvalidNumbersLiteral accepts invalid numbers: the decoder admits hex
	// floats, leading-zero decimals, and signed Inf/NaN tokens; the encoder
	// emits NaN, Infinity, and -Infinity verbatim (not standard JSON).
	InvalidNumbersLiteral
	// InvalidNumbersNull encodes NaN and Infinity as null. Encode-only.
	InvalidNumbersNull
)

func (m InvalidNumberMode) String() string {
	switch m {
	case InvalidNumbersReject:
		return "reject"
	case InvalidNumbersLiteral:
		return "literal"
	case InvalidNumbersNull:
		return "null"
	}
	return "unknown"
}

// Settings is a plain snapshot of every configuration field.
type Settings struct {
	EncodeMaxDepth        int
	DecodeMaxDepth        int
	EncodeInvalidNumbers  InvalidNumberMode
	DecodeInvalidNumbers  InvalidNumberMode
	EncodeNumberPrecision int
	EncodeSparseConvert   bool
	EncodeSparseRatio     int
	EncodeSparseSafe      int
	EncodeKeepBuffer      bool
}

func defaultSettings() Settings {
	return Settings{
		EncodeMaxDepth:        DefaultEncodeMaxDepth,
		DecodeMaxDepth:        DefaultDecodeMaxDepth,
		EncodeInvalidNumbers:  InvalidNumbersReject,
		DecodeInvalidNumbers:  InvalidNumbersReject,
		EncodeNumberPrecision: DefaultEncodeNumberPrecision,
		EncodeSparseConvert:   false,
		EncodeSparseRatio:     DefaultEncodeSparseRatio,
		EncodeSparseSafe:      DefaultEncodeSparseSafe,
		EncodeKeepBuffer:      true,
	}
}

// Config holds the validated codec policies consulted by Encode and Decode.
// Each instance is independent; there is no package-level mutable
// configuration. Encode and Decode borrow the Config read-only for the
// duration of a call, except that the keep-buffer policy stores a reusable
// encode buffer on the instance, so a Config is meant for one logical call
// at a time. Concurrent mutation requires external synchronization.
type Config struct {
	settings Settings

	// Persistent encode buffer, allocated lazily when EncodeKeepBuffer is
	// set. Never shared between instances.
	encodeBuf *bytes.Buffer
}

// NewConfig returns a Config with the documented defaults: max depths 20,
// invalid numbers rejected both ways, precision 14 significant digits,
// sparse-array conversion off (ratio 2, safety threshold 10), buffer
// reuse on.
func NewConfig() *Config {
	return &Config{settings: defaultSettings()}
}

// Settings returns a snapshot of the current configuration.
func (c *Config) Settings() Settings {
	return c.settings
}

// Reset restores every field to its default and returns the post-reset
// snapshot. Any persistent encode buffer is released.
func (c *Config) Reset() Settings {
	c.settings = defaultSettings()
	c.encodeBuf = nil
	return c.settings
}

// Clone returns an independent copy of the configuration. The persistent
// encode buffer is not shared; the clone allocates its own on first use.
func (c *Config) Clone() *Config {
	if c == nil {
		return NewConfig()
	}
	return &Config{settings: c.settings}
}

// SetEncodeMaxDepth bounds container nesting during encode.
func (c *Config) SetEncodeMaxDepth(depth int) error {
	if depth < 1 || depth > MaxDepthLimit {
		return &ConfigError{
			Field:    "encode_max_depth",
			Received: depth,
			Expected: fmt.Sprintf("integer between 1 and %d", MaxDepthLimit),
		}
	}
	c.settings.EncodeMaxDepth = depth
	return nil
}

// EncodeMaxDepth returns the encode nesting bound.
func (c *Config) EncodeMaxDepth() int {
	return c.settings.EncodeMaxDepth
}

// SetDecodeMaxDepth bounds container nesting during decode.
func (c *Config) SetDecodeMaxDepth(depth int) error {
	if depth < 1 || depth > MaxDepthLimit {
		return &ConfigError{
			Field:    "decode_max_depth",
			Received: depth,
			Expected: fmt.Sprintf("integer between 1 and %d", MaxDepthLimit),
		}
	}
	c.settings.DecodeMaxDepth = depth
	return nil
}

// DecodeMaxDepth returns the decode nesting bound.
func (c *Config) DecodeMaxDepth() int {
	return c.settings.DecodeMaxDepth
}

// SetEncodeInvalidNumbers selects the encode-side invalid-number policy.
// All three modes are valid for encoding.
func (c *Config) SetEncodeInvalidNumbers(mode InvalidNumberMode) error {
	switch mode {
	case InvalidNumbersReject, InvalidNumbersLiteral, InvalidNumbersNull:
		c.settings.EncodeInvalidNumbers = mode
		return nil
	}
	return &ConfigError{
		Field:    "encode_invalid_numbers",
		Received: mode,
		Expected: "reject, literal, or null",
	}
}

// EncodeInvalidNumbers returns the encode-side invalid-number policy.
func (c *Config) EncodeInvalidNumbers() InvalidNumberMode {
	return c.settings.EncodeInvalidNumbers
}

// SetDecodeInvalidNumbers selects the decode-side invalid-number policy.
// Only reject and literal apply to decoding.
func (c *Config) SetDecodeInvalidNumbers(mode InvalidNumberMode) error {
	switch mode {
	case InvalidNumbersReject, InvalidNumbersLiteral:
		c.settings.DecodeInvalidNumbers = mode
		return nil
	}
	return &ConfigError{
		Field:    "decode_invalid_numbers",
		Received: mode,
		Expected: "reject or literal",
	}
}

// DecodeInvalidNumbers returns the decode-side invalid-number policy.
func (c *Config) DecodeInvalidNumbers() InvalidNumberMode {
	return c.settings.DecodeInvalidNumbers
}

// SetEncodeNumberPrecision sets the significant decimal digits used when
// formatting numbers, between 1 and 14. Lower precision is lossy by request.
func (c *Config) SetEncodeNumberPrecision(digits int) error {
	if digits < 1 || digits > MaxNumberPrecision {
		return &ConfigError{
			Field:    "encode_number_precision",
			Received: digits,
			Expected: fmt.Sprintf("integer between 1 and %d", MaxNumberPrecision),
		}
	}
	c.settings.EncodeNumberPrecision = digits
	return nil
}

// EncodeNumberPrecision returns the configured significant digit count.
func (c *Config) EncodeNumberPrecision() int {
	return c.settings.EncodeNumberPrecision
}

// SetEncodeSparseArray governs how an all-number-keyed object with gaps in
// its key sequence is serialized. An object is excessively sparse when
// ratio > 0, its maximum key exceeds the key count times ratio, and the
// maximum key exceeds the safety threshold. Excessively sparse objects are
// rejected when convert is false and serialized as JSON objects when convert
// is true; everything below the threshold becomes a dense array with null
// gap filling. A ratio of 0 disables the sparseness check entirely.
//
// Validation is atomic: on error neither ratio nor safe is updated.
func (c *Config) SetEncodeSparseArray(convert bool, ratio, safe int) error {
	if ratio < 0 {
		return &ConfigError{
			Field:    "encode_sparse_array",
			Received: ratio,
			Expected: "ratio of 0 or more",
		}
	}
	if safe < 0 {
		return &ConfigError{
			Field:    "encode_sparse_array",
			Received: safe,
			Expected: "safety threshold of 0 or more",
		}
	}
	c.settings.EncodeSparseConvert = convert
	c.settings.EncodeSparseRatio = ratio
	c.settings.EncodeSparseSafe = safe
	return nil
}

// EncodeSparseArray returns the sparse-array policy triple.
func (c *Config) EncodeSparseArray() (convert bool, ratio, safe int) {
	return c.settings.EncodeSparseConvert, c.settings.EncodeSparseRatio, c.settings.EncodeSparseSafe
}

// SetEncodeKeepBuffer controls whether the encoder reuses a buffer owned by
// this Config across calls. A performance hint with no semantic effect
// beyond buffer lifetime. Turning it off releases any held buffer.
func (c *Config) SetEncodeKeepBuffer(keep bool) {
	c.settings.EncodeKeepBuffer = keep
	if !keep {
		c.encodeBuf = nil
	}
}

// EncodeKeepBuffer reports whether encode buffer reuse is enabled.
func (c *Config) EncodeKeepBuffer() bool {
	return c.settings.EncodeKeepBuffer
}
