package cjson

import (
	"errors"
	"testing"
)

// TestConfiguration tests configuration creation, validation, and reset.
func TestConfiguration(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("Defaults", func(t *testing.T) {
		cfg := NewConfig()

		helper.AssertEqual(DefaultEncodeMaxDepth, cfg.EncodeMaxDepth())
		helper.AssertEqual(DefaultDecodeMaxDepth, cfg.DecodeMaxDepth())
		helper.AssertEqual(InvalidNumbersReject, cfg.EncodeInvalidNumbers())
		helper.AssertEqual(InvalidNumbersReject, cfg.DecodeInvalidNumbers())
		helper.AssertEqual(DefaultEncodeNumberPrecision, cfg.EncodeNumberPrecision())
		convert, ratio, safe := cfg.EncodeSparseArray()
		helper.AssertFalse(convert)
		helper.AssertEqual(DefaultEncodeSparseRatio, ratio)
		helper.AssertEqual(DefaultEncodeSparseSafe, safe)
		helper.AssertTrue(cfg.EncodeKeepBuffer())
	})

	t.Run("DepthValidation", func(t *testing.T) {
		cfg := NewConfig()

		helper.AssertNoError(cfg.SetEncodeMaxDepth(1))
		helper.AssertNoError(cfg.SetEncodeMaxDepth(MaxDepthLimit))
		helper.AssertNoError(cfg.SetDecodeMaxDepth(100))

		for _, bad := range []int{0, -1} {
			err := cfg.SetEncodeMaxDepth(bad)
			helper.AssertError(err, "SetEncodeMaxDepth(%d)", bad)
			helper.AssertErrorIs(err, ErrInvalidConfig)

			err = cfg.SetDecodeMaxDepth(bad)
			helper.AssertError(err, "SetDecodeMaxDepth(%d)", bad)
		}

		// Rejected assignments leave the previous value in place.
		helper.AssertEqual(MaxDepthLimit, cfg.EncodeMaxDepth())
		helper.AssertEqual(100, cfg.DecodeMaxDepth())
	})

	t.Run("ConfigErrorFields", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.SetEncodeMaxDepth(0)

		var cfgErr *ConfigError
		helper.AssertTrue(errors.As(err, &cfgErr))
		helper.AssertEqual("encode_max_depth", cfgErr.Field)
		helper.AssertEqual(0, cfgErr.Received)
		helper.AssertEqual("integer between 1 and 2147483647", cfgErr.Expected)
		helper.AssertEqual("invalid encode_max_depth: expected integer between 1 and 2147483647, got 0", err.Error())
	})

	t.Run("InvalidNumberModes", func(t *testing.T) {
		cfg := NewConfig()

		helper.AssertNoError(cfg.SetEncodeInvalidNumbers(InvalidNumbersLiteral))
		helper.AssertNoError(cfg.SetEncodeInvalidNumbers(InvalidNumbersNull))
		helper.AssertNoError(cfg.SetEncodeInvalidNumbers(InvalidNumbersReject))

		helper.AssertNoError(cfg.SetDecodeInvalidNumbers(InvalidNumbersLiteral))

		// The null mode only makes sense on the encode side.
		err := cfg.SetDecodeInvalidNumbers(InvalidNumbersNull)
		helper.AssertError(err)
		helper.AssertErrorContains(err, "decode_invalid_numbers")
		helper.AssertEqual(InvalidNumbersLiteral, cfg.DecodeInvalidNumbers())

		err = cfg.SetEncodeInvalidNumbers(InvalidNumberMode(77))
		helper.AssertError(err)
	})

	t.Run("PrecisionValidation", func(t *testing.T) {
		cfg := NewConfig()

		helper.AssertNoError(cfg.SetEncodeNumberPrecision(1))
		helper.AssertNoError(cfg.SetEncodeNumberPrecision(14))

		for _, bad := range []int{0, 15, -3} {
			err := cfg.SetEncodeNumberPrecision(bad)
			helper.AssertError(err, "SetEncodeNumberPrecision(%d)", bad)
		}
		helper.AssertEqual(14, cfg.EncodeNumberPrecision())
	})

	t.Run("SparseArrayValidation", func(t *testing.T) {
		cfg := NewConfig()

		helper.AssertNoError(cfg.SetEncodeSparseArray(true, 4, 100))
		convert, ratio, safe := cfg.EncodeSparseArray()
		helper.AssertTrue(convert)
		helper.AssertEqual(4, ratio)
		helper.AssertEqual(100, safe)

		// Atomic: a bad safety threshold must not update the ratio either.
		err := cfg.SetEncodeSparseArray(false, 8, -1)
		helper.AssertError(err)
		convert, ratio, safe = cfg.EncodeSparseArray()
		helper.AssertTrue(convert)
		helper.AssertEqual(4, ratio)
		helper.AssertEqual(100, safe)

		helper.AssertError(cfg.SetEncodeSparseArray(false, -1, 10))
	})

	t.Run("ResetReturnsDefaults", func(t *testing.T) {
		cfg := NewConfig()
		helper.AssertNoError(cfg.SetEncodeMaxDepth(5))
		helper.AssertNoError(cfg.SetEncodeNumberPrecision(3))
		helper.AssertNoError(cfg.SetDecodeInvalidNumbers(InvalidNumbersLiteral))
		cfg.SetEncodeKeepBuffer(false)

		snapshot := cfg.Reset()

		helper.AssertEqual(defaultSettings(), snapshot)
		helper.AssertEqual(defaultSettings(), cfg.Settings())
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		cfg := NewConfig()
		helper.AssertNoError(cfg.SetEncodeMaxDepth(7))

		clone := cfg.Clone()
		helper.AssertEqual(7, clone.EncodeMaxDepth())

		helper.AssertNoError(clone.SetEncodeMaxDepth(9))
		helper.AssertEqual(7, cfg.EncodeMaxDepth())

		var nilCfg *Config
		helper.AssertEqual(defaultSettings(), nilCfg.Clone().Settings())
	})

	t.Run("InstancesAreIndependent", func(t *testing.T) {
		a := NewConfig()
		b := NewConfig()
		helper.AssertNoError(a.SetEncodeNumberPrecision(2))
		helper.AssertEqual(DefaultEncodeNumberPrecision, b.EncodeNumberPrecision())
	})
}

// TestConfigurationInUse exercises policy changes through encode and decode.
func TestConfigurationInUse(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("PrecisionAffectsOutput", func(t *testing.T) {
		cfg := NewConfig()
		helper.AssertNoError(cfg.SetEncodeNumberPrecision(3))

		text, err := Encode(Number(1.0/3.0), cfg)
		helper.AssertNoError(err)
		helper.AssertEqual("0.333", text)

		cfg.Reset()
		text, err = Encode(Number(1.0/3.0), cfg)
		helper.AssertNoError(err)
		helper.AssertEqual("0.33333333333333", text)
	})

	t.Run("KeepBufferReuse", func(t *testing.T) {
		cfg := NewConfig()

		first, err := Encode(String("first"), cfg)
		helper.AssertNoError(err)
		second, err := Encode(String("second"), cfg)
		helper.AssertNoError(err)

		// Earlier results must not be clobbered by buffer reuse.
		helper.AssertEqual(`"first"`, first)
		helper.AssertEqual(`"second"`, second)

		cfg.SetEncodeKeepBuffer(false)
		third, err := Encode(String("third"), cfg)
		helper.AssertNoError(err)
		helper.AssertEqual(`"third"`, third)
	})
}
