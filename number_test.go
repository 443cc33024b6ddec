package cjson

import (
	"math"
	"testing"
)

// TestFormatNumber tests locale-independent significant-digit formatting.
func TestFormatNumber(t *testing.T) {
	helper := NewTestHelper(t)

	cases := []struct {
		in        float64
		precision int
		want      string
	}{
		{1.5, 14, "1.5"},
		{0, 14, "0"},
		{10, 14, "10"},
		{-2.5, 14, "-2.5"},
		{1.0 / 3.0, 3, "0.333"},
		{1.0 / 3.0, 1, "0.3"},
		{1e20, 14, "1e+20"},
		{1e-7, 14, "1e-07"},
		{math.Pi, 14, "3.1415926535898"},
		{1234.5678, 6, "1234.57"},
	}
	for _, tc := range cases {
		helper.AssertEqual(tc.want, formatNumber(tc.in, tc.precision),
			"formatNumber(%v, %d)", tc.in, tc.precision)
	}
}

// TestNumberFormattingLocaleIndependent pins the decimal separator: number
// text never follows the host locale.
func TestNumberFormattingLocaleIndependent(t *testing.T) {
	helper := NewTestHelper(t)

	text, err := Encode(Number(1.5), nil)
	helper.AssertNoError(err)
	helper.AssertEqual("1.5", text)

	v, err := Decode([]byte("1.5"), nil)
	helper.AssertNoError(err)
	helper.AssertEqual(1.5, v.NumberVal())
}

// TestScanNumber tests strtod-style longest-prefix scanning.
func TestScanNumber(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("ValidPrefixes", func(t *testing.T) {
		cases := []struct {
			in   string
			want float64
			end  int
		}{
			{"0", 0, 1},
			{"42", 42, 2},
			{"-1.25", -1.25, 5},
			{"+5", 5, 2},
			{"1.5e3", 1500, 5},
			{"1.5E+3", 1500, 6},
			{"2e-2", 0.02, 4},
			{"5.", 5, 2},
			{".5", 0.5, 2},
			{"-.5", -0.5, 3},
			{"0123", 123, 4},
			// Incomplete exponents are left unconsumed.
			{"1e", 1, 1},
			{"1e+", 1, 1},
			{"3.5ex", 3.5, 3},
			// Hexadecimal mantissas, with and without a binary exponent.
			{"0x10", 16, 4},
			{"0x1p4", 16, 5},
			{"0x1p-1", 0.5, 6},
			{"0x1.8p1", 3, 7},
			{"0x1p", 1, 3},
			{"-0x652", -1618, 6},
			{"0x", 0, 1},
			// Signed infinity words, any case.
			{"inf", math.Inf(1), 3},
			{"Inf", math.Inf(1), 3},
			{"-Inf", math.Inf(-1), 4},
			{"INFINITY", math.Inf(1), 8},
			{"infinity,", math.Inf(1), 8},
			{"infx", math.Inf(1), 3},
			// Overflow saturates instead of failing, as strtod does.
			{"1e999", math.Inf(1), 5},
			{"-1e999", math.Inf(-1), 6},
		}
		for _, tc := range cases {
			val, end, ok := scanNumber([]byte(tc.in), 0)
			helper.AssertTrue(ok, "scanNumber(%q) ok", tc.in)
			helper.AssertEqual(tc.want, val, "scanNumber(%q) value", tc.in)
			helper.AssertEqual(tc.end, end, "scanNumber(%q) end", tc.in)
		}
	})

	t.Run("NaN", func(t *testing.T) {
		for _, in := range []string{"nan", "NaN", "-nan"} {
			val, _, ok := scanNumber([]byte(in), 0)
			helper.AssertTrue(ok, "scanNumber(%q) ok", in)
			helper.AssertTrue(math.IsNaN(val), "scanNumber(%q) value", in)
		}
	})

	t.Run("NoValidPrefix", func(t *testing.T) {
		for _, in := range []string{"", "-", "+", ".", "e5", "x1", "in", "na"} {
			_, _, ok := scanNumber([]byte(in), 0)
			helper.AssertFalse(ok, "scanNumber(%q)", in)
		}
	})

	t.Run("MidSliceScan", func(t *testing.T) {
		val, end, ok := scanNumber([]byte("[12,"), 1)
		helper.AssertTrue(ok)
		helper.AssertEqual(12.0, val)
		helper.AssertEqual(3, end)
	})
}

// TestInvalidNumberGate tests the strict-policy token gate.
func TestInvalidNumberGate(t *testing.T) {
	helper := NewTestHelper(t)

	invalid := []string{"+1", "0123", "-0123", "0x10", "-0X10", "inf", "Inf", "-inf", "nan", "NaN", "-NAN"}
	for _, in := range invalid {
		helper.AssertTrue(isInvalidNumberToken([]byte(in), 0), "isInvalidNumberToken(%q)", in)
	}

	valid := []string{"0", "0.5", "-0.5", "0e7", "1", "-42", "9.25e-3", "123"}
	for _, in := range valid {
		helper.AssertFalse(isInvalidNumberToken([]byte(in), 0), "isInvalidNumberToken(%q)", in)
	}
}

// TestNumberRoundTrip tests that precision-14 text reproduces values exactly
// for doubles representable at 14 significant digits.
func TestNumberRoundTrip(t *testing.T) {
	helper := NewTestHelper(t)

	values := []float64{0, 1, -1, 0.1, 1.5, -2.5, 3.14159, 1e300, -2.5e-10,
		123456789012.34, 0.0001220703125, 42}
	for _, want := range values {
		text := formatNumber(want, 14)
		got, end, ok := scanNumber([]byte(text), 0)
		helper.AssertTrue(ok, "parse %q", text)
		helper.AssertEqual(len(text), end, "parse %q consumed", text)
		helper.AssertEqual(want, got, "round trip %q", text)
	}
}
