package cjson

import (
	"errors"
	"math"
	"strconv"
)

// formatNumber renders f with the given count of significant decimal digits,
// trimming trailing zeros. strconv is locale-independent by construction:
// the decimal separator is always '.' with no grouping, regardless of the
// host process locale.
func formatNumber(f float64, precision int) string {
	return strconv.FormatFloat(f, 'g', precision, 64)
}

// appendNumber is the allocation-free variant of formatNumber.
func appendNumber(dst []byte, f float64, precision int) []byte {
	return strconv.AppendFloat(dst, f, 'g', precision, 64)
}

// scanNumber reads a numeric literal starting at pos with strtod semantics:
// longest valid prefix wins, an incomplete exponent is left unconsumed, and
// overflow saturates to ±Inf without error. Beyond the JSON grammar it
// accepts a leading '+', case-insensitive inf/infinity/nan words, leading
// zeros, and hexadecimal mantissas with an optional binary exponent; the
// caller gates those forms via isInvalidNumberToken when the policy demands
// strict JSON. Returns the value and the index one past the literal, or
// ok=false when no valid prefix exists.
func scanNumber(data []byte, pos int) (val float64, end int, ok bool) {
	i := pos
	n := len(data)
	neg := false
	if i < n && (data[i] == '+' || data[i] == '-') {
		neg = data[i] == '-'
		i++
	}
	if i >= n {
		return 0, pos, false
	}

	if hasFold(data, i, "infinity") {
		return signedInf(neg), i + len("infinity"), true
	}
	if hasFold(data, i, "inf") {
		return signedInf(neg), i + len("inf"), true
	}
	if hasFold(data, i, "nan") {
		return math.NaN(), i + len("nan"), true
	}

	if data[i] == '0' && i+1 < n && (data[i+1]|0x20) == 'x' {
		return scanHexNumber(data, pos, i)
	}

	j := i
	digits := 0
	for j < n && isDigit(data[j]) {
		j++
		digits++
	}
	if j < n && data[j] == '.' {
		j++
		for j < n && isDigit(data[j]) {
			j++
			digits++
		}
	}
	if digits == 0 {
		return 0, pos, false
	}
	end = j
	if j < n && (data[j]|0x20) == 'e' {
		k := j + 1
		if k < n && (data[k] == '+' || data[k] == '-') {
			k++
		}
		expDigits := 0
		for k < n && isDigit(data[k]) {
			k++
			expDigits++
		}
		if expDigits > 0 {
			end = k
		}
	}
	f, err := strconv.ParseFloat(string(data[pos:end]), 64)
	if err != nil && !isRangeError(err) {
		return 0, pos, false
	}
	return f, end, true
}

// scanHexNumber handles the 0x mantissa form. pos is the literal start
// (possibly a sign), i the index of the leading zero.
func scanHexNumber(data []byte, pos, i int) (float64, int, bool) {
	n := len(data)
	j := i + 2
	digits := 0
	for j < n && isHexDigit(data[j]) {
		j++
		digits++
	}
	if j < n && data[j] == '.' {
		j++
		for j < n && isHexDigit(data[j]) {
			j++
			digits++
		}
	}
	if digits == 0 {
		// A bare "0x" is not a hex literal; strtod consumes the zero only.
		return 0, i + 1, true
	}
	end := j
	hasExp := false
	if j < n && (data[j]|0x20) == 'p' {
		k := j + 1
		if k < n && (data[k] == '+' || data[k] == '-') {
			k++
		}
		expDigits := 0
		for k < n && isDigit(data[k]) {
			k++
			expDigits++
		}
		if expDigits > 0 {
			end = k
			hasExp = true
		}
	}
	text := string(data[pos:end])
	if !hasExp {
		// strconv requires a binary exponent on hex floats; strtod does not.
		text += "p0"
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeError(err) {
		return 0, pos, false
	}
	return f, end, true
}

// isInvalidNumberToken reports whether the token starting at pos uses a
// numeric form outside the JSON grammar: a leading '+', a leading zero
// followed by a digit, a hexadecimal prefix, or an inf/nan word. It is a
// gate on the token's first characters only; full validation is left to
// scanNumber.
func isInvalidNumberToken(data []byte, pos int) bool {
	p := pos
	n := len(data)
	if p >= n {
		return false
	}
	if data[p] == '+' {
		return true
	}
	if data[p] == '-' {
		p++
	}
	if p >= n {
		return false
	}
	switch {
	case data[p] == '0':
		if p+1 < n {
			ch2 := data[p+1]
			if (ch2|0x20) == 'x' || isDigit(ch2) {
				return true
			}
		}
		return false
	case data[p] <= '9':
		return false
	}
	return hasFold(data, p, "inf") || hasFold(data, p, "nan")
}

func signedInf(neg bool) float64 {
	if neg {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// hasFold matches a lowercase ASCII word case-insensitively at pos.
func hasFold(data []byte, pos int, word string) bool {
	if pos+len(word) > len(data) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if data[pos+i]|0x20 != word[i] {
			return false
		}
	}
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ((ch | 0x20) >= 'a' && (ch|0x20) <= 'f')
}

func isRangeError(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && numErr.Err == strconv.ErrRange
}
