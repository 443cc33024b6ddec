package cjson

import (
	"testing"
)

// TestRoundTrip decodes a document, re-encodes it, and checks the result is
// structurally identical. Textual identity is not required because object
// member order is unspecified.
func TestRoundTrip(t *testing.T) {
	helper := NewTestHelper(t)

	docs := []string{
		`null`,
		`true`,
		`0`,
		`-17.25`,
		`1e+300`,
		`"plain"`,
		`"esc \" \\ \n \t \u0001"`,
		"\"raw \x01 byte\"",
		`[]`,
		`{}`,
		`[1,2,3]`,
		`[[[["deep"]]]]`,
		`{"a":1,"b":[true,false,null],"c":{"d":{"e":"f"}}}`,
		`{"empty_arr":[],"empty_obj":{},"mixed":[{"k":"v"},[0.5]]}`,
		`{"unicode":"héllo 𝄞","nums":[0.33333333333333,1e-07]}`,
	}
	for _, doc := range docs {
		first, err := DecodeString(doc, nil)
		helper.AssertNoError(err, "decode %q", doc)

		text, err := Encode(first, nil)
		helper.AssertNoError(err, "encode of %q", doc)

		second, err := DecodeString(text, nil)
		helper.AssertNoError(err, "re-decode of %q", text)
		helper.AssertValueEqual(first, second, "round trip of %q", doc)
	}
}

// TestRoundTripTextualStability checks documents whose re-encoded text is
// byte-identical to the input. Restricted to arrays and single-member
// objects so member order cannot vary.
func TestRoundTripTextualStability(t *testing.T) {
	helper := NewTestHelper(t)

	docs := []string{
		`null`,
		`true`,
		`false`,
		`42`,
		`-0.5`,
		`"text"`,
		`[]`,
		`{}`,
		`[1,2,3]`,
		`[null,[true],{"k":"v"}]`,
		`{"single":[1.5,"two"]}`,
	}
	for _, doc := range docs {
		v, err := DecodeString(doc, nil)
		helper.AssertNoError(err, "decode %q", doc)

		text, err := Encode(v, nil)
		helper.AssertNoError(err, "encode of %q", doc)
		helper.AssertEqual(doc, text, "round trip of %q", doc)
	}
}

// TestRoundTripNumbers checks that default precision preserves values that
// fit in 14 significant digits.
func TestRoundTripNumbers(t *testing.T) {
	helper := NewTestHelper(t)

	values := []float64{
		0, 1, -1, 42, 1e6, -1e6,
		0.5, 0.25, 0.0001220703125,
		3.14159, 123456789012.34, 1e300, 1e-300,
	}
	for _, f := range values {
		text, err := Encode(Number(f), nil)
		helper.AssertNoError(err)

		v, err := DecodeString(text, nil)
		helper.AssertNoError(err)
		helper.AssertEqual(f, v.NumberVal(), "round trip of %v via %q", f, text)
	}
}

// TestRoundTripValueOf checks native Go data through ValueOf, the codec,
// and Interface.
func TestRoundTripValueOf(t *testing.T) {
	helper := NewTestHelper(t)

	native := map[string]any{
		"name":  "widget",
		"count": float64(3),
		"tags":  []any{"a", "b"},
		"meta":  map[string]any{"ok": true, "note": nil},
	}

	v, err := ValueOf(native)
	helper.AssertNoError(err)

	text, err := Encode(v, nil)
	helper.AssertNoError(err)

	back, err := DecodeString(text, nil)
	helper.AssertNoError(err)
	helper.AssertEqual(native, back.Interface())
}
