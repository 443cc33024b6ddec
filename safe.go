package cjson

// The safe variants adapt Encode and Decode to a non-throwing convention:
// the failure comes back as message text instead of an error value, for
// callers that forward results across boundaries where error values do not
// travel. The text is exactly what the error-returning variant's Error()
// renders, and an empty string means success. No additional validation
// happens here.

// SafeEncode is Encode returning the failure as text.
func SafeEncode(v Value, cfg *Config) (text string, errText string) {
	text, err := Encode(v, cfg)
	if err != nil {
		return "", err.Error()
	}
	return text, ""
}

// SafeDecode is Decode returning the failure as text. On failure the
// returned Value is the zero Value.
func SafeDecode(data []byte, cfg *Config) (v Value, errText string) {
	v, err := Decode(data, cfg)
	if err != nil {
		return Value{}, err.Error()
	}
	return v, ""
}
