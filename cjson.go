package cjson

// Encode serializes a value graph to compact JSON text under the policies in
// cfg. A nil cfg runs with the documented defaults (buffer reuse is inert
// without an owning Config). The returned error, if any, is an *EncodeError.
func Encode(v Value, cfg *Config) (string, error) {
	return encodeText(v, cfg, false, "", "")
}

// EncodeIndent serializes a value graph like Encode, with each nesting level
// indented. Every output line after the first starts with prefix followed by
// one copy of indent per nesting level. Indentation is presentation only;
// all Encode policies apply unchanged.
func EncodeIndent(v Value, cfg *Config, prefix, indent string) (string, error) {
	return encodeText(v, cfg, true, prefix, indent)
}

// Decode parses one complete JSON document into a value graph under the
// policies in cfg. A nil cfg runs with the documented defaults. The returned
// error, if any, is a *ParseError carrying a 1-based character offset into
// data.
func Decode(data []byte, cfg *Config) (Value, error) {
	return decodeValue(data, cfg)
}

// DecodeString is Decode for string input.
func DecodeString(text string, cfg *Config) (Value, error) {
	return decodeValue([]byte(text), cfg)
}

// Valid reports whether data parses as one complete JSON document under the
// policies in cfg.
func Valid(data []byte, cfg *Config) bool {
	_, err := decodeValue(data, cfg)
	return err == nil
}
