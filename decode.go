package cjson

import (
	"bytes"
	"unicode/utf8"
)

type tokenType uint8

const (
	tokenObjBegin tokenType = iota
	tokenObjEnd
	tokenArrBegin
	tokenArrEnd
	tokenString
	tokenNumber
	tokenBoolean
	tokenNull
	tokenColon
	tokenComma
	tokenEnd
	tokenError
)

// tokenNames are the stable token descriptions used in parse error messages.
var tokenNames = [...]string{
	tokenObjBegin: "T_OBJ_BEGIN",
	tokenObjEnd:   "T_OBJ_END",
	tokenArrBegin: "T_ARR_BEGIN",
	tokenArrEnd:   "T_ARR_END",
	tokenString:   "T_STRING",
	tokenNumber:   "T_NUMBER",
	tokenBoolean:  "T_BOOLEAN",
	tokenNull:     "T_NULL",
	tokenColon:    "T_COLON",
	tokenComma:    "T_COMMA",
	tokenEnd:      "T_END",
	tokenError:    "T_ERROR",
}

type token struct {
	typ     tokenType
	index   int // 0-based offset of the token start, or of the error
	num     float64
	str     string // string payload, or error description for tokenError
	boolean bool
}

// decoder is the single cursor threaded through recursive descent. The
// grammar is predictive, so no backtracking state exists beyond pos.
type decoder struct {
	data         []byte
	pos          int
	depth        int
	maxDepth     int
	allowInvalid bool // decode_invalid_numbers permits extended literals
	scratch      bytes.Buffer
}

// decodeValue parses one complete JSON document.
func decodeValue(data []byte, cfg *Config) (Value, error) {
	// Documents in UTF-16 or UTF-32 put a NUL in the first two bytes; UTF-8
	// never does. Reject before tokenizing.
	if len(data) >= 2 && (data[0] == 0 || data[1] == 0) {
		return Value{}, &ParseError{
			Msg:    "JSON parser does not support UTF-16 or UTF-32",
			Offset: 1,
			Err:    ErrUnsupportedEncoding,
		}
	}

	settings := defaultSettings()
	if cfg != nil {
		settings = cfg.settings
	}
	d := &decoder{
		data:         data,
		maxDepth:     settings.DecodeMaxDepth,
		allowInvalid: settings.DecodeInvalidNumbers == InvalidNumbersLiteral,
	}

	var tok token
	d.nextToken(&tok)
	v, err := d.processValue(&tok)
	if err != nil {
		return Value{}, err
	}
	d.nextToken(&tok)
	if tok.typ != tokenEnd {
		return Value{}, d.throw("the end", &tok)
	}
	return v, nil
}

// throw builds the expected-vs-found error for the current token.
func (d *decoder) throw(expected string, tok *token) error {
	found := tokenNames[tok.typ]
	sentinel := ErrSyntax
	if tok.typ == tokenError {
		found = tok.str
		if tok.str == "invalid number" {
			sentinel = ErrInvalidNumber
		}
	}
	return newTokenError(expected, found, tok.index, sentinel)
}

func (d *decoder) setTokenError(tok *token, desc string) {
	tok.typ = tokenError
	tok.index = d.pos
	tok.str = desc
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func (d *decoder) nextToken(tok *token) {
	for d.pos < len(d.data) && isWhitespace(d.data[d.pos]) {
		d.pos++
	}
	tok.index = d.pos
	if d.pos >= len(d.data) {
		tok.typ = tokenEnd
		return
	}

	switch d.data[d.pos] {
	case '{':
		tok.typ = tokenObjBegin
		d.pos++
		return
	case '}':
		tok.typ = tokenObjEnd
		d.pos++
		return
	case '[':
		tok.typ = tokenArrBegin
		d.pos++
		return
	case ']':
		tok.typ = tokenArrEnd
		d.pos++
		return
	case ':':
		tok.typ = tokenColon
		d.pos++
		return
	case ',':
		tok.typ = tokenComma
		d.pos++
		return
	case '"':
		d.scanString(tok)
		return
	}

	ch := d.data[d.pos]
	if ch == '-' || isDigit(ch) {
		if !d.allowInvalid && isInvalidNumberToken(d.data, d.pos) {
			d.setTokenError(tok, "invalid number")
			return
		}
		d.scanNumberToken(tok)
		return
	}
	if d.hasLiteral("true") {
		tok.typ = tokenBoolean
		tok.boolean = true
		d.pos += len("true")
		return
	}
	if d.hasLiteral("false") {
		tok.typ = tokenBoolean
		tok.boolean = false
		d.pos += len("false")
		return
	}
	if d.hasLiteral("null") {
		tok.typ = tokenNull
		d.pos += len("null")
		return
	}
	// With extended numbers enabled, tokens like +5, Inf, -Infinity, and NaN
	// reach this point; only forms the gate recognizes are attempted.
	if d.allowInvalid && isInvalidNumberToken(d.data, d.pos) {
		d.scanNumberToken(tok)
		return
	}
	d.setTokenError(tok, "invalid token")
}

func (d *decoder) hasLiteral(lit string) bool {
	return d.pos+len(lit) <= len(d.data) && string(d.data[d.pos:d.pos+len(lit)]) == lit
}

func (d *decoder) scanNumberToken(tok *token) {
	val, end, ok := scanNumber(d.data, d.pos)
	if !ok {
		d.setTokenError(tok, "invalid number")
		return
	}
	tok.typ = tokenNumber
	tok.num = val
	d.pos = end
}

// scanString lexes a string literal. The cursor sits on the opening quote.
// Raw bytes, including controls 0x00-0x1F, pass through as payload; the
// lexer is 8-bit transparent for already-unescaped octets.
func (d *decoder) scanString(tok *token) {
	d.pos++
	d.scratch.Reset()
	for {
		if d.pos >= len(d.data) {
			d.setTokenError(tok, "unexpected end of string")
			return
		}
		ch := d.data[d.pos]
		if ch == '"' {
			d.pos++
			tok.typ = tokenString
			tok.str = d.scratch.String()
			return
		}
		if ch != '\\' {
			d.scratch.WriteByte(ch)
			d.pos++
			continue
		}
		if d.pos+1 >= len(d.data) {
			d.setTokenError(tok, "invalid escape code")
			return
		}
		esc := d.data[d.pos+1]
		if esc == 'u' {
			if !d.appendUnicodeEscape() {
				d.setTokenError(tok, "invalid unicode escape code")
				return
			}
			continue
		}
		unescaped := escapeToChar[esc]
		if unescaped == 0 {
			d.setTokenError(tok, "invalid escape code")
			return
		}
		d.scratch.WriteByte(unescaped)
		d.pos += 2
	}
}

// escapeToChar maps the second byte of a two-character escape to its value.
// A zero entry marks an invalid escape.
var escapeToChar = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// appendUnicodeEscape decodes a \uXXXX escape at the cursor (which sits on
// the backslash), combining surrogate pairs into one supplementary code
// point. It reports false on malformed hex or a lone, duplicated, or
// misordered surrogate, leaving the cursor on the backslash so the error
// carries the escape's starting offset.
func (d *decoder) appendUnicodeEscape() bool {
	codepoint, ok := d.decodeHex4(d.pos + 2)
	if !ok {
		return false
	}
	escapeLen := 6

	if codepoint >= 0xDC00 && codepoint <= 0xDFFF {
		// Low surrogate with no preceding high surrogate.
		return false
	}
	if codepoint >= 0xD800 && codepoint <= 0xDBFF {
		if d.pos+8 > len(d.data) || d.data[d.pos+6] != '\\' || d.data[d.pos+7] != 'u' {
			return false
		}
		low, ok := d.decodeHex4(d.pos + 8)
		if !ok || low < 0xDC00 || low > 0xDFFF {
			return false
		}
		codepoint = 0x10000 + ((codepoint - 0xD800) << 10) + (low - 0xDC00)
		escapeLen = 12
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(codepoint))
	d.scratch.Write(buf[:n])
	d.pos += escapeLen
	return true
}

func (d *decoder) decodeHex4(pos int) (int, bool) {
	if pos+4 > len(d.data) {
		return 0, false
	}
	codepoint := 0
	for i := 0; i < 4; i++ {
		ch := d.data[pos+i]
		var digit int
		switch {
		case isDigit(ch):
			digit = int(ch - '0')
		case ch >= 'a' && ch <= 'f':
			digit = int(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			digit = int(ch-'A') + 10
		default:
			return 0, false
		}
		codepoint = codepoint<<4 | digit
	}
	return codepoint, true
}

// descend counts a container entry against the depth limit. tok is the
// opening bracket, whose 1-based position the error reports.
func (d *decoder) descend(tok *token) error {
	d.depth++
	if d.depth <= d.maxDepth {
		return nil
	}
	return newNestingError(d.depth, tok.index)
}

func (d *decoder) processValue(tok *token) (Value, error) {
	switch tok.typ {
	case tokenString:
		return String(tok.str), nil
	case tokenNumber:
		return Number(tok.num), nil
	case tokenBoolean:
		return Bool(tok.boolean), nil
	case tokenNull:
		return Null(), nil
	case tokenObjBegin:
		return d.parseObject(tok)
	case tokenArrBegin:
		return d.parseArray(tok)
	default:
		return Value{}, d.throw("value", tok)
	}
}

func (d *decoder) parseObject(open *token) (Value, error) {
	if err := d.descend(open); err != nil {
		return Value{}, err
	}
	obj := Object()
	var tok token
	d.nextToken(&tok)
	if tok.typ == tokenObjEnd {
		d.depth--
		return obj, nil
	}
	for {
		if tok.typ != tokenString {
			return Value{}, d.throw("object key string", &tok)
		}
		key := tok.str

		d.nextToken(&tok)
		if tok.typ != tokenColon {
			return Value{}, d.throw("colon", &tok)
		}

		d.nextToken(&tok)
		val, err := d.processValue(&tok)
		if err != nil {
			return Value{}, err
		}
		obj.obj[key] = val

		d.nextToken(&tok)
		if tok.typ == tokenObjEnd {
			d.depth--
			return obj, nil
		}
		if tok.typ != tokenComma {
			return Value{}, d.throw("comma or object end", &tok)
		}
		d.nextToken(&tok)
	}
}

func (d *decoder) parseArray(open *token) (Value, error) {
	if err := d.descend(open); err != nil {
		return Value{}, err
	}
	arr := Array()
	var tok token
	d.nextToken(&tok)
	if tok.typ == tokenArrEnd {
		d.depth--
		return arr, nil
	}
	for {
		val, err := d.processValue(&tok)
		if err != nil {
			return Value{}, err
		}
		arr.arr = append(arr.arr, val)

		d.nextToken(&tok)
		if tok.typ == tokenArrEnd {
			d.depth--
			return arr, nil
		}
		if tok.typ != tokenComma {
			return Value{}, d.throw("comma or array end", &tok)
		}
		d.nextToken(&tok)
	}
}
