package cjson

import (
	"bytes"
	"fmt"
	"math"
)

type encoder struct {
	buf       *bytes.Buffer
	scratch   []byte
	maxDepth  int
	invalid   InvalidNumberMode
	precision int

	sparseConvert bool
	sparseRatio   int
	sparseSafe    int

	pretty bool
	prefix string
	indent string
}

// encodeText serializes a value graph. The buffer comes from the Config when
// the keep-buffer policy is on (and the Config has an owner to hold it),
// otherwise from the pool.
func encodeText(v Value, cfg *Config, pretty bool, prefix, indent string) (string, error) {
	settings := defaultSettings()
	if cfg != nil {
		settings = cfg.settings
	}

	var buf *bytes.Buffer
	if cfg != nil && settings.EncodeKeepBuffer {
		if cfg.encodeBuf == nil {
			cfg.encodeBuf = &bytes.Buffer{}
			cfg.encodeBuf.Grow(defaultBufferSize)
		}
		buf = cfg.encodeBuf
		buf.Reset()
	} else {
		buf = getEncodeBuffer()
		defer putEncodeBuffer(buf)
	}

	e := &encoder{
		buf:           buf,
		maxDepth:      settings.EncodeMaxDepth,
		invalid:       settings.EncodeInvalidNumbers,
		precision:     settings.EncodeNumberPrecision,
		sparseConvert: settings.EncodeSparseConvert,
		sparseRatio:   settings.EncodeSparseRatio,
		sparseSafe:    settings.EncodeSparseSafe,
		pretty:        pretty,
		prefix:        prefix,
		indent:        indent,
	}
	if err := e.appendData(v, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// appendData serializes one value. depth is the container nesting level of
// the enclosing context; it advances on every container descent, which is
// the only guard against runaway structures: a cyclic graph surfaces as
// excessive nesting once the bound is crossed.
func (e *encoder) appendData(v Value, depth int) error {
	switch v.kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		if v.b {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case KindNumber:
		return e.appendNumber(v.num)
	case KindString:
		e.appendString(v.str)
	case KindArray:
		depth++
		if depth > e.maxDepth {
			return e.nestingError(depth)
		}
		return e.appendArray(v.arr, depth)
	case KindObject:
		depth++
		if depth > e.maxDepth {
			return e.nestingError(depth)
		}
		return e.appendObject(v.obj, depth)
	default:
		return newEncodeException(v.kind.String(), "type not supported", ErrUnsupportedType)
	}
	return nil
}

func (e *encoder) nestingError(depth int) error {
	return &EncodeError{
		Msg: fmt.Sprintf("Cannot serialise, excessive nesting (%d)", depth),
		Err: ErrDepthLimit,
	}
}

func (e *encoder) appendNumber(f float64) error {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		switch e.invalid {
		case InvalidNumbersLiteral:
			switch {
			case math.IsNaN(f):
				e.buf.WriteString("NaN")
			case f > 0:
				e.buf.WriteString("Infinity")
			default:
				e.buf.WriteString("-Infinity")
			}
			return nil
		case InvalidNumbersNull:
			e.buf.WriteString("null")
			return nil
		default:
			return newEncodeException("number", "must not be NaN or Infinity", ErrInvalidNumber)
		}
	}
	e.scratch = appendNumber(e.scratch[:0], f, e.precision)
	e.buf.Write(e.scratch)
	return nil
}

// stringEscapes maps bytes that require escaping in string output to their
// JSON escape. Empty entries pass through verbatim: the encoder does not
// re-encode valid UTF-8 sequences or re-escape raw high bytes.
var stringEscapes = buildStringEscapes()

func buildStringEscapes() (table [256]string) {
	for i := 0; i < 0x20; i++ {
		table[i] = fmt.Sprintf(`\u%04x`, i)
	}
	table['\b'] = `\b`
	table['\t'] = `\t`
	table['\n'] = `\n`
	table['\f'] = `\f`
	table['\r'] = `\r`
	table['"'] = `\"`
	table['\\'] = `\\`
	table[0x7f] = `\u007f`
	return table
}

func (e *encoder) appendString(s string) {
	e.buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		if esc := stringEscapes[s[i]]; esc != "" {
			e.buf.WriteString(s[start:i])
			e.buf.WriteString(esc)
			start = i + 1
		}
	}
	e.buf.WriteString(s[start:])
	e.buf.WriteByte('"')
}

func (e *encoder) appendArray(elems []Value, depth int) error {
	e.buf.WriteByte('[')
	if len(elems) == 0 {
		e.buf.WriteByte(']')
		return nil
	}
	for i, elem := range elems {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if e.pretty {
			e.newline(depth)
		}
		if err := e.appendData(elem, depth); err != nil {
			return err
		}
	}
	if e.pretty {
		e.newline(depth - 1)
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) appendObject(obj map[any]Value, depth int) error {
	length, err := e.arrayLength(obj)
	if err != nil {
		return err
	}
	if length >= 0 {
		return e.appendDenseArray(obj, length, depth)
	}

	e.buf.WriteByte('{')
	first := true
	for key, val := range obj {
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		if e.pretty {
			e.newline(depth)
		}
		switch k := key.(type) {
		case string:
			e.appendString(k)
		case float64:
			e.buf.WriteByte('"')
			if err := e.appendNumber(k); err != nil {
				return err
			}
			e.buf.WriteByte('"')
		default:
			return newEncodeException("object", "object key must be a number or string", ErrInvalidKey)
		}
		e.buf.WriteByte(':')
		if e.pretty {
			e.buf.WriteByte(' ')
		}
		if err := e.appendData(val, depth); err != nil {
			return err
		}
	}
	if e.pretty && len(obj) > 0 {
		e.newline(depth - 1)
	}
	e.buf.WriteByte('}')
	return nil
}

// appendDenseArray serializes a number-keyed object as a JSON array of the
// classified length, filling key gaps with null.
func (e *encoder) appendDenseArray(obj map[any]Value, length, depth int) error {
	e.buf.WriteByte('[')
	for k := 1; k <= length; k++ {
		if k > 1 {
			e.buf.WriteByte(',')
		}
		if e.pretty {
			e.newline(depth)
		}
		if val, ok := obj[float64(k)]; ok {
			if err := e.appendData(val, depth); err != nil {
				return err
			}
		} else {
			e.buf.WriteString("null")
		}
	}
	if e.pretty {
		e.newline(depth - 1)
	}
	e.buf.WriteByte(']')
	return nil
}

// arrayLength classifies an object as array or object form. It returns the
// dense array length to serialize, or -1 for object form. Any string key, a
// non-positive or non-integer numeric key, or an excessively sparse key set
// with conversion enabled selects object form; an excessively sparse key set
// with conversion disabled is an error. A key set is excessively sparse when
// the ratio is positive, the maximum key exceeds the key count times the
// ratio, and the maximum key exceeds the safety threshold.
func (e *encoder) arrayLength(obj map[any]Value) (int, error) {
	if len(obj) == 0 {
		return -1, nil
	}
	maxKey, items := 0, 0
	for key := range obj {
		k, ok := key.(float64)
		if !ok {
			return -1, nil
		}
		if k < 1 || k != math.Trunc(k) || k > math.MaxInt32 {
			return -1, nil
		}
		if int(k) > maxKey {
			maxKey = int(k)
		}
		items++
	}
	if e.sparseRatio > 0 && maxKey > items*e.sparseRatio && maxKey > e.sparseSafe {
		if !e.sparseConvert {
			return 0, newEncodeException("object", "excessively sparse array", ErrSparseArray)
		}
		return -1, nil
	}
	return maxKey, nil
}

func (e *encoder) newline(depth int) {
	e.buf.WriteByte('\n')
	e.buf.WriteString(e.prefix)
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}
