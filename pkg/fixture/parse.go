package fixture

import (
	"encoding"
	"strconv"
	"strings"
	"unicode"
)

// Converter turns a single line into a value of type T.
type Converter[T any] func(line string) (T, error)

// Parse consumes every remaining line of f and converts it with conv.
// Values are returned in line order. The first failing line stops parsing
// and Parse returns a *LineError with no values; later lines are left unread.
func Parse[T any](f *Fixture, conv Converter[T]) ([]T, error) {
	values := make([]T, 0)
	i := 0
	for line := range f.Lines() {
		v, err := conv(line)
		if err != nil {
			return nil, &LineError{Index: i, Line: line, Err: err}
		}
		values = append(values, v)
		i++
	}
	return values, nil
}

// ParseText parses every remaining line with T's UnmarshalText method.
func ParseText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](f *Fixture) ([]T, error) {
	return Parse(f, func(line string) (T, error) {
		var v T
		err := PT(&v).UnmarshalText([]byte(line))
		return v, err
	})
}

// Line converters for the common value types.
var (
	Int     Converter[int]      = strconv.Atoi
	Int64   Converter[int64]    = func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
	Uint64  Converter[uint64]   = func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }
	Float64 Converter[float64]  = func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	Bool    Converter[bool]     = strconv.ParseBool
	String  Converter[string]   = func(s string) (string, error) { return s, nil }
	Fields  Converter[[]string] = func(s string) ([]string, error) { return strings.Fields(s), nil }
)

// Ints converts a line of comma- or whitespace-separated integers.
func Ints(line string) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
