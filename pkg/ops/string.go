package ops

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sandrolain/rulelogic/pkg/value"
)

// Cat implements `cat`: stringifies and concatenates every operand with no
// separator. Arrays stringify by concatenating their own elements, which is
// what makes `cat(map(xs, v))` behave as a join.
func Cat(args []value.Value) (value.Value, *value.Error) {
	var sb strings.Builder
	for _, v := range args {
		sb.WriteString(stringify(v))
	}
	return value.String(sb.String()), nil
}

func stringify(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return ""
	case value.KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case value.KindNumber:
		if v.IsInt() {
			return strconv.FormatInt(v.Int64(), 10)
		}
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case value.KindString:
		return v.Str()
	case value.KindArray:
		var sb strings.Builder
		for _, item := range v.Items() {
			sb.WriteString(stringify(item))
		}
		return sb.String()
	case value.KindDateTime:
		return v.FormatISO()
	case value.KindDuration:
		return v.FormatDuration()
	default:
		return ""
	}
}

// Substr implements `substr`: `[s, start, len?]` with Python-style negative
// start-from-end indexing.
func Substr(args []value.Value) (value.Value, *value.Error) {
	if len(args) < 2 || len(args) > 3 {
		return value.Null, value.NewError(value.InvalidArguments, "\"substr\" takes 2 or 3 operands")
	}
	if args[0].Kind() != value.KindString {
		return value.Null, value.NewError(value.InvalidArguments, "\"substr\" requires a string")
	}
	runes := []rune(args[0].Str())
	n := len(runes)

	startN, err := value.ToNumber(args[1])
	if err != nil {
		return value.Null, value.NewError(value.NaN, "substr start is not numeric")
	}
	start := int(startN.Int64())
	if start < 0 {
		start += n
	}
	start = clamp(start, n)

	end := n
	if len(args) == 3 {
		lenN, err := value.ToNumber(args[2])
		if err != nil {
			return value.Null, value.NewError(value.NaN, "substr length is not numeric")
		}
		l := int(lenN.Int64())
		if l < 0 {
			end = clamp(n+l, n)
		} else {
			end = clamp(start+l, n)
		}
	}
	if end < start {
		end = start
	}
	return value.String(string(runes[start:end])), nil
}

func bothStrings(args []value.Value, op string) (string, string, *value.Error) {
	if len(args) != 2 {
		return "", "", value.NewError(value.InvalidArguments, "\""+op+"\" requires exactly two operands")
	}
	if args[0].Kind() != value.KindString || args[1].Kind() != value.KindString {
		return "", "", value.NewError(value.InvalidArguments, "\""+op+"\" requires two strings")
	}
	return args[0].Str(), args[1].Str(), nil
}

// StartsWith implements `starts_with`.
func StartsWith(args []value.Value) (value.Value, *value.Error) {
	s, prefix, err := bothStrings(args, "starts_with")
	if err != nil {
		return value.Null, err
	}
	return value.Bool(strings.HasPrefix(s, prefix)), nil
}

// EndsWith implements `ends_with`.
func EndsWith(args []value.Value) (value.Value, *value.Error) {
	s, suffix, err := bothStrings(args, "ends_with")
	if err != nil {
		return value.Null, err
	}
	return value.Bool(strings.HasSuffix(s, suffix)), nil
}

func oneString(args []value.Value, op string) (string, *value.Error) {
	if len(args) != 1 {
		return "", value.NewError(value.InvalidArguments, "\""+op+"\" requires exactly one operand")
	}
	if args[0].Kind() != value.KindString {
		return "", value.NewError(value.InvalidArguments, "\""+op+"\" requires a string")
	}
	return args[0].Str(), nil
}

// Upper implements `upper`.
func Upper(args []value.Value) (value.Value, *value.Error) {
	s, err := oneString(args, "upper")
	if err != nil {
		return value.Null, err
	}
	return value.String(strings.ToUpper(s)), nil
}

// Lower implements `lower`.
func Lower(args []value.Value) (value.Value, *value.Error) {
	s, err := oneString(args, "lower")
	if err != nil {
		return value.Null, err
	}
	return value.String(strings.ToLower(s)), nil
}

const trimCutset = " \t\r\n\f\v"

// Trim implements `trim`.
func Trim(args []value.Value) (value.Value, *value.Error) {
	s, err := oneString(args, "trim")
	if err != nil {
		return value.Null, err
	}
	return value.String(strings.Trim(s, trimCutset)), nil
}

// Split implements `split`: `[s, sep]`. When sep compiles as a regular
// expression that carries at least one named capture group, split always
// returns an Object keyed by group name (empty object if sep does not
// match at all), which lets a single rule extract structured fields out of
// a string in one step. Otherwise (sep is not a valid regex, or has no
// named groups) it falls back to a literal split, returning an Array of
// the resulting String pieces.
func Split(args []value.Value) (value.Value, *value.Error) {
	s, sep, err := bothStrings(args, "split")
	if err != nil {
		return value.Null, err
	}

	if re, reErr := regexp.Compile(sep); reErr == nil && hasNamedGroup(re) {
		match := re.FindStringSubmatch(s)
		pairs := []value.Pair{}
		if match != nil {
			for i, name := range re.SubexpNames() {
				if i == 0 || name == "" {
					continue
				}
				pairs = append(pairs, value.Pair{Key: name, Val: value.String(match[i])})
			}
		}
		return value.Object(pairs), nil
	}

	parts := strings.Split(s, sep)
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.String(p)
	}
	return value.Array(out), nil
}

func hasNamedGroup(re *regexp.Regexp) bool {
	for _, name := range re.SubexpNames() {
		if name != "" {
			return true
		}
	}
	return false
}
