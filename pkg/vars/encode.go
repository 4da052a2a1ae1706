package vars

import "strings"

// The encoding of variable values in persistent storage joins elements with
// the ASCII record separator. A variable with zero elements is encoded as a
// lone group separator, so that it can be told apart from a variable with one
// empty element (encoded as the empty string). Occurrences of the separator,
// the marker and the escape byte inside elements are preceded by the escape
// byte.
const (
	arraySep    = '\x1e'
	emptyMarker = "\x1d"
	escapeByte  = '\x10'
)

// Encode encodes a list of elements into one string.
func Encode(values []string) string {
	if len(values) == 0 {
		return emptyMarker
	}
	var sb strings.Builder
	for i, value := range values {
		if i > 0 {
			sb.WriteByte(arraySep)
		}
		for j := 0; j < len(value); j++ {
			switch b := value[j]; b {
			case arraySep, emptyMarker[0], escapeByte:
				sb.WriteByte(escapeByte)
				sb.WriteByte(b)
			default:
				sb.WriteByte(b)
			}
		}
	}
	return sb.String()
}

// Decode is the inverse of Encode. A trailing escape byte is kept as is.
func Decode(raw string) []string {
	if raw == emptyMarker {
		return []string{}
	}
	var values []string
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		switch b := raw[i]; {
		case b == escapeByte && i+1 < len(raw):
			i++
			sb.WriteByte(raw[i])
		case b == arraySep:
			values = append(values, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(b)
		}
	}
	return append(values, sb.String())
}
