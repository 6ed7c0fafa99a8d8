package array

import "strings"

// TypeString renders the logical type of a column, e.g.
// "var * {x: float64, y: var * ?int64}".
func TypeString(a Array) string {
	var b strings.Builder
	writeType(&b, a)
	return b.String()
}

func writeType(b *strings.Builder, a Array) {
	switch x := a.(type) {
	case *Empty:
		b.WriteString("unknown")
	case *Bool, *Int64, *Float64, *String:
		b.WriteString(a.Kind().String())
	case *List:
		b.WriteString("var * ")
		writeType(b, x.Content)
	case *Record:
		b.WriteByte('{')
		for i, k := range x.Keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			writeType(b, x.Contents[i])
		}
		b.WriteByte('}')
	case *Option:
		switch x.Content.(type) {
		case *List, *Union:
			b.WriteString("option[")
			writeType(b, x.Content)
			b.WriteByte(']')
		default:
			b.WriteByte('?')
			writeType(b, x.Content)
		}
	case *Union:
		b.WriteString("union[")
		for i, c := range x.Contents {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, c)
		}
		b.WriteByte(']')
	default:
		b.WriteString("unknown")
	}
}
