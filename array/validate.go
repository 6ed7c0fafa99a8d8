package array

import (
	"errors"
	"fmt"

	eng "github.com/reoring/jsoncol/internal/engine"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("array: invalid layout")

// Validate checks the structural invariants of a and its children: offsets
// start at zero and never decrease, record columns are long enough, option
// and union indexes point inside their contents.
func Validate(a Array) error {
	return validate(a, "")
}

func invalidf(path, format string, args ...any) error {
	if path == "" {
		path = "/"
	}
	return fmt.Errorf("%w at %s: %s", ErrInvalid, path, fmt.Sprintf(format, args...))
}

func validate(a Array, path string) error {
	switch x := a.(type) {
	case nil:
		return invalidf(path, "nil array")
	case *Empty, *Bool, *Int64, *Float64:
		return nil
	case *String:
		return checkOffsets(x.Offsets, len(x.Content), path)
	case *List:
		if x.Content == nil {
			return invalidf(path, "list without content")
		}
		if err := checkOffsets(x.Offsets, x.Content.Len(), path); err != nil {
			return err
		}
		return validate(x.Content, path+"/*")
	case *Record:
		if len(x.Keys) != len(x.Contents) {
			return invalidf(path, "%d keys for %d contents", len(x.Keys), len(x.Contents))
		}
		seen := make(map[string]struct{}, len(x.Keys))
		for i, k := range x.Keys {
			if _, dup := seen[k]; dup {
				return invalidf(path, "duplicate field %q", k)
			}
			seen[k] = struct{}{}
			if x.Contents[i].Len() < x.Length {
				return invalidf(path, "field %q has %d values, want %d", k, x.Contents[i].Len(), x.Length)
			}
			if err := validate(x.Contents[i], path+"/"+eng.EscapePointerToken(k)); err != nil {
				return err
			}
		}
		return nil
	case *Option:
		if len(x.Valid)*64 < len(x.Index) {
			return invalidf(path, "validity bitmap shorter than index")
		}
		n := x.Content.Len()
		for i, j := range x.Index {
			valid := x.IsValid(i)
			switch {
			case valid && (j < 0 || int(j) >= n):
				return invalidf(path, "index %d out of range at position %d", j, i)
			case !valid && j != -1:
				return invalidf(path, "missing position %d has index %d", i, j)
			}
		}
		return validate(x.Content, path)
	case *Union:
		if len(x.Tags) != len(x.Index) {
			return invalidf(path, "%d tags for %d indexes", len(x.Tags), len(x.Index))
		}
		for i, tag := range x.Tags {
			if tag < 0 || int(tag) >= len(x.Contents) {
				return invalidf(path, "tag %d out of range at position %d", tag, i)
			}
			if j := x.Index[i]; j < 0 || int(j) >= x.Contents[tag].Len() {
				return invalidf(path, "index %d out of range for alternative %d", j, tag)
			}
		}
		for _, c := range x.Contents {
			if err := validate(c, path); err != nil {
				return err
			}
		}
		return nil
	default:
		return invalidf(path, "unsupported array type %T", a)
	}
}

func checkOffsets(offsets []int64, contentLen int, path string) error {
	if len(offsets) == 0 {
		return invalidf(path, "missing offsets")
	}
	if offsets[0] != 0 {
		return invalidf(path, "first offset is %d", offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return invalidf(path, "offsets decrease at %d", i)
		}
	}
	if last := offsets[len(offsets)-1]; last > int64(contentLen) {
		return invalidf(path, "last offset %d exceeds content length %d", last, contentLen)
	}
	return nil
}
