package script

import (
	"fmt"
	"strconv"

	"github.com/opencapture/opencapture/pkg/controls"
)

// Decode converts the textual representation of a control value into a typed
// value according to the control's declared type.
//
// Decoding is best effort. Numeric types parse leniently: non-numeric text
// yields the type's zero value, and out-of-range byte and int32 literals
// wrap through the native integer conversion. Only an unsupported bool
// representation returns an error, and even then the returned value is the
// empty value so the caller can report the diagnostic and continue.
// Rectangle and Size have no textual representation and always decode to the
// empty value.
func Decode(typ controls.Type, text string) (controls.Value, error) {
	switch typ {
	case controls.TypeNone:
		return controls.Value{}, nil
	case controls.TypeBool:
		switch text {
		case "true":
			return controls.NewBool(true), nil
		case "false":
			return controls.NewBool(false), nil
		default:
			return controls.Value{}, fmt.Errorf("unsupported bool value %q", text)
		}
	case controls.TypeByte:
		return controls.NewByte(uint8(parseInt(text))), nil
	case controls.TypeInt32:
		return controls.NewInt32(int32(parseInt(text))), nil
	case controls.TypeInt64:
		return controls.NewInt64(parseInt(text)), nil
	case controls.TypeFloat:
		return controls.NewFloat(parseFloat(text)), nil
	case controls.TypeString:
		return controls.NewString(text), nil
	case controls.TypeRectangle, controls.TypeSize:
		// No textual form; the empty value stands in.
		return controls.Value{}, nil
	}
	return controls.Value{}, nil
}

func parseInt(text string) int64 {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(text string) float32 {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0
	}
	return float32(f)
}
