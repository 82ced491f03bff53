package typing

// DataType enumerates the data types of SimCL values.  The current semantic
// pass only records declared types; it performs no inference, so most
// declarations carry TypeUnknown until a type checker exists to narrow them.
type DataType uint8

const (
	TypeInt DataType = iota
	TypeFloat
	TypeDouble
	TypeVector
	TypeMatrix
	TypeFunc
	TypeVoid
	TypeUnknown
)

// Repr returns a string representing the data type
func (dt DataType) Repr() string {
	switch dt {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeVector:
		return "vector"
	case TypeMatrix:
		return "matrix"
	case TypeFunc:
		return "function"
	case TypeVoid:
		return "void"
	default:
		return "unknown"
	}
}
