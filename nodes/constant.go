package nodes

import (
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DataType is the declared runtime type of a constant.
type DataType int

const (
	TypeNull DataType = iota
	TypeString
	TypeChar
	TypeBoolean
	TypeByte
	TypeShort
	TypeInteger
	TypeLong
	TypeBigInteger
	TypeFloat
	TypeDouble
	TypeBigDecimal
	TypeDate
	TypeTime
	TypeTimestamp
	TypeVarbinary
	TypeObject
	TypeClob
	TypeBlob
	TypeXML
)

var dataTypeNames = [...]string{
	TypeNull:       "null",
	TypeString:     "string",
	TypeChar:       "char",
	TypeBoolean:    "boolean",
	TypeByte:       "byte",
	TypeShort:      "short",
	TypeInteger:    "integer",
	TypeLong:       "long",
	TypeBigInteger: "biginteger",
	TypeFloat:      "float",
	TypeDouble:     "double",
	TypeBigDecimal: "bigdecimal",
	TypeDate:       "date",
	TypeTime:       "time",
	TypeTimestamp:  "timestamp",
	TypeVarbinary:  "varbinary",
	TypeObject:     "object",
	TypeClob:       "clob",
	TypeBlob:       "blob",
	TypeXML:        "xml",
}

// String returns the type name used in CAST and DECLARE.
func (t DataType) String() string {
	if t < 0 || int(t) >= len(dataTypeNames) {
		return "object"
	}
	return dataTypeNames[t]
}

// IsNumeric reports whether constants of this type render unquoted.
func (t DataType) IsNumeric() bool {
	switch t {
	case TypeByte, TypeShort, TypeInteger, TypeLong, TypeBigInteger,
		TypeFloat, TypeDouble, TypeBigDecimal:
		return true
	}
	return false
}

// ParseDataType resolves a type name case-insensitively. Common aliases
// (int, bigint, varchar, decimal, ...) map to their canonical type.
func ParseDataType(name string) (DataType, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range dataTypeNames {
		if s == n {
			return DataType(i), true
		}
	}
	switch n {
	case "int":
		return TypeInteger, true
	case "bigint":
		return TypeLong, true
	case "smallint":
		return TypeShort, true
	case "tinyint":
		return TypeByte, true
	case "varchar":
		return TypeString, true
	case "decimal":
		return TypeBigDecimal, true
	case "real":
		return TypeFloat, true
	case "bool":
		return TypeBoolean, true
	}
	return TypeObject, false
}

// Constant is a typed literal value.
type Constant struct {
	Value       any
	Type        DataType
	MultiValued bool // placeholder for a list of values, renders as ?
}

func (c *Constant) Accept(v Visitor) string { return v.VisitConstant(c) }
func (*Constant) expressionNode()           {}

// IsNull reports whether the constant holds no value.
func (c *Constant) IsNull() bool { return c.Value == nil }

// NewConstant creates a Constant, inferring its type from the Go value.
func NewConstant(val any) *Constant {
	return &Constant{Value: val, Type: TypeOf(val)}
}

// NewTypedConstant creates a Constant with an explicit declared type.
// A nil value of TypeBoolean is the tri-valued UNKNOWN.
func NewTypedConstant(val any, t DataType) *Constant {
	return &Constant{Value: val, Type: t}
}

// TypeOf infers the declared type of a Go value.
func TypeOf(val any) DataType {
	switch val.(type) {
	case nil:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case int8, uint8:
		return TypeByte
	case int16, uint16:
		return TypeShort
	case int, int32, uint32:
		return TypeInteger
	case int64, uint, uint64:
		return TypeLong
	case *big.Int:
		return TypeBigInteger
	case float32:
		return TypeFloat
	case float64:
		return TypeDouble
	case decimal.Decimal, *decimal.Decimal:
		return TypeBigDecimal
	case time.Time:
		return TypeTimestamp
	case []byte:
		return TypeVarbinary
	default:
		return TypeObject
	}
}

// Literal wraps a raw Go value into a Constant. If val already implements
// Expression, it is returned as-is.
func Literal(val any) Expression {
	if e, ok := val.(Expression); ok {
		return e
	}
	return NewConstant(val)
}

// Reference is a bind-parameter placeholder.
type Reference struct {
	Index int // zero-based position among the command's references
}

func (r *Reference) Accept(v Visitor) string { return v.VisitReference(r) }
func (*Reference) expressionNode()           {}
