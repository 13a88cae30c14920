package visitors

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/johnathonlee/sqltext/internal/quoting"
	"github.com/johnathonlee/sqltext/nodes"
)

// JDBC escape layouts for temporal constants.
const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05.999999999"
)

func (v *SQLStringVisitor) VisitConstant(n *nodes.Constant) string {
	if n.MultiValued {
		return "?"
	}
	if n.Value == nil {
		if n.Type == nodes.TypeBoolean {
			return "UNKNOWN"
		}
		return "NULL"
	}
	if n.Type.IsNumeric() {
		return formatNumber(n.Value)
	}

	switch n.Type {
	case nodes.TypeBoolean:
		if b, ok := n.Value.(bool); ok {
			if b {
				return "TRUE"
			}
			return "FALSE"
		}
	case nodes.TypeChar:
		if r, ok := n.Value.(rune); ok {
			return quoting.QuoteString(string(r))
		}
	case nodes.TypeDate:
		return "{d'" + formatTemporal(n.Value, dateLayout) + "'}"
	case nodes.TypeTime:
		return "{t'" + formatTemporal(n.Value, timeLayout) + "'}"
	case nodes.TypeTimestamp:
		return "{ts'" + formatTimestamp(n.Value) + "'}"
	case nodes.TypeVarbinary:
		if b, ok := n.Value.([]byte); ok {
			return "X'" + strings.ToUpper(hex.EncodeToString(b)) + "'"
		}
	}
	return quoting.QuoteString(fmt.Sprint(n.Value))
}

// formatNumber renders a numeric constant without quotes. A string or other
// value that does not parse as a number is quoted instead.
func formatNumber(val any) string {
	switch x := val.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case decimal.Decimal:
		return formatDecimal(x)
	case *decimal.Decimal:
		return formatDecimal(*x)
	case *big.Int:
		return x.String()
	default:
		s := fmt.Sprint(x)
		if _, err := decimal.NewFromString(s); err != nil {
			return quoting.QuoteString(s)
		}
		return s
	}
}

// formatDecimal keeps the declared scale, so 1.50 stays 1.50.
func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// formatFloat keeps a decimal point on integral values so the literal is
// read back as a floating point type. NaN and infinities have no literal
// form and are cast from their string names.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return floatCast("NaN", bits)
	case math.IsInf(f, 1):
		return floatCast("Infinity", bits)
	case math.IsInf(f, -1):
		return floatCast("-Infinity", bits)
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func floatCast(name string, bits int) string {
	typ := nodes.TypeDouble
	if bits == 32 {
		typ = nodes.TypeFloat
	}
	return "CAST(" + quoting.QuoteString(name) + " AS " + typ.String() + ")"
}

func formatTemporal(val any, layout string) string {
	if t, ok := val.(time.Time); ok {
		return t.Format(layout)
	}
	return quoting.EscapeString(fmt.Sprint(val))
}

// formatTimestamp trims trailing zero nanoseconds but keeps at least one
// fractional digit.
func formatTimestamp(val any) string {
	t, ok := val.(time.Time)
	if !ok {
		return quoting.EscapeString(fmt.Sprint(val))
	}
	s := t.Format(timestampLayout)
	if !strings.Contains(s[len(dateLayout):], ".") {
		s += ".0"
	}
	return s
}
