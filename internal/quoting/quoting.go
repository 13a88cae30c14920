// Package quoting provides shared identifier quoting and literal escaping.
package quoting

import (
	"strings"
	"unicode"
)

// DoubleQuote quotes a SQL identifier using double quotes.
// Internal double quotes are escaped by doubling them.
func DoubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// EscapeString escapes a string literal body by doubling single quotes.
// No other character is escaped.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// QuoteString returns s as a complete single-quoted literal.
func QuoteString(s string) string {
	return "'" + EscapeString(s) + "'"
}

// EscapeSinglePart quotes one identifier part when it is a reserved word or
// is not a valid bare identifier.
func EscapeSinglePart(part string) string {
	if IsReservedWord(part) || !IsBareIdentifier(part) {
		return DoubleQuote(part)
	}
	return part
}

// EscapeName quotes a possibly dotted name part by part.
func EscapeName(name string) string {
	if !strings.Contains(name, ".") {
		return EscapeSinglePart(name)
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = EscapeSinglePart(p)
	}
	return strings.Join(parts, ".")
}

// IsBareIdentifier reports whether s can appear unquoted: a letter, # or @
// followed by letters, digits or underscores.
func IsBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '#' && r != '@' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// IsReservedWord reports whether s is a reserved word, ignoring case.
func IsReservedWord(s string) bool {
	_, ok := reservedWords[strings.ToUpper(s)]
	return ok
}

var reservedWords = buildReserved(
	"ADD", "ALL", "ALTER", "AND", "ANY", "ARRAY", "ARRAY_AGG", "AS", "ASC",
	"ATOMIC", "AUTHORIZATION", "BEGIN", "BETWEEN", "BIGDECIMAL", "BIGINT",
	"BIGINTEGER", "BINARY", "BLOB", "BOOLEAN", "BOTH", "BREAK", "BY", "BYTE",
	"CALL", "CALLED", "CASCADED", "CASE", "CAST", "CHAR", "CHARACTER", "CHECK",
	"CLOB", "CLOSE", "COLLATE", "COLUMN", "COMMIT", "CONNECT", "CONSTRAINT",
	"CONTINUE", "CONVERT", "CORRESPONDING", "CREATE", "CRITERIA", "CROSS",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
	"CURSOR", "CYCLE", "DATE", "DAY", "DEALLOCATE", "DECIMAL", "DECLARE",
	"DEFAULT", "DELETE", "DESC", "DESCRIBE", "DETERMINISTIC", "DISCONNECT",
	"DISTINCT", "DOUBLE", "DROP", "EACH", "ELSE", "END", "ERROR", "ESCAPE",
	"EXCEPT", "EXEC", "EXECUTE", "EXISTS", "EXTERNAL", "FALSE", "FETCH",
	"FILTER", "FLOAT", "FOR", "FOREIGN", "FROM", "FULL", "FUNCTION", "GET",
	"GLOBAL", "GRANT", "GROUP", "HAS", "HAVING", "HOLD", "HOUR", "IDENTITY",
	"IF", "IMMEDIATE", "IMPORT", "IN", "INDEX", "INDICATOR", "INNER", "INOUT",
	"INPUT", "INSENSITIVE", "INSERT", "INTEGER", "INTERSECT", "INTERVAL",
	"INTO", "IS", "ISOLATION", "JOIN", "LANGUAGE", "LARGE", "LEADING", "LEAVE",
	"LEFT", "LIKE", "LIKE_REGEX", "LIMIT", "LOCAL", "LONG", "LOOP", "MAKEDEP",
	"MAKEIND", "MAKENOTDEP", "MATCH", "MERGE", "METHOD", "MINUTE", "MODIFIES",
	"MODULE", "MONTH", "NATURAL", "NEW", "NO", "NOCACHE", "NONE", "NOT",
	"NULL", "OBJECT", "OF", "OFFSET", "OLD", "ON", "ONLY", "OPEN", "OPTION",
	"OPTIONS", "OR", "ORDER", "OUT", "OUTER", "OUTPUT", "OVER", "OVERLAPS",
	"PARAMETER", "PARTITION", "PRECISION", "PREPARE", "PRIMARY", "PROCEDURE",
	"RANGE", "READS", "REAL", "RECURSIVE", "REFERENCES", "REFERENCING",
	"RELEASE", "RETURN", "RETURNS", "REVOKE", "RIGHT", "ROLLBACK", "ROLLUP",
	"ROW", "ROWS", "SAVEPOINT", "SCROLL", "SEARCH", "SECOND", "SELECT",
	"SENSITIVE", "SESSION_USER", "SET", "SHORT", "SIMILAR", "SMALLINT",
	"SOME", "SPECIFIC", "SPECIFICTYPE", "SQL", "SQLEXCEPTION", "SQLSTATE",
	"SQLWARNING", "START", "STATIC", "STRING", "SYSTEM", "SYSTEM_USER",
	"TABLE", "TEMPORARY", "THEN", "TIME", "TIMESTAMP", "TIMEZONE_HOUR",
	"TIMEZONE_MINUTE", "TINYINT", "TO", "TRAILING", "TRANSLATE", "TRIGGER",
	"TRUE", "UNION", "UNIQUE", "UNKNOWN", "UPDATE", "USER", "USING",
	"VALUES", "VARBINARY", "VARCHAR", "VARYING", "VIRTUAL", "WHEN",
	"WHENEVER", "WHERE", "WHILE", "WINDOW", "WITH", "WITHIN", "WITHOUT",
	"XML", "XMLAGG", "XMLATTRIBUTES", "XMLBINARY", "XMLCAST", "XMLCOMMENT",
	"XMLCONCAT", "XMLDOCUMENT", "XMLELEMENT", "XMLEXISTS", "XMLFOREST",
	"XMLITERATE", "XMLNAMESPACES", "XMLPARSE", "XMLPI", "XMLQUERY",
	"XMLSERIALIZE", "XMLTABLE", "XMLTEXT", "XMLVALIDATE", "YEAR",
)

func buildReserved(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
