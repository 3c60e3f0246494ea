package fhirtype

// PrimitiveType enumerates the FHIR R4 primitive datatypes a field can hold.
// It is a tag only; values carry no payload.
type PrimitiveType uint8

// The zero PrimitiveType is not a valid primitive.
const (
	Boolean PrimitiveType = iota + 1
	Integer
	String
	Date
	DateTime
	Instant
	Time
	Decimal
	Uri
	Url
	Canonical
	Code
	Oid
	Id
	Markdown
	Base64Binary
	UnsignedInt
	PositiveInt

	primitiveCount = iota
)

var primitiveNames = [...]string{
	Boolean:      "Boolean",
	Integer:      "Integer",
	String:       "String",
	Date:         "Date",
	DateTime:     "DateTime",
	Instant:      "Instant",
	Time:         "Time",
	Decimal:      "Decimal",
	Uri:          "Uri",
	Url:          "Url",
	Canonical:    "Canonical",
	Code:         "Code",
	Oid:          "Oid",
	Id:           "Id",
	Markdown:     "Markdown",
	Base64Binary: "Base64Binary",
	UnsignedInt:  "UnsignedInt",
	PositiveInt:  "PositiveInt",
}

var primitiveCodes = [...]string{
	Boolean:      "boolean",
	Integer:      "integer",
	String:       "string",
	Date:         "date",
	DateTime:     "dateTime",
	Instant:      "instant",
	Time:         "time",
	Decimal:      "decimal",
	Uri:          "uri",
	Url:          "url",
	Canonical:    "canonical",
	Code:         "code",
	Oid:          "oid",
	Id:           "id",
	Markdown:     "markdown",
	Base64Binary: "base64Binary",
	UnsignedInt:  "unsignedInt",
	PositiveInt:  "positiveInt",
}

// codeAliases maps R4 primitive codes that have no slot of their own.
var codeAliases = map[string]PrimitiveType{
	"uuid":  Uri,
	"xhtml": String,
}

var primitivesByCode = func() map[string]PrimitiveType {
	m := make(map[string]PrimitiveType, primitiveCount+len(codeAliases))
	for p := Boolean; p <= PositiveInt; p++ {
		m[primitiveCodes[p]] = p
	}
	for code, p := range codeAliases {
		m[code] = p
	}
	return m
}()

// Valid reports whether p is one of the enumerated primitives.
func (p PrimitiveType) Valid() bool {
	return p >= Boolean && p <= PositiveInt
}

// String returns the Go-style name of the primitive, e.g. "DateTime".
func (p PrimitiveType) String() string {
	if !p.Valid() {
		return "PrimitiveType(invalid)"
	}
	return primitiveNames[p]
}

// Code returns the FHIR type code of the primitive, e.g. "dateTime".
func (p PrimitiveType) Code() string {
	if !p.Valid() {
		return ""
	}
	return primitiveCodes[p]
}

// PrimitiveFromCode maps a FHIR primitive type code to its PrimitiveType.
// Matching is case-sensitive. "uuid" maps to Uri and "xhtml" to String.
func PrimitiveFromCode(code string) (PrimitiveType, bool) {
	p, ok := primitivesByCode[code]
	return p, ok
}

// Primitives returns every valid PrimitiveType in declaration order.
func Primitives() []PrimitiveType {
	out := make([]PrimitiveType, 0, primitiveCount)
	for p := Boolean; p <= PositiveInt; p++ {
		out = append(out, p)
	}
	return out
}
