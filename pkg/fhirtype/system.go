package fhirtype

import "strings"

// SystemPrefix is the URL prefix shared by all FHIRPath System types.
const SystemPrefix = "http://hl7.org/fhirpath/System."

// FHIRPath System type URLs used by R4 StructureDefinitions for the value of
// primitives and for element ids.
const (
	SystemString   = SystemPrefix + "String"
	SystemBoolean  = SystemPrefix + "Boolean"
	SystemInteger  = SystemPrefix + "Integer"
	SystemDecimal  = SystemPrefix + "Decimal"
	SystemDate     = SystemPrefix + "Date"
	SystemDateTime = SystemPrefix + "DateTime"
	SystemTime     = SystemPrefix + "Time"
)

// systemPrimitives maps FHIRPath System types to FHIR primitive type codes.
var systemPrimitives = map[string]string{
	SystemString:   "string",
	SystemBoolean:  "boolean",
	SystemInteger:  "integer",
	SystemDecimal:  "decimal",
	SystemDate:     "date",
	SystemDateTime: "dateTime",
	SystemTime:     "time",
}

// IsSystemType reports whether code names a FHIRPath System type.
func IsSystemType(code string) bool {
	return strings.HasPrefix(code, SystemPrefix) && len(code) > len(SystemPrefix)
}

// SystemPrimitive returns the FHIR primitive code corresponding to a known
// FHIRPath System type URL.
func SystemPrimitive(url string) (string, bool) {
	code, ok := systemPrimitives[url]
	return code, ok
}

// complexTypes lists the R4 general-purpose and special datatypes.
var complexTypes = map[string]bool{
	"Address":             true,
	"Age":                 true,
	"Annotation":          true,
	"Attachment":          true,
	"BackboneElement":     true,
	"CodeableConcept":     true,
	"Coding":              true,
	"ContactDetail":       true,
	"ContactPoint":        true,
	"Contributor":         true,
	"Count":               true,
	"DataRequirement":     true,
	"Distance":            true,
	"Dosage":              true,
	"Duration":            true,
	"Element":             true,
	"ElementDefinition":   true,
	"Expression":          true,
	"Extension":           true,
	"HumanName":           true,
	"Identifier":          true,
	"MarketingStatus":     true,
	"Meta":                true,
	"Money":               true,
	"MoneyQuantity":       true,
	"Narrative":           true,
	"ParameterDefinition": true,
	"Period":              true,
	"Population":          true,
	"ProdCharacteristic":  true,
	"ProductShelfLife":    true,
	"Quantity":            true,
	"Range":               true,
	"Ratio":               true,
	"Reference":           true,
	"RelatedArtifact":     true,
	"SampledData":         true,
	"Signature":           true,
	"SimpleQuantity":      true,
	"SubstanceAmount":     true,
	"Timing":              true,
	"TriggerDefinition":   true,
	"UsageContext":        true,
}

// IsComplexType reports whether code is an R4 complex datatype.
func IsComplexType(code string) bool {
	return complexTypes[code]
}

// FromCode classifies a StructureDefinition type code the way the metadata
// tables record it: primitive codes become Primitive, "Reference" becomes
// Reference, System URLs become System and anything else Complex.
func FromCode(code string) FieldType {
	if p, ok := PrimitiveFromCode(code); ok {
		return Primitive(p)
	}
	if code == "Reference" {
		return Reference()
	}
	if IsSystemType(code) {
		return System(code)
	}
	return Complex(code)
}

// ChoiceSuffix returns the suffix a choice field takes for a type code:
// "dateTime" becomes "DateTime", "CodeableConcept" is unchanged.
func ChoiceSuffix(code string) string {
	if code == "" {
		return ""
	}
	c := code[0]
	if c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + code[1:]
	}
	return code
}
