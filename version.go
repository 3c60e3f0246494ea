package fhirmetadata

import (
	"strings"

	"github.com/gofhir/metadata/pkg/loader"
	"github.com/gofhir/metadata/pkg/registry"
)

// FHIRVersion represents a FHIR specification version.
type FHIRVersion string

// Supported FHIR versions.
const (
	// R4 is FHIR Release 4 (4.0.1)
	R4 FHIRVersion = "R4"
)

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a supported FHIR version.
func (v FHIRVersion) IsValid() bool {
	_, ok := versionConfigs[v]
	return ok
}

// ParseVersion accepts a release name ("R4", "r4") or a version number
// ("4.0.1").
func ParseVersion(s string) (FHIRVersion, bool) {
	s = strings.TrimSpace(s)
	for v, cfg := range versionConfigs {
		if strings.EqualFold(s, string(v)) || s == cfg.FHIRVersionString {
			return v, true
		}
	}
	return "", false
}

// versionConfig holds version-specific configuration.
type versionConfig struct {
	// CorePackage is the FHIR core package the tables are generated from
	CorePackageName    string
	CorePackageVersion string

	// FHIRVersionString is the version string used in StructureDefinitions
	FHIRVersionString string

	registry func() *registry.Registry
}

// versionConfigs maps FHIR versions to their configurations.
var versionConfigs = map[FHIRVersion]versionConfig{
	R4: {
		CorePackageName:    "hl7.fhir.r4.core",
		CorePackageVersion: "4.0.1",
		FHIRVersionString:  registry.R4Version,
		registry:           registry.R4,
	},
}

// getVersionConfig returns the configuration for a FHIR version.
func getVersionConfig(v FHIRVersion) (versionConfig, bool) {
	cfg, ok := versionConfigs[v]
	return cfg, ok
}

// CorePackage returns the FHIR package the version's tables are generated
// from.
func (v FHIRVersion) CorePackage() (loader.PackageRef, bool) {
	cfg, ok := getVersionConfig(v)
	if !ok {
		return loader.PackageRef{}, false
	}
	return loader.PackageRef{Name: cfg.CorePackageName, Version: cfg.CorePackageVersion}, true
}

// Number returns the version number, e.g. "4.0.1".
func (v FHIRVersion) Number() string {
	cfg, _ := getVersionConfig(v)
	return cfg.FHIRVersionString
}

// Registry returns the metadata registry for the version.
func (v FHIRVersion) Registry() (*registry.Registry, bool) {
	cfg, ok := getVersionConfig(v)
	if !ok {
		return nil, false
	}
	return cfg.registry(), true
}
