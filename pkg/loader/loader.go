// Package loader reads StructureDefinitions out of FHIR NPM packages found in
// the local package cache, in .tgz archives, or at a remote URL.
//
// Only StructureDefinition resources are retained; everything else in a
// package is irrelevant to type metadata and is skipped while probing.
package loader

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/exp/slices"

	"github.com/gofhir/metadata/pkg/logger"
)

// ErrPackageNotFound is returned when a package is missing from the cache.
var ErrPackageNotFound = errors.New("package not found")

// ErrNoManifest is returned when an archive has no package/package.json.
var ErrNoManifest = errors.New("package.json not found")

// DefaultPackagePath returns the default FHIR package cache path.
func DefaultPackagePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fhir", "packages")
}

// PackageRef represents a reference to a FHIR package.
type PackageRef struct {
	Name    string
	Version string
}

// String returns the package spec in "name#version" format.
func (p PackageRef) String() string {
	return fmt.Sprintf("%s#%s", p.Name, p.Version)
}

// Definition is one StructureDefinition found in a package.
// Data holds the raw JSON; decoding is left to the caller.
type Definition struct {
	Source     string // file name inside the package
	URL        string
	Name       string
	Type       string
	Kind       string
	Derivation string
	Data       json.RawMessage
}

// Package represents a loaded FHIR package.
type Package struct {
	Name        string
	Version     string
	Path        string
	FHIRVersion string

	// Definitions are ordered by Source so that consumers see the same
	// sequence regardless of how the package was read.
	Definitions []Definition
}

// Ref returns the package reference.
func (p *Package) Ref() PackageRef {
	return PackageRef{Name: p.Name, Version: p.Version}
}

// Definition returns the StructureDefinition with the given canonical URL.
func (p *Package) Definition(url string) (Definition, bool) {
	for _, d := range p.Definitions {
		if d.URL == url {
			return d, true
		}
	}
	return Definition{}, false
}

// PackageManifest represents the package.json of a FHIR NPM package.
type PackageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	FHIRVersion  string            `json:"fhirVersion,omitempty"`
	FHIRVersions []string          `json:"fhirVersions,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

func (m PackageManifest) fhirVersion() string {
	if m.FHIRVersion != "" {
		return m.FHIRVersion
	}
	if len(m.FHIRVersions) > 0 {
		return m.FHIRVersions[0]
	}
	return ""
}

// DefaultPackages maps FHIR versions to the packages metadata is generated
// from. The first entry of each list is the core package and is required.
var DefaultPackages = map[string][]PackageRef{
	"4.0.1": {
		{Name: "hl7.fhir.r4.core", Version: "4.0.1"},
		{Name: "hl7.fhir.uv.extensions.r4", Version: "5.2.0"},
	},
}

// Loader loads FHIR packages from the NPM cache.
type Loader struct {
	basePath string
	client   *http.Client
	log      *logger.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used by LoadFromURL.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// NewLoader creates a new Loader with the given base path.
// An empty path selects DefaultPackagePath.
func NewLoader(basePath string, opts ...Option) *Loader {
	if basePath == "" {
		basePath = DefaultPackagePath()
	}
	l := &Loader{basePath: basePath, client: http.DefaultClient}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Default()
	}
	return l
}

// BasePath returns the base path for packages.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPackage loads a specific package by name and version.
func (l *Loader) LoadPackage(name, version string) (*Package, error) {
	pkgDir := filepath.Join(l.basePath, PackageRef{Name: name, Version: version}.String())

	if _, err := os.Stat(pkgDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s#%s at %s", ErrPackageNotFound, name, version, pkgDir)
	}

	manifestData, err := os.ReadFile(filepath.Join(pkgDir, "package", "package.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read package manifest: %w", err)
	}

	var manifest PackageManifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse package manifest: %w", err)
	}

	pkg := &Package{
		Name:        name,
		Version:     version,
		Path:        pkgDir,
		FHIRVersion: manifest.fhirVersion(),
	}

	packageDir := filepath.Join(pkgDir, "package")
	entries, err := os.ReadDir(packageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || skipFile(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(packageDir, entry.Name()))
		if err != nil {
			l.log.Debug("skipping %s: %v", entry.Name(), err)
			continue
		}
		pkg.add(entry.Name(), data)
	}

	pkg.sort()
	l.log.Debug("loaded %s with %d structure definitions", pkg.Ref(), len(pkg.Definitions))
	return pkg, nil
}

// LoadPackageRef loads a package from a PackageRef.
func (l *Loader) LoadPackageRef(ref PackageRef) (*Package, error) {
	return l.LoadPackage(ref.Name, ref.Version)
}

// LoadVersion loads all default packages for a specific FHIR version.
// A missing core package is an error; other packages are optional and a
// failure to load them is logged as a warning.
func (l *Loader) LoadVersion(version string) ([]*Package, error) {
	refs, ok := DefaultPackages[version]
	if !ok {
		return nil, fmt.Errorf("unknown FHIR version: %s (supported: %s)", version, strings.Join(SupportedVersions(), ", "))
	}

	packages := make([]*Package, 0, len(refs))
	for i, ref := range refs {
		pkg, err := l.LoadPackageRef(ref)
		if err != nil {
			if i == 0 {
				return nil, fmt.Errorf("failed to load core package: %w", err)
			}
			l.log.Warn("%s: %v", ref, err)
			continue
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// SupportedVersions returns the FHIR versions present in DefaultPackages.
func SupportedVersions() []string {
	versions := make([]string, 0, len(DefaultPackages))
	for v := range DefaultPackages {
		versions = append(versions, v)
	}
	slices.Sort(versions)
	return versions
}

// ListPackages returns all available packages in the cache.
func (l *Loader) ListPackages() ([]string, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, err
	}

	var packages []string
	for _, entry := range entries {
		if entry.IsDir() && strings.Contains(entry.Name(), "#") {
			packages = append(packages, entry.Name())
		}
	}
	return packages, nil
}

// ParsePackageSpec parses "name#version" into separate components.
func ParsePackageSpec(spec string) (name, version string) {
	name, version, _ = strings.Cut(spec, "#")
	return name, version
}

// LoadFromTgz loads a FHIR package from a local .tgz file.
func (l *Loader) LoadFromTgz(tgzPath string) (*Package, error) {
	file, err := os.Open(tgzPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tgz file: %w", err)
	}
	defer file.Close()

	return l.loadFromTgzReader(file, tgzPath)
}

// LoadFromTgzData loads a FHIR package from an in-memory .tgz archive.
func (l *Loader) LoadFromTgzData(data []byte) (*Package, error) {
	return l.loadFromTgzReader(bytes.NewReader(data), "memory")
}

// LoadFromURL loads a FHIR package from a remote URL pointing to a .tgz file.
func (l *Loader) LoadFromURL(ctx context.Context, url string) (*Package, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download package from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download package: HTTP %d", resp.StatusCode)
	}

	return l.loadFromTgzReader(resp.Body, url)
}

// LoadFromResources builds a package named "custom" from raw resources.
// Inputs that are not StructureDefinitions, or not JSON, are skipped.
func (l *Loader) LoadFromResources(resources [][]byte) (*Package, error) {
	pkg := &Package{Name: "custom", Path: "memory"}
	for i, data := range resources {
		pkg.add(fmt.Sprintf("resource-%04d.json", i), data)
	}
	pkg.sort()
	return pkg, nil
}

func (l *Loader) loadFromTgzReader(reader io.Reader, source string) (*Package, error) {
	gzReader, err := gzip.NewReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)
	pkg := &Package{}
	var manifestData []byte

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar entry: %w", err)
		}
		if header.Typeflag == tar.TypeDir {
			continue
		}

		name := strings.TrimPrefix(header.Name, "package/")
		if strings.Contains(name, "/") || !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := io.ReadAll(tarReader)
		if err != nil {
			l.log.Debug("skipping %s: %v", name, err)
			continue
		}

		if name == "package.json" {
			manifestData = data
			continue
		}
		if skipFile(name) {
			continue
		}
		pkg.add(name, data)
	}

	if manifestData == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoManifest, source)
	}

	var manifest PackageManifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse package manifest: %w", err)
	}

	pkg.Name = manifest.Name
	pkg.Version = manifest.Version
	pkg.FHIRVersion = manifest.fhirVersion()
	pkg.Path = source
	pkg.sort()
	return pkg, nil
}

func skipFile(name string) bool {
	return !strings.HasSuffix(name, ".json") || name == "package.json" || name == ".index.json"
}

// add probes data and keeps it when it is a StructureDefinition.
func (p *Package) add(source string, data []byte) {
	var probe struct {
		ResourceType string `json:"resourceType"`
		URL          string `json:"url"`
		Name         string `json:"name"`
		Type         string `json:"type"`
		Kind         string `json:"kind"`
		Derivation   string `json:"derivation"`
	}
	if err := json.Unmarshal(data, &probe); err != nil || probe.ResourceType != "StructureDefinition" {
		return
	}
	p.Definitions = append(p.Definitions, Definition{
		Source:     source,
		URL:        probe.URL,
		Name:       probe.Name,
		Type:       probe.Type,
		Kind:       probe.Kind,
		Derivation: probe.Derivation,
		Data:       data,
	})
}

func (p *Package) sort() {
	slices.SortStableFunc(p.Definitions, func(a, b Definition) int {
		return strings.Compare(a.Source, b.Source)
	})
}
