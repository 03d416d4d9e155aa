package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/flashqual/internal/model"
)

const (
	manifestFile   = "flashqual_session.yaml"
	reportsDir     = "flashqual_reports"
	manifestFormat = 1
)

// SessionManifest describes the artifacts of one qualification session. A
// manifest left with Completed false means the previous session never
// restored the chip and its golden image must not be overwritten.
type SessionManifest struct {
	Version      int       `yaml:"version"`
	Target       string    `yaml:"target"`
	Chip         string    `yaml:"chip,omitempty"`
	Size         int64     `yaml:"size"`
	Golden       m.Path    `yaml:"golden"`
	GoldenSHA256 string    `yaml:"golden_sha256,omitempty"`
	Layout       m.Path    `yaml:"layout"`
	RandomData   m.Path    `yaml:"random_data"`
	StartedAt    time.Time `yaml:"started_at"`
	Completed    bool      `yaml:"completed"`
}

type outcomeYAML struct {
	Name       string `yaml:"name"`
	Conclusion string `yaml:"conclusion"`
	Err        string `yaml:"err,omitempty"`
}

type reportYAML struct {
	Target   string           `yaml:"target"`
	Metadata m.ReportMetadata `yaml:"metadata"`
	Finished time.Time        `yaml:"finished"`
	Outcomes []outcomeYAML    `yaml:"outcomes"`
	Summary  map[string]int   `yaml:"summary"`
}

// ReportStore persists session manifests and run reports in a work directory.
type ReportStore interface {
	SaveManifest(dir m.Path, manifest SessionManifest) error
	// LoadManifest returns an error wrapping fs.ErrNotExist when dir has none.
	LoadManifest(dir m.Path) (SessionManifest, error)
	// SaveReport writes one report file and returns its path.
	SaveReport(dir m.Path, target m.FlashTarget, meta m.ReportMetadata, outcomes []m.Outcome) (m.Path, error)
	// LoadReports returns the saved reports of dir, oldest first.
	LoadReports(dir m.Path) ([]StoredReport, error)
}

// StoredReport is a report read back from a work directory.
type StoredReport struct {
	Path     m.Path
	Target   m.FlashTarget
	Metadata m.ReportMetadata
	Finished time.Time
	Outcomes []m.Outcome
}

// LocalReportStore keeps YAML files on the local filesystem.
type LocalReportStore struct {
	now func() time.Time
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{now: time.Now}
}

// ManifestPath returns where the manifest of dir lives.
func ManifestPath(dir m.Path) m.Path {
	return m.Path(filepath.Join(string(dir), manifestFile))
}

// SaveManifest atomically replaces the manifest in dir.
func (rs *LocalReportStore) SaveManifest(dir m.Path, manifest SessionManifest) error {
	manifest.Version = manifestFormat

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode session manifest: %w", err)
	}

	return writeAtomic(string(ManifestPath(dir)), data)
}

// LoadManifest reads the manifest in dir.
func (rs *LocalReportStore) LoadManifest(dir m.Path) (SessionManifest, error) {
	var manifest SessionManifest

	data, err := os.ReadFile(string(ManifestPath(dir)))
	if err != nil {
		return manifest, fmt.Errorf("failed to read session manifest: %w", err)
	}

	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("failed to decode session manifest: %w", err)
	}

	if manifest.Version != manifestFormat {
		return manifest, fmt.Errorf("unsupported session manifest version %d", manifest.Version)
	}

	return manifest, nil
}

// SaveReport writes the outcomes to <dir>/flashqual_reports/<hash>.yaml.
func (rs *LocalReportStore) SaveReport(dir m.Path, target m.FlashTarget, meta m.ReportMetadata, outcomes []m.Outcome) (m.Path, error) {
	report := reportYAML{
		Target:   string(target),
		Metadata: meta,
		Finished: rs.clock()().UTC(),
		Summary:  make(map[string]int),
	}

	for _, o := range outcomes {
		entry := outcomeYAML{Name: o.Name, Conclusion: o.Conclusion.String()}
		if o.Err != nil {
			entry.Err = o.Err.Error()
		}

		report.Outcomes = append(report.Outcomes, entry)
		report.Summary[o.Conclusion.String()]++
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	out := filepath.Join(string(dir), reportsDir)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	path := filepath.Join(out, computeReportHash(data)+".yaml")
	if err := writeAtomic(path, data); err != nil {
		return "", err
	}

	return m.Path(path), nil
}

// LoadReports reads every report under <dir>/flashqual_reports. A missing
// reports directory yields no reports.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]StoredReport, error) {
	paths, err := filepath.Glob(filepath.Join(string(dir), reportsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]StoredReport, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", path, err)
		}

		var raw reportYAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
		}

		report := StoredReport{
			Path:     m.Path(path),
			Target:   m.FlashTarget(raw.Target),
			Metadata: raw.Metadata,
			Finished: raw.Finished,
		}

		for _, o := range raw.Outcomes {
			conclusion, err := m.ParseConclusion(o.Conclusion)
			if err != nil {
				return nil, fmt.Errorf("report %s: %w", path, err)
			}

			outcome := m.Outcome{Name: o.Name, Conclusion: conclusion}
			if o.Err != "" {
				outcome.Err = errors.New(o.Err)
			}

			report.Outcomes = append(report.Outcomes, outcome)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Finished.Before(reports[j].Finished)
	})

	return reports, nil
}

func (rs *LocalReportStore) clock() func() time.Time {
	if rs.now == nil {
		return time.Now
	}

	return rs.now
}

// computeReportHash returns the first 16 hex digits of the SHA-256 of data.
func computeReportHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

// FileSHA256 hashes the file at path.
func FileSHA256(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}

// IsNotExist reports whether err means a missing manifest.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
