package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtnitsch/fpga-survey-extractor/models"
	"gopkg.in/yaml.v3"
)

type Storage struct{}

// Format is a file serialisation picked from the file extension.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// FormatFor maps a path's extension to its Format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("unsupported file extension %q for %s", filepath.Ext(path), path)
}

// FileStats is the size and modification time of an input file, logged
// with each run.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// GetFileStats stats an input file without reading it.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filePath)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}

// LoadArticles reads an article list from a YAML or JSON file. Citation
// keys must be present and unique.
func (s *Storage) LoadArticles(path string) ([]models.Article, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var articles []models.Article
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &articles)
	case FormatJSON:
		err = json.Unmarshal(data, &articles)
	default:
		return nil, fmt.Errorf("articles must be stored as YAML or JSON, got %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode articles from %s: %w", path, err)
	}

	seen := make(map[string]bool, len(articles))
	for i, a := range articles {
		if a.CitationKey == "" {
			return nil, fmt.Errorf("article #%d in %s has no citation key", i+1, path)
		}
		if seen[a.CitationKey] {
			return nil, fmt.Errorf("duplicate citation key %q in %s", a.CitationKey, path)
		}
		seen[a.CitationKey] = true
	}

	return articles, nil
}

// SaveArticles writes articles as YAML or JSON depending on the extension.
func (s *Storage) SaveArticles(path string, articles []models.Article) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(articles)
	case FormatJSON:
		data, err = json.MarshalIndent(articles, "", "  ")
	default:
		return fmt.Errorf("articles must be stored as YAML or JSON, got %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode articles: %w", err)
	}
	return s.SaveFile(path, data)
}

// ExportRecords writes the record table as YAML, JSON or CSV.
func (s *Storage) ExportRecords(path string, records []models.ModelRecord) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(records)
	case FormatJSON:
		data, err = json.MarshalIndent(records, "", "  ")
	case FormatCSV:
		data, err = encodeCSV(records)
	default:
		return fmt.Errorf("records cannot be exported as %s, use the snapshot database", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return s.SaveFile(path, data)
}

func encodeCSV(records []models.ModelRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(models.RecordColumns); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write(r.Row()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
