// Package export writes address lists to files in text, JSON, CSV or YAML
// form and reads them back.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Format selects the serialization layout.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	CSV  Format = "csv"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format outside Formats.
var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported formats.
var Formats = []Format{Text, JSON, CSV, YAML}

// ParseFormat maps a case-insensitive name to a Format. "txt" is accepted
// for Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, CSV, YAML:
		return f, nil
	case "txt":
		return Text, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Write serializes addrs to w.
func Write(w io.Writer, addrs []string, f Format) error {
	switch f {
	case Text:
		bw := bufio.NewWriter(w)
		for _, a := range addrs {
			if _, err := fmt.Fprintln(bw, a); err != nil {
				return err
			}
		}
		return bw.Flush()
	case JSON:
		if addrs == nil {
			addrs = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(addrs)
	case CSV:
		cw := csv.NewWriter(w)
		for _, a := range addrs {
			if err := cw.Write([]string{a}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case YAML:
		if addrs == nil {
			addrs = []string{}
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(addrs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

// Save writes addrs to the file at path, creating or truncating it. The
// format is checked before the file is touched.
func Save(path string, addrs []string, f Format) (err error) {
	if f, err = ParseFormat(string(f)); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	if err := Write(file, addrs, f); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// Read parses a list written by Write in format f.
func Read(r io.Reader, f Format) ([]string, error) {
	switch f {
	case Text:
		var out []string
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				out = append(out, line)
			}
		}
		return out, sc.Err()
	case JSON:
		var out []string
		if err := json.NewDecoder(r).Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	case CSV:
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = 1
		records, err := cr.ReadAll()
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(records))
		for _, rec := range records {
			out = append(out, rec[0])
		}
		return out, nil
	case YAML:
		var out []string
		if err := yaml.NewDecoder(r).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

// Load reads the file at path in format f.
func Load(path string, f Format) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer file.Close()

	addrs, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("export: read %s: %w", path, err)
	}
	return addrs, nil
}
