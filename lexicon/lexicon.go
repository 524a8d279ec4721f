// Package lexicon reads lexical entries from disk. Four formats are
// understood, chosen by file extension: the pipe-separated line format
// (.la), YAML, TOML and JSON.
package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/paradigm"
)

// document is the shape of a YAML, TOML or JSON lexicon file.
type document struct {
	Entries []paradigm.LexicalEntry `json:"entries" yaml:"entries" toml:"entry"`
}

// Extensions lists the file extensions Load understands.
var Extensions = []string{".la", ".yaml", ".yml", ".toml", ".json"}

// Load reads every entry in the file at path.
func Load(path string) ([]paradigm.LexicalEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	entries, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// Parse decodes data in the format named by ext (".la", ".yaml", ...).
func Parse(ext string, data []byte) ([]paradigm.LexicalEntry, error) {
	var doc document
	switch strings.ToLower(ext) {
	case ".la":
		return ParseLines(bytes.NewReader(data))
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported lexicon format %q", ext)
	}
	return doc.Entries, nil
}

// LoadPaths loads each path in turn. A directory contributes every file
// in it with a known extension, in name order.
func LoadPaths(paths ...string) ([]paradigm.LexicalEntry, error) {
	var all []paradigm.LexicalEntry
	for _, p := range paths {
		files, err := expand(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			entries, err := Load(f)
			if err != nil {
				return nil, err
			}
			all = append(all, entries...)
		}
	}
	return all, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	dir, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var files []string
	for _, d := range dir {
		if d.IsDir() || !known(filepath.Ext(d.Name())) {
			continue
		}
		files = append(files, filepath.Join(path, d.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func known(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
