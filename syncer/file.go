package syncer

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// importFile is the YAML layout read by FileSource:
//
//	movies:
//	  - title: The Matrix
//	    year: 1999
//	    imdb: tt0133093
//	  - tmdb: 603
type importFile struct {
	Movies []Item `yaml:"movies"`
}

// FileSource reads items from a YAML import file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Name() string { return "file" }

// Items reads and validates the file. Every entry needs at least one identifier.
func (f *FileSource) Items(_ context.Context) ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return ParseImport(data)
}

// ParseImport decodes an import document.
func ParseImport(data []byte) ([]Item, error) {
	var doc importFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}

	for i, item := range doc.Movies {
		if item.FollwItID <= 0 && item.IMDbID == "" && item.TMDbID <= 0 {
			return nil, fmt.Errorf("import file: movie %d (%q) needs follwit_id, imdb or tmdb", i+1, item.Title)
		}
	}
	if doc.Movies == nil {
		return []Item{}, nil
	}
	return doc.Movies, nil
}
