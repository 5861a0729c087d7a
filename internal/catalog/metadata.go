package catalog

import (
	"os"
	"time"
)

// Metadata is the subset of file metadata the catalog needs.
type Metadata struct {
	Size       int64
	ModTime    time.Time
	AccessTime time.Time
}

// MetadataSource abstracts the per-path metadata query
// Enables fakes in tests and keeps stat failures a data concern
type MetadataSource interface {
	Stat(path string) (Metadata, error)
}

// OSMetadata implements MetadataSource with real os.Stat calls.
type OSMetadata struct{}

func (OSMetadata) Stat(path string) (Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		Size:       info.Size(),
		ModTime:    info.ModTime(),
		AccessTime: accessTime(info),
	}, nil
}

// FakeMetadata implements MetadataSource for testing. Paths absent from
// Files report os.ErrNotExist.
type FakeMetadata struct {
	Files map[string]Metadata
}

func (f *FakeMetadata) Stat(path string) (Metadata, error) {
	md, ok := f.Files[path]
	if !ok {
		return Metadata{}, os.ErrNotExist
	}
	return md, nil
}
