package catalog

import (
	"testing"
	"time"

	"reclaim/internal/risk"
)

func fakeSource() (*FakeMetadata, []Source) {
	now := time.Now()
	meta := &FakeMetadata{Files: map[string]Metadata{
		"/Users/amy/Downloads/movie.mkv":  {Size: 4 << 30, ModTime: now, AccessTime: now},
		"/Users/amy/Downloads/ubuntu.iso": {Size: 2 << 30, ModTime: now, AccessTime: now},
		"/Library/Caches/huge.cache":      {Size: 6 << 30, ModTime: now, AccessTime: now},
	}}
	sources := []Source{
		{Label: "User Home", Paths: []string{
			"/Users/amy/Downloads/movie.mkv",
			"/Users/amy/Downloads/gone.bin",
			"/Users/amy/Downloads/ubuntu.iso",
		}},
		{Label: "System Caches", Paths: []string{"/Library/Caches/huge.cache"}},
	}
	return meta, sources
}

func TestBuildExcludesUnreadable(t *testing.T) {
	meta, sources := fakeSource()
	records := NewBuilder(meta, nil, nil).Build(sources)

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for _, r := range records {
		if r.Path == "/Users/amy/Downloads/gone.bin" {
			t.Fatalf("unreadable path made it into the catalog")
		}
	}
}

func TestBuildSortsBySizeDescending(t *testing.T) {
	meta, sources := fakeSource()
	records := NewBuilder(meta, nil, nil).Build(sources)

	for i := 1; i < len(records); i++ {
		if records[i].Size > records[i-1].Size {
			t.Fatalf("records not sorted by size: %d before %d",
				records[i-1].Size, records[i].Size)
		}
	}
	if records[0].Path != "/Library/Caches/huge.cache" {
		t.Fatalf("largest record first, got %s", records[0].Path)
	}
}

func TestBuildStableTies(t *testing.T) {
	now := time.Now()
	meta := &FakeMetadata{Files: map[string]Metadata{
		"/a/first.zip":  {Size: 1 << 30, ModTime: now},
		"/a/second.zip": {Size: 1 << 30, ModTime: now},
	}}
	sources := []Source{{Label: "A", Paths: []string{"/a/first.zip", "/a/second.zip"}}}

	records := NewBuilder(meta, nil, nil).Build(sources)
	if records[0].Path != "/a/first.zip" || records[1].Path != "/a/second.zip" {
		t.Fatalf("equal-size records reordered: %s, %s", records[0].Path, records[1].Path)
	}
}

func TestBuildClassifiesAndRenders(t *testing.T) {
	meta, sources := fakeSource()
	records := NewBuilder(meta, risk.NewClassifier(nil), nil).Build(sources)

	byPath := map[string]FileRecord{}
	for _, r := range records {
		byPath[r.Path] = r
	}

	movie := byPath["/Users/amy/Downloads/movie.mkv"]
	if movie.Tier != risk.NeedsReview {
		t.Fatalf("movie tier = %v, want NeedsReview", movie.Tier)
	}
	if movie.SizeText != "4.0 GiB" {
		t.Fatalf("movie SizeText = %q", movie.SizeText)
	}
	if movie.Location != "User Home" {
		t.Fatalf("movie location = %q", movie.Location)
	}
	if movie.Outcome != OutcomePending {
		t.Fatalf("fresh record outcome = %v, want pending", movie.Outcome)
	}

	cache := byPath["/Library/Caches/huge.cache"]
	if cache.Tier != risk.VerySafe {
		t.Fatalf("cache tier = %v, want VerySafe", cache.Tier)
	}
}

func TestTotalSize(t *testing.T) {
	meta, sources := fakeSource()
	records := NewBuilder(meta, nil, nil).Build(sources)
	want := int64(4<<30 + 2<<30 + 6<<30)
	if got := TotalSize(records); got != want {
		t.Fatalf("TotalSize = %d, want %d", got, want)
	}
}
