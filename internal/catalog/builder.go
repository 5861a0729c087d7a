package catalog

import (
	"log"
	"sort"

	"github.com/cheggaaa/pb/v3"

	"reclaim/internal/risk"
	"reclaim/internal/units"
)

// Source groups candidate paths under the search-location label they
// were discovered in. Sources keep discovery order so catalog builds
// are reproducible run to run.
type Source struct {
	Label string
	Paths []string
}

// Builder turns discovered paths into classified FileRecords.
type Builder struct {
	meta       MetadataSource
	classifier *risk.Classifier
	logger     *log.Logger
	progress   bool
}

func NewBuilder(meta MetadataSource, classifier *risk.Classifier, logger *log.Logger) *Builder {
	if meta == nil {
		meta = OSMetadata{}
	}
	if classifier == nil {
		classifier = risk.NewClassifier(nil)
	}
	return &Builder{meta: meta, classifier: classifier, logger: logger}
}

// WithProgress enables a terminal progress bar during Build. Meant for
// interactive runs; leave it off for auto mode and tests.
func (b *Builder) WithProgress(on bool) *Builder {
	b.progress = on
	return b
}

// Build stats and classifies every path in every source. Paths whose
// metadata cannot be read are excluded without failing the build; the
// exclusion is logged but never surfaces to the operator mid-scan.
// The returned slice is sorted by size descending; ties keep their
// discovery order.
func (b *Builder) Build(sources []Source) []FileRecord {
	total := 0
	for _, src := range sources {
		total += len(src.Paths)
	}

	var bar *pb.ProgressBar
	if b.progress && total > 0 {
		bar = pb.StartNew(total)
	}

	records := make([]FileRecord, 0, total)
	for _, src := range sources {
		for _, path := range src.Paths {
			if bar != nil {
				bar.Increment()
			}
			md, err := b.meta.Stat(path)
			if err != nil {
				if b.logger != nil {
					b.logger.Printf("catalog: excluding %s: %v", path, err)
				}
				continue
			}
			cls := b.classifier.Classify(path)
			records = append(records, FileRecord{
				Path:           path,
				Size:           md.Size,
				SizeText:       units.Format(md.Size),
				ModTime:        md.ModTime,
				AccessTime:     md.AccessTime,
				Location:       src.Label,
				Tier:           cls.Tier,
				Reason:         cls.Reason,
				Recommendation: cls.Recommendation,
			})
		}
	}
	if bar != nil {
		bar.Finish()
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Size > records[j].Size
	})
	return records
}

// TotalSize sums the sizes of all records, independent of outcome.
func TotalSize(records []FileRecord) int64 {
	var total int64
	for i := range records {
		total += records[i].Size
	}
	return total
}
