package topics

import (
	"hash/fnv"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

// Cache memoizes engine results keyed on the selected segment texts and the
// engine parameters, so toggling sensitivity or the text field back and
// forth reuses earlier computations instead of re-running the engine.
type Cache struct {
	sections *lru.Cache[sectionKey, []Section]
	clouds   *lru.Cache[cloudKey, []WordCount]
}

type sectionKey struct {
	hash        uint64
	sensitivity Sensitivity
}

type cloudKey struct {
	hash uint64
	n    int
}

// NewCache creates a cache holding up to size entries per result kind.
func NewCache(size int) (*Cache, error) {
	sections, err := lru.New[sectionKey, []Section](size)
	if err != nil {
		return nil, err
	}
	clouds, err := lru.New[cloudKey, []WordCount](size)
	if err != nil {
		return nil, err
	}
	return &Cache{sections: sections, clouds: clouds}, nil
}

// Sections returns the memoized section list for the given inputs,
// computing it on first use.
func (c *Cache) Sections(segments []transcript.Segment, field transcript.TextField, sensitivity Sensitivity) []Section {
	key := sectionKey{hash: hashSegments(segments, field), sensitivity: sensitivity}
	if v, ok := c.sections.Get(key); ok {
		return v
	}
	v := Sections(segments, field, sensitivity)
	c.sections.Add(key, v)
	return v
}

// WordCloud returns the memoized frequency table for the given inputs,
// computing it on first use.
func (c *Cache) WordCloud(segments []transcript.Segment, field transcript.TextField, n int) []WordCount {
	key := cloudKey{hash: hashSegments(segments, field), n: n}
	if v, ok := c.clouds.Get(key); ok {
		return v
	}
	v := WordCloud(segments, field, n)
	c.clouds.Add(key, v)
	return v
}

// hashSegments fingerprints the text the engine would actually see, so the
// original/anonymized choice is part of the key.
func hashSegments(segments []transcript.Segment, field transcript.TextField) uint64 {
	h := fnv.New64a()
	for _, s := range segments {
		io.WriteString(h, s.DisplayText(field))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
