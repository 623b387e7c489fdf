package axis

import "github.com/GagliardeStefano/huetest/internal/colorspace"

// Slot identifies a tile position inside one grid instantiation.
type Slot struct {
	Row int
	Pos int
}

// Classification is everything derived from a slot's color.
type Classification struct {
	Axis      Axis
	Direction string
	Lab       colorspace.Lab
	LCh       colorspace.LCh
}

// Cache memoizes classifications by slot for a single scoring run.
// A Cache must not outlive the grid it was filled from: create one per run
// with NewCache, or Reset it before reuse.
type Cache struct {
	entries map[Slot]Classification
	misses  int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Slot]Classification)}
}

// Classify returns the classification for slot, computing it from c on the
// first lookup. Later lookups for the same slot return the stored value.
func (c *Cache) Classify(slot Slot, color colorspace.RGB) Classification {
	if cl, ok := c.entries[slot]; ok {
		return cl
	}
	c.misses++
	lab := colorspace.ToLab(color)
	cl := Classification{
		Axis:      OfLab(lab),
		Direction: Direction(lab),
		Lab:       lab,
		LCh:       colorspace.ToLCh(lab),
	}
	c.entries[slot] = cl
	return cl
}

// Len returns the number of memoized slots.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Misses returns how many lookups had to compute a classification.
func (c *Cache) Misses() int {
	return c.misses
}

// Reset drops every entry.
func (c *Cache) Reset() {
	clear(c.entries)
	c.misses = 0
}
