// seehuhn.de/go/replay - deferred rendering of vector geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package replay

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"seehuhn.de/go/geom/matrix"
)

// BatchType selects the batch within a z-level which geometry is added to.
// Callers use different batch types to keep style-compatible geometry
// together; all batch types currently share the same implementation.
type BatchType uint8

const (
	FillRing BatchType = iota
	FillStrokeRing
	StrokeLine
	StrokeRing

	numBatchTypes = iota
)

// batchConstructors is the registry of batch implementations, indexed by
// BatchType.
var batchConstructors = [numBatchTypes]func() *Batch{
	FillRing:       NewBatch,
	FillStrokeRing: NewBatch,
	StrokeLine:     NewBatch,
	StrokeRing:     NewBatch,
}

var batchTypeNames = [numBatchTypes]string{
	FillRing:       "fillRing",
	FillStrokeRing: "fillStrokeRing",
	StrokeLine:     "strokeLine",
	StrokeRing:     "strokeRing",
}

// ErrUnknownBatchType is returned by ParseBatchType for unrecognised tags.
var ErrUnknownBatchType = errors.New("unknown batch type")

func (t BatchType) String() string {
	if t < numBatchTypes {
		return batchTypeNames[t]
	}
	return fmt.Sprintf("BatchType(%d)", t)
}

// ParseBatchType returns the batch type with the given tag, for example
// "strokeLine".
func ParseBatchType(s string) (BatchType, error) {
	for t, name := range batchTypeNames {
		if name == s {
			return BatchType(t), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownBatchType, s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t BatchType) MarshalText() ([]byte, error) {
	if t >= numBatchTypes {
		return nil, fmt.Errorf("%w %d", ErrUnknownBatchType, uint8(t))
	}
	return []byte(batchTypeNames[t]), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *BatchType) UnmarshalText(text []byte) error {
	v, err := ParseBatchType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// DefaultZIndex is the z-level used for geometry without an explicit
// z-index.
const DefaultZIndex = 0

// BatchGroup owns a set of batches, indexed by z-index and batch type.
// Batches are created on first use and are drawn in ascending z order.
type BatchGroup struct {
	byZ map[int]*[numBatchTypes]*Batch
}

// NewBatchGroup returns an empty batch group.
func NewBatchGroup() *BatchGroup {
	return &BatchGroup{
		byZ: make(map[int]*[numBatchTypes]*Batch),
	}
}

// GetBatch returns the batch for the given z-index and batch type,
// creating it if necessary.  It panics if t is not a registered batch
// type.
func (g *BatchGroup) GetBatch(z int, t BatchType) *Batch {
	if t >= numBatchTypes {
		panic(fmt.Sprintf("replay: unregistered batch type %d", uint8(t)))
	}
	batches := g.byZ[z]
	if batches == nil {
		batches = new([numBatchTypes]*Batch)
		g.byZ[z] = batches
	}
	b := batches[t]
	if b == nil {
		b = batchConstructors[t]()
		batches[t] = b
	}
	return b
}

// IsEmpty reports whether no batch has been created in the group.
func (g *BatchGroup) IsEmpty() bool {
	return len(g.byZ) == 0
}

// ZIndices returns the z-levels which have at least one batch, in
// ascending order.
func (g *BatchGroup) ZIndices() []int {
	return slices.Sorted(maps.Keys(g.byZ))
}

// Batches iterates over the batches at z-index z in BatchType order.
// Batch types which were never requested are skipped.
func (g *BatchGroup) Batches(z int) iter.Seq2[BatchType, *Batch] {
	return func(yield func(BatchType, *Batch) bool) {
		batches := g.byZ[z]
		if batches == nil {
			return
		}
		for t, b := range batches {
			if b != nil && !yield(BatchType(t), b) {
				return
			}
		}
	}
}

// Finish finishes every batch in the group.
func (g *BatchGroup) Finish() {
	for _, batches := range g.byZ {
		for _, b := range batches {
			if b != nil {
				b.Finish()
			}
		}
	}
}

// Draw draws all batches onto s.  Lower z-levels are drawn first; within
// a z-level, batches are drawn in BatchType order.
func (g *BatchGroup) Draw(s Surface, m matrix.Matrix) {
	zs := g.ZIndices()
	for _, z := range zs {
		for _, b := range g.Batches(z) {
			b.Draw(s, m)
		}
	}
	Logger().Debug("batch group drawn", "levels", len(zs))
}
