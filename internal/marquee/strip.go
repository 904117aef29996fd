package marquee

import (
	"fmt"
	"math"
)

// Block is one repeated unit of content in a strip. Exactly one block per
// strip is Live: the original content moved in. The rest are clones.
type Block struct {
	Text string
	Live bool
}

// Strip is the sequence of blocks a wrap translates each frame. Block count
// and width are computed once per build; renderers project from them.
type Strip struct {
	blocks     []Block
	blockWidth float64
	offset     float64
	detached   bool
}

// MaxBlocks bounds the blocks in one strip. A wrap wider than MaxBlocks/2
// blocks is rejected rather than duplicated.
const MaxBlocks = 1 << 16

// BuildStrip duplicates tpl until the strip covers at least twice the wrap
// width and holds at least two blocks.
func BuildStrip(tpl *Template, wrapWidth, blockWidth float64) (*Strip, error) {
	if tpl == nil {
		return nil, ErrMissingTemplate
	}
	if !validBlockWidth(blockWidth) {
		return nil, fmt.Errorf("%w: block width %v", ErrDegenerateGeometry, blockWidth)
	}
	if wrapWidth < 0 || math.IsInf(wrapWidth, 0) || math.IsNaN(wrapWidth) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWidth, wrapWidth)
	}
	if 2*wrapWidth/blockWidth > MaxBlocks {
		return nil, fmt.Errorf("%w: %v needs more than %d blocks of %v", ErrInvalidWidth, wrapWidth, MaxBlocks, blockWidth)
	}

	blocks := make([]Block, 0, blocksNeeded(wrapWidth, blockWidth))
	blocks = append(blocks, tpl.place())
	for len(blocks) < 2 || float64(len(blocks))*blockWidth < 2*wrapWidth {
		blocks = append(blocks, tpl.clone())
	}

	return &Strip{blocks: blocks, blockWidth: blockWidth}, nil
}

// blocksNeeded is the block count BuildStrip settles on. Callers keep
// 2*wrapWidth/blockWidth within MaxBlocks.
func blocksNeeded(wrapWidth, blockWidth float64) int {
	n := int(math.Ceil(2 * wrapWidth / blockWidth))
	if n < 2 {
		n = 2
	}
	return n
}

func (s *Strip) Len() int { return len(s.blocks) }
func (s *Strip) BlockWidth() float64 { return s.blockWidth }
func (s *Strip) Width() float64 { return float64(len(s.blocks)) * s.blockWidth }
func (s *Strip) Offset() float64 { return s.offset }
func (s *Strip) Detached() bool { return s.detached }
func (s *Strip) Block(i int) Block { return s.blocks[i] }
func (s *Strip) translate(x float64) { s.offset = x }
func (s *Strip) detach() { s.detached = true }

// Each calls fn with every block and its x-position relative to the wrap's
// start edge, stopping early when fn returns false.
func (s *Strip) Each(fn func(i int, x float64, b Block) bool) {
	for i, b := range s.blocks {
		if !fn(i, s.offset+float64(i)*s.blockWidth, b) {
			return
		}
	}
}
