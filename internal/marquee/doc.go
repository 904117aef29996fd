// Package marquee implements continuously scrolling content strips.
//
// A Wrap owns a pristine Template. On every genuine width change it measures
// one Block, builds a Strip holding enough copies to cover twice its width,
// and starts a Driver that advances the strip's offset once per frame on a
// cooperative Scheduler. The offset is kept normalized against the block
// width, so it never drifts however long the strip runs.
//
// Nothing here draws. Hosts read Strip.Each and paint the blocks wherever
// their renderer puts them.
package marquee
