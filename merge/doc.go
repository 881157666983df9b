// Package merge implements per-pixel compositing ("merge") operators.
//
// Each operator is a closed-form function of two channel values A (the
// source) and B (the destination), and for the alpha-driven operators of
// their alpha channels a and b. Values are in the range [0, max], where max
// is the full-intensity value of the pixel type: 255 for uint8, 65535 for
// uint16, 1 for floating point. Results are never clamped.
//
// Alpha masking: when enabled for a maskable operator on a 4-channel pixel,
// the output alpha is the union a + b - a*b/max and only the three color
// channels go through the operator.
//
// The operator is resolved once per batch with NewMerger (or Lookup) and
// then applied to any number of pixels:
//
//	m := merge.NewMerger(merge.Over, false, 4, uint8(255))
//	m.Row(dst, a, b)
//
// References:
//   - SVG Compositing Specification: http://www.w3.org/TR/SVGCompositing/
//   - PDF Reference v1.7, blend modes
//   - ImageMagick compose operators: http://www.imagemagick.org/Usage/compose/
//
// Soft-light follows the March 2009 SVG compositing draft. The 2004 draft
// formula brightens any non-gray overlay and is not used.
package merge
