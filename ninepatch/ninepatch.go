// Package ninepatch models annotated 9-Patch images: bitmaps carrying a 1px
// border that marks which bands stretch and where content may go.
// https://developer.android.com/guide/topics/graphics/drawables#nine-patch
//
// The interior of an image is split into alternating fixed and stretch bands
// along each axis. Every cell at a column/row intersection is then one of
// four kinds of region: a patch (stretches both ways), a fixed region, a
// horizontal patch (stretches along X only) or a vertical patch (stretches
// along Y only).
package ninepatch
