// Package msdf generates Multi-channel Signed Distance Fields from vector
// outlines.
//
// An MSDF is an RGB bitmap in which every channel encodes the distance to
// a subset of the outline's edges. The median of the three channels
// reconstructs the signed distance to the outline while keeping corners
// sharp, so one small bitmap can be drawn at any size.
//
// # Pipeline
//
//  1. An outline source produces a vertex stream (see package source).
//  2. FromVertices decodes it into a Shape of closed contours.
//  3. ColorEdges assigns each edge a channel color so edges meeting at a
//     corner differ.
//  4. Generate (or GenerateForGlyph, which fits the shape into the bitmap)
//     finds, per pixel and channel, the nearest edge and encodes the
//     signed distance as a byte.
//
// # Usage
//
//	shape := msdf.FromVertices(vertices, 1.0/64, true)
//	msdf.ColorEdges(shape, msdf.DefaultAngleThreshold)
//
//	result, err := msdf.GenerateForGlyph(shape, msdf.DefaultGlyphOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer result.Release()
//
//	// result.Data holds RGB8 pixels, row-major.
//
// # Encoding
//
// A channel value v decodes to the distance (0.5 - v/255) * 2 * Range.
// 127 lies on the outline, 255 is Range or more inside, 0 is Range or more
// outside. A renderer samples the bitmap, takes the median of the three
// channels, and thresholds it at 0.5:
//
//	fn median3(v: vec3<f32>) -> f32 {
//	    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
//	}
//
// Generation is a one-time bake; it is deterministic and allocates the
// output bitmap plus one edge arena per shape.
//
// # References
//
//   - msdfgen: https://github.com/Chlumsky/msdfgen
//   - Viktor Chlumský, "Shape Decomposition for Multi-channel Distance Fields"
package msdf
