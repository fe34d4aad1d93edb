package msdf

// DistanceToPixel encodes a signed distance as one channel byte.
//
// The mapping is clamp(0.5 - distance/(2*rng), 0, 1) * 255, truncated:
// distance 0 encodes as 127, -rng (inside) as 255 and +rng (outside) as 0,
// linearly in between. It is monotonically non-increasing in distance.
func DistanceToPixel(distance, rng float64) byte {
	v := 0.5 - distance/(2*rng)
	switch {
	case v >= 1:
		return 255
	case v > 0:
		return byte(v * 255)
	default:
		// Also catches NaN.
		return 0
	}
}

// PixelToDistance decodes a channel byte back to a signed distance.
// For distances within [-rng, rng] the result is at most one quantization
// step (2*rng/255) away from the encoded distance.
func PixelToDistance(v byte, rng float64) float64 {
	return (0.5 - float64(v)/255) * 2 * rng
}
