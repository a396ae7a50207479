package stats

// TargetBias is the analytic/expected 32-entry per-output-bit avalanche-bias
// curve of an ideal per-bit Owen scramble (spec.md §4.5, glossary). The
// first 16 entries are exact; the remainder is extrapolated (spec.md §9,
// Open Question iii).
var TargetBias = [32]float64{
	0.0, 1.0, 0.5, 0.375, 0.273437, 0.19638, 0.139949, 0.099346,
	0.070386, 0.049819, 0.035244, 0.024927, 0.017628, 0.012466, 0.008815, 0.006233,
	// Extrapolated tail: the curve shrinks by a factor of about 0.707 per
	// bit (halving every 2 bits) at the end of the exact region, so we
	// continue that geometric decay rather than invent unrelated numbers.
	0.004408, 0.003117, 0.002204, 0.001559, 0.001102, 0.000780,
	0.000551, 0.000390, 0.000276, 0.000195, 0.000138, 0.0000976,
	0.0000690, 0.0000488, 0.0000345, 0.0000244,
}
