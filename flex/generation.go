package flex

// currentGenerationCount is a process-wide monotonic counter, bumped
// once per top-level CalculateLayout call; it gates cache invalidation
// and computedFlexBasis freshness. Layout is synchronous and
// single-threaded (see package doc), so a plain package variable is
// sufficient; there is no reentrancy to race against.
var currentGenerationCount int

func bumpGeneration() int {
	currentGenerationCount++
	return currentGenerationCount
}
