package jsondoc

const (
	// Container growth policy. Capacity starts at zero and doubles on
	// demand with a floor of startingCapacity; growth past the hard cap
	// fails the mutation and leaves the container unchanged.
	startingCapacity  = 15
	objectMaxCapacity = 960    // 15 * 2^6
	arrayMaxCapacity  = 122880 // 15 * 2^13

	// maxNestingDepth bounds parser recursion on untrusted input. A
	// document may nest containers up to this many levels; one more
	// fails the parse before any partial output is built.
	maxNestingDepth = 19

	// numberEpsilon is the tolerance used by Equals for Number values,
	// absorbing float round-trip noise.
	numberEpsilon = 1e-6

	// floatPrecision is the digit count of the fixed-precision decimal
	// form used for non-integral numbers (printf "%f" equivalent).
	floatPrecision = 6

	// maxFilePathLength caps file paths accepted by the file helpers.
	maxFilePathLength = 4096
)
