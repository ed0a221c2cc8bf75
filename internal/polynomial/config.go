package polynomial

import "runtime"

// MulConfig holds parameters for MulParallel.
type MulConfig struct {
	NumThreads int     // goroutines used in the Accumulate phase
	NSegments  int     // 0 lets MulParallel pick a count from NumThreads
	TargetLoad float64 // desired average entries per segment, used when NSegments is 0
	Verbose    bool
}

// DefaultMulConfig returns sensible defaults scaled to the host's CPUs.
func DefaultMulConfig() MulConfig {
	return MulConfig{
		NumThreads: runtime.NumCPU(),
		NSegments:  0,
		TargetLoad: 64,
		Verbose:    false,
	}
}

// nextPowerOfTwo returns the smallest power of two >= n, or 1 if n <= 1.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
