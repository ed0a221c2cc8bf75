package polynomial

import (
	"fmt"
	"runtime"
	"sync"

	"polyalg/internal/bitpack"
	"polyalg/internal/coeff"
	"polyalg/internal/monomial"
	"polyalg/internal/util"
)

type term[W interface{ comparable; bitpack.Word[W] }, C any] struct {
	m monomial.Monomial[W]
	c C
}

func collectTerms[W interface{ comparable; bitpack.Word[W] }, C any](p *Polynomial[W, C]) []term[W, C] {
	out := make([]term[W, C], 0, p.Size())
	p.Each(func(m monomial.Monomial[W], c C) bool {
		out = append(out, term[W, C]{m: m, c: c})
		return true
	})
	return out
}

// chooseSegments picks h's segment count: the caller's pre-set count if any,
// else cfg.NSegments if given, else 2^n with 2^n ≈ min(NumThreads,
// estimatedTerms/TargetLoad).
func chooseSegments[W interface{ comparable; bitpack.Word[W] }, C any](h *Polynomial[W, C], cfg MulConfig, estimatedTerms int) int {
	if h.nSegments != 0 {
		return h.nSegments
	}
	if cfg.NSegments != 0 {
		return nextPowerOfTwo(cfg.NSegments)
	}
	numThreads := cfg.NumThreads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}
	target := numThreads
	if cfg.TargetLoad > 0 {
		byLoad := int(float64(estimatedTerms) / cfg.TargetLoad)
		if byLoad < target {
			target = byLoad
		}
	}
	return nextPowerOfTwo(target)
}

// MulParallel is the segmented, goroutine-pool multiplier: state machine
// PreCheck -> Partition -> Accumulate(parallel) -> Merge. Output segments
// are assigned to workers up front by segment index, so two workers never
// write the same monomial — no lock is needed during Accumulate, and Merge
// is a single atomic segment-slice install.
func MulParallel[W interface{ comparable; bitpack.Word[W] }, C any](h, f, g *Polynomial[W, C], ring coeff.Ring[C], trunc *Truncation, cfg MulConfig) error {
	// PreCheck
	if err := checkMulPreconditions(h, f, g); err != nil {
		return err
	}
	k := f.Arity()
	if err := preCheckOverflow(f, g, k); err != nil {
		return err
	}

	fTerms := collectTerms(f)
	gTerms := collectTerms(g)

	// Partition
	nSegments := chooseSegments(h, cfg, len(fTerms)*len(gTerms))
	numThreads := cfg.NumThreads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}
	numWorkers := numThreads
	if numWorkers > nSegments {
		numWorkers = nSegments
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	util.Log(cfg.Verbose, "mulparallel: %d f-terms x %d g-terms -> %d segments across %d workers",
		len(fTerms), len(gTerms), nSegments, numWorkers)

	var idx []int
	if trunc != nil {
		idx = trunc.idx(f.SymbolSet())
	}

	segs := make([]map[monomial.Monomial[W]]C, nSegments)
	workErrs := make([]error, numWorkers)

	// Accumulate
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(w int) {
			defer wg.Done()
			for segIdx := w; segIdx < nSegments; segIdx += numWorkers {
				segs[segIdx] = make(map[monomial.Monomial[W]]C)
			}
			pl := util.NewProgressLogger(uint64(len(fTerms))*uint64(len(gTerms)),
				fmt.Sprintf("mulparallel worker %d: ", w), "", cfg.Verbose)
			for _, tf := range fTerms {
				for _, tg := range gTerms {
					pl.Log()
					m, err := monomial.Multiply(tf.m, tg.m, k)
					if err != nil {
						workErrs[w] = err
						return
					}
					segIdx := segmentIndex[W](m, nSegments)
					if segIdx%numWorkers != w {
						continue // owned by another worker
					}
					if trunc != nil {
						pd, err := monomial.PartialDegree(m, k, idx)
						if err != nil {
							workErrs[w] = err
							return
						}
						if !trunc.keeps(pd) {
							continue
						}
					}
					c, err := ring.Mul(tf.c, tg.c)
					if err != nil {
						workErrs[w] = RingError{Op: "mul_parallel", Err: err}
						return
					}
					if ring.IsZero(c) {
						continue
					}
					seg := segs[segIdx]
					if old, ok := seg[m]; ok {
						sum, err := ring.Add(old, c)
						if err != nil {
							workErrs[w] = RingError{Op: "mul_parallel", Err: err}
							return
						}
						if ring.IsZero(sum) {
							delete(seg, m)
						} else {
							seg[m] = sum
						}
						continue
					}
					seg[m] = c
				}
			}
			pl.Finalize()
		}(w)
	}
	wg.Wait()

	for _, err := range workErrs {
		if err != nil {
			return err
		}
	}

	// Merge
	h.installSegments(segs)
	return nil
}
