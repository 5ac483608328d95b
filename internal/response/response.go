// Package response convolves sampled model curves with an instrument impulse
// response.
//
// The output always has the length of the input curve: it is the centered
// part of the full linear convolution, starting (len(ir)-1)/2 samples in.
// Short responses are applied with a direct SIMD loop; longer ones go through
// an FFT whose kernel spectrum is cached per transform size.
package response

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response functions.
var (
	ErrEmptyResponse  = errors.New("response: empty impulse response")
	ErrTooLong        = errors.New("response: impulse response longer than signal")
	ErrLengthMismatch = errors.New("response: buffer length mismatch")
)

// directThreshold is the longest response applied without an FFT.
const directThreshold = 64

// Kernel is an immutable impulse response ready to be applied to curves of
// any length at least as long as the response. It is safe for concurrent use.
type Kernel struct {
	taps []float64

	mu     sync.RWMutex
	states map[int]*sync.Pool // keyed by FFT size
}

// fftState is the per-goroutine FFT workspace for one transform size.
type fftState struct {
	plan     *algofft.Plan[complex128]
	spectrum []complex128
	buf      []complex128
}

// New copies ir into a new Kernel.
func New(ir []float64) (*Kernel, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponse
	}

	taps := make([]float64, len(ir))
	copy(taps, ir)

	return &Kernel{
		taps:   taps,
		states: make(map[int]*sync.Pool),
	}, nil
}

// Len returns the number of taps.
func (k *Kernel) Len() int {
	return len(k.taps)
}

// Offset returns the index into the full convolution where the output starts.
func (k *Kernel) Offset() int {
	return (len(k.taps) - 1) / 2
}

// Apply writes the length-preserving convolution of src with the kernel to dst.
// dst and src must have equal length and must not overlap.
func (k *Kernel) Apply(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	if len(src) == 0 {
		return nil
	}
	if len(k.taps) > len(src) {
		return fmt.Errorf("%w: %d taps, %d samples", ErrTooLong, len(k.taps), len(src))
	}

	if len(k.taps) <= directThreshold {
		k.applyDirect(dst, src)
		return nil
	}

	return k.applyFFT(dst, src)
}

func (k *Kernel) applyDirect(dst, src []float64) {
	m := len(k.taps)
	full := make([]float64, len(src)+m-1)
	temp := make([]float64, m)

	// full[i:i+m] += taps * src[i]
	for i, x := range src {
		vecmath.ScaleBlock(temp, k.taps, x)
		vecmath.AddBlockInPlace(full[i:i+m], temp)
	}

	copy(dst, full[k.Offset():])
}

func (k *Kernel) applyFFT(dst, src []float64) error {
	fftSize := nextPowerOf2(len(src) + len(k.taps) - 1)
	pool := k.pool(fftSize)

	st, ok := pool.Get().(*fftState)
	if !ok || st == nil {
		panic("response: fft pool returned unexpected type")
	}
	defer pool.Put(st)

	if st.plan == nil {
		if err := k.initState(st, fftSize); err != nil {
			return err
		}
	}

	for i := range st.buf {
		st.buf[i] = 0
	}
	for i, v := range src {
		st.buf[i] = complex(v, 0)
	}

	if err := st.plan.Forward(st.buf, st.buf); err != nil {
		return fmt.Errorf("response: forward FFT failed: %w", err)
	}
	for i := range st.buf {
		st.buf[i] *= st.spectrum[i]
	}
	if err := st.plan.Inverse(st.buf, st.buf); err != nil {
		return fmt.Errorf("response: inverse FFT failed: %w", err)
	}

	off := k.Offset()
	for i := range dst {
		dst[i] = real(st.buf[off+i])
	}

	return nil
}

func (k *Kernel) initState(st *fftState, fftSize int) error {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	spectrum := make([]complex128, fftSize)
	for i, v := range k.taps {
		spectrum[i] = complex(v, 0)
	}
	if err := plan.Forward(spectrum, spectrum); err != nil {
		return fmt.Errorf("response: failed to compute kernel FFT: %w", err)
	}

	st.plan = plan
	st.spectrum = spectrum
	st.buf = make([]complex128, fftSize)

	return nil
}

// pool returns the workspace pool for fftSize, creating it if needed.
func (k *Kernel) pool(fftSize int) *sync.Pool {
	k.mu.RLock()
	p, ok := k.states[fftSize]
	k.mu.RUnlock()
	if ok {
		return p
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if p, ok := k.states[fftSize]; ok {
		return p
	}

	p = &sync.Pool{
		New: func() any { return &fftState{} },
	}
	k.states[fftSize] = p

	return p
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
