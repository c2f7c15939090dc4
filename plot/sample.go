package plot

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	DefaultSamplesPerPixel = 8

	// nearZeroSamples on each side of x=0 are added when the view straddles the y axis, so
	// poles like 1/x are resolved.
	nearZeroSamples = 10
)

// Func is anything that can be evaluated at x. NaN and ±Inf are valid results.
type Func interface {
	Eval(x float64) float64
}

// Sample is one evaluated point. Y may be NaN or ±Inf.
type Sample struct {
	X, Y float64
}

// SampleFunc evaluates f across v for a surface width px wide. The sweep holds
// width*samplesPerPixel+1 evenly spaced x values, minus any within step/1000 of zero. When the
// view contains x=0, finite values at ±step*i/1000 (i = 1..10) are added. The result is ordered
// by x.
func SampleFunc(f Func, v Viewport, width, samplesPerPixel int) []Sample {
	if samplesPerPixel <= 0 {
		samplesPerPixel = DefaultSamplesPerPixel
	}
	n := width * samplesPerPixel
	if n <= 0 {
		return nil
	}
	step := v.Width() / float64(n)

	out := make([]Sample, 0, n+1+2*nearZeroSamples)
	for i := 0; i <= n; i++ {
		x := v.XMin + float64(i)*step
		if math.Abs(x) < step/1000 {
			continue
		}
		out = append(out, Sample{X: x, Y: f.Eval(x)})
	}

	if v.XMin < 0 && v.XMax > 0 {
		for i := 1; i <= nearZeroSamples; i++ {
			d := step * float64(i) / 1000
			for _, x := range []float64{-d, d} {
				if y := f.Eval(x); isFinite(y) {
					out = append(out, Sample{X: x, Y: y})
				}
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	}

	return out
}

// Sampler caches the latest Sample result of each curve. A curve holds one entry at a time, so
// panning or zooming replaces the cached set instead of adding to it.
type Sampler struct {
	SamplesPerPixel int

	cache *cache.Cache
	ttl   time.Duration
}

type sampleEntry struct {
	view    Viewport
	width   int
	spp     int
	samples []Sample
}

func NewSampler(samplesPerPixel int, ttl time.Duration) *Sampler {
	if samplesPerPixel <= 0 {
		samplesPerPixel = DefaultSamplesPerPixel
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Sampler{
		SamplesPerPixel: samplesPerPixel,
		cache:           cache.New(ttl, 2*ttl),
		ttl:             ttl,
	}
}

// Samples returns the samples of f for v, reusing the earlier result when id, view and width are
// unchanged. id must change whenever f does.
func (s *Sampler) Samples(id uint64, f Func, v Viewport, width int) []Sample {
	key := strconv.FormatUint(id, 10)
	if i, ok := s.cache.Get(key); ok {
		if e, ok := i.(*sampleEntry); ok && e.view == v && e.width == width && e.spp == s.SamplesPerPixel {
			return e.samples
		}
	}

	samples := SampleFunc(f, v, width, s.SamplesPerPixel)
	s.cache.Set(key, &sampleEntry{view: v, width: width, spp: s.SamplesPerPixel, samples: samples}, s.ttl)

	return samples
}

// Paths samples f and builds its screen paths.
func (s *Sampler) Paths(id uint64, f Func, v Viewport, surface Surface) [][]Point {
	return BuildPaths(s.Samples(id, f, v, surface.Width), v, surface)
}

// Forget drops the entry of a curve that is gone.
func (s *Sampler) Forget(id uint64) {
	s.cache.Delete(strconv.FormatUint(id, 10))
}

// Flush drops every cached sample set.
func (s *Sampler) Flush() {
	s.cache.Flush()
}

func (s *Sampler) Len() int {
	return s.cache.ItemCount()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
