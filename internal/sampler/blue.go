package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

const (
	tileSide = 128 // tiles wrap at 128x128 pixels
	tileDims = 8 // slots per tile cell: one per sampled dimension, two unused
	numSamples = 256 // samples-per-pixel the Sobol table and tiles are built for
)

// Dimension indices into the per-pixel tile, matching the
// fixed dimension order.
const (
	dimPixelX = iota
	dimPixelY
	dimLensX
	dimLensY
	dimTime
	dimWavelength
)

var sobolTable [tileDims][numSamples]uint8
var rankingTile [tileSide * tileSide * tileDims]uint8
var scramblingTile [tileSide * tileSide * tileDims]uint8

func init() {
	buildSobolTable()
	buildTile(&rankingTile, 0x9e3779b97f4a7c15)
	buildTile(&scramblingTile, 0xbf58476d1ce4e5b9)
}

// sobolDirectionSeed is the (degree, primitive-polynomial, initial
// direction numbers) triple for one Sobol dimension, using the
// standard low-order Joe–Kuo seed values reproduced in most public
// Sobol-sequence implementations.
type sobolDirectionSeed struct {
	degree int
	poly uint32
	m []uint32
}

var sobolSeeds = []sobolDirectionSeed{
	{0, 0, nil}, // dimension 0: plain van der Corput (base 2)
	{1, 0, []uint32{1}},
	{2, 1, []uint32{1, 3}},
	{3, 1, []uint32{1, 3, 1}},
	{3, 2, []uint32{1, 1, 1}},
	{4, 1, []uint32{1, 1, 3, 3}},
	{4, 4, []uint32{1, 3, 5, 13}},
	{5, 2, []uint32{1, 1, 5, 5, 17}},
}

// buildSobolTable fills sobolTable[dim][rank] with the rank-th point
// of the dim-th Sobol sequence in [0,1), for the first tileDims
// dimensions and numSamples ranks (`v = sobol[d + ranked_s*256]`).
func buildSobolTable() {
	const bits = 32
	for dim := 0; dim < tileDims; dim++ {
		seed := sobolSeeds[dim]
		directions := make([]uint32, bits)
		if seed.degree == 0 {
			for i := 0; i < bits; i++ {
				directions[i] = 1 << (bits - 1 - i)
			}
		} else {
			for i := 0; i < seed.degree; i++ {
				directions[i] = seed.m[i] << (bits - 1 - i)
			}
			for i := seed.degree; i < bits; i++ {
				v := directions[i-seed.degree] ^ (directions[i-seed.degree] >> uint(seed.degree))
				for k := 1; k < seed.degree; k++ {
					if (seed.poly>>uint(seed.degree-1-k))&1 != 0 {
						v ^= directions[i-k]
					}
				}
				directions[i] = v
			}
		}

		var x uint32
		for rank := 0; rank < numSamples; rank++ {
			if rank > 0 {
				// Gray-code update: XOR in the direction vector for the
				// lowest set bit of rank (standard Sobol construction).
				c := trailingZeros(uint32(rank))
				x ^= directions[c]
			}
			// Quantize the fractional Sobol point to a byte so it can
			// be combined with the scrambling tile via XOR.
			frac := float64(x) / float64(uint64(1)<<bits)
			sobolTable[dim][rank] = uint8(frac * 256)
		}
	}
}

func trailingZeros(v uint32) int {
	n := 0
	for v&1 == 0 && n < 32 {
		v >>= 1
		n++
	}
	return n
}

// buildTile fills a ranking or scrambling permutation tile
// procedurally from a splitmix64 stream seeded with seed. This
// reproduces the Heitz-et-al. blue-noise tiles' indexing scheme
// exactly but generates the tile contents with a deterministic PRNG
// rather than embedding the published binary tables.
func buildTile(tile *[tileSide * tileSide * tileDims]uint8, seed uint64) {
	state := seed
	next := func() uint64 {
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}
	for i := range tile {
		tile[i] = uint8(next() % numSamples)
	}
}

// BlueNoiseSampler produces a low-discrepancy sample sequence by
// combining a Sobol sequence with per-pixel-tile ranking and
// scrambling permutations.
type BlueNoiseSampler struct {
	samplesPerPixel int
}

// NewBlueNoiseSampler validates spp against the constraint (a power of
// two, at most 256) and returns an error otherwise, so the CLI's
// render and validate subcommands can catch it before rendering starts.
func NewBlueNoiseSampler(samplesPerPixel int) (*BlueNoiseSampler, error) {
	if samplesPerPixel <= 0 || samplesPerPixel > numSamples || samplesPerPixel&(samplesPerPixel-1) != 0 {
		return nil, fmt.Errorf("sampler: blue-noise sampler requires a power-of-two sample count <= %d, got %d", numSamples, samplesPerPixel)
	}
	return &BlueNoiseSampler{samplesPerPixel: samplesPerPixel}, nil
}

func (b *BlueNoiseSampler) blueValue(pixelX, pixelY, sampleIndex, dim int) float64 {
	i := pixelX & (tileSide - 1)
	j := pixelY & (tileSide - 1)
	s := sampleIndex & (numSamples - 1)
	d := dim & (tileDims - 1)

	tileIndex := (i+j*tileSide)*tileDims + d
	rankedS := s ^ int(rankingTile[tileIndex])
	v := sobolTable[d][rankedS&(numSamples-1)]

	scrambled := v ^ scramblingTile[tileIndex]
	return (0.5 + float64(scrambled)) / float64(numSamples)
}

func (b *BlueNoiseSampler) Sample(pixelX, pixelY, sampleIndex int, _ *rand.Rand) Sample {
	px := b.blueValue(pixelX, pixelY, sampleIndex, dimPixelX)
	py := b.blueValue(pixelX, pixelY, sampleIndex, dimPixelY)
	lx := b.blueValue(pixelX, pixelY, sampleIndex, dimLensX)
	ly := b.blueValue(pixelX, pixelY, sampleIndex, dimLensY)
	t := b.blueValue(pixelX, pixelY, sampleIndex, dimTime)
	w := b.blueValue(pixelX, pixelY, sampleIndex, dimWavelength)

	r := math.Sqrt(lx)
	theta := 2 * math.Pi * ly

	return Sample{
		PixelOffset: core.NewVec2(px, py),
		LensOffset: core.NewVec2(r*math.Cos(theta), r*math.Sin(theta)),
		Time: t,
		Wavelength: core.Wavelength(math.Floor(w*400)) + core.WavelengthMin,
	}
}
