package material

import (
	"math"
	"math/rand"

	"github.com/nordlicht/spectra/internal/core"
)

// ThinFilm wraps a Base material and multiplies its attenuation by an
// interference term computed from thin-film optics:
// 2·n·d·cosθ_t / λ fed through 1 + cos(2π·m), producing a multiplier
// in [0,2] with mean 1. FilmIOR is the film's refractive index and
// Thickness its thickness in nanometers.
type ThinFilm struct {
	Base Material
	FilmIOR float64
	Thickness float64 // nanometers
}

func NewThinFilm(base Material, filmIOR, thicknessNM float64) *ThinFilm {
	return &ThinFilm{Base: base, FilmIOR: filmIOR, Thickness: thicknessNM}
}

// interference computes the thin-film interference multiplier for the
// ray's wavelength and the cosine of the transmitted angle at hit.
func (t *ThinFilm) interference(rayIn core.Ray, hit HitRecord) float64 {
	cosThetaI := math.Abs(rayIn.Direction.Normalize().Dot(hit.Normal))
	// Snell's law into the film gives the transmitted angle.
	sin2ThetaT := (1 - cosThetaI*cosThetaI) / (t.FilmIOR * t.FilmIOR)
	cosThetaT := math.Sqrt(math.Max(0, 1-sin2ThetaT))
	m := 2.0 * t.FilmIOR * t.Thickness * cosThetaT / float64(rayIn.Wavelength)
	return 1.0 + math.Cos(2*math.Pi*m)
}

func (t *ThinFilm) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	record, ok := t.Base.Scatter(rayIn, hit, random)
	if !ok {
		return record, false
	}
	record.Attenuation = record.Attenuation.Multiply(t.interference(rayIn, hit))
	return record, true
}

func (t *ThinFilm) Emit(rayIn core.Ray, hit HitRecord) core.XyzE { return t.Base.Emit(rayIn, hit) }

func (t *ThinFilm) ScatteringPDF(hit HitRecord, scattered core.Ray) (float64, bool) {
	return t.Base.ScatteringPDF(hit, scattered)
}

func (t *ThinFilm) IsWavelengthDependent() bool { return true }
