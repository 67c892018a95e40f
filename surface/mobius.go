package surface

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mobius is a Möbius band of mid-radius 1 and width 1. u runs along the
// band with θ = 2πu-π, v across it with offset φ = v-½.
type Mobius struct {
	Plane paramgeom.Plane
}

// NewMobius creates a Möbius band in plane.
func NewMobius(plane paramgeom.Plane) *Mobius {
	return &Mobius{Plane: plane}
}

// DefaultMobius sits in the default plane.
func DefaultMobius() *Mobius {
	return NewMobius(paramgeom.DefaultPlane())
}

// mobiusAt holds the band's terms at one parameter pair. w is the distance
// from the band's axis, wt and wtt its derivatives by θ.
type mobiusAt struct {
	st, ct  float64 // θ
	sh, ch  float64 // θ/2
	phi     float64
	w       float64
	wt, wtt float64
}

func (mb *Mobius) at(u, v float64) mobiusAt {
	theta := 2*math.Pi*u - math.Pi
	var t mobiusAt
	t.phi = v - 0.5
	t.st, t.ct = math.Sincos(theta)
	t.sh, t.ch = math.Sincos(theta / 2)
	t.w = 1 + t.phi*t.sh
	t.wt = t.phi * t.ch / 2
	t.wtt = -t.phi * t.sh / 4
	return t
}

// PointAt takes u along the center circle and v across the band.
func (mb *Mobius) PointAt(u, v float64) r3.Vec {
	t := mb.at(u, v)
	return mb.Plane.At(t.w*t.ct, t.w*t.st, t.phi*t.ch)
}

func (mb *Mobius) DuAt(u, v float64) r3.Vec {
	t := mb.at(u, v)
	k := 2 * math.Pi
	return mb.Plane.Along(
		k*(t.wt*t.ct-t.w*t.st),
		k*(t.wt*t.st+t.w*t.ct),
		-k*t.phi*t.sh/2,
	)
}

func (mb *Mobius) DvAt(u, v float64) r3.Vec {
	t := mb.at(u, v)
	return mb.Plane.Along(t.sh*t.ct, t.sh*t.st, t.ch)
}

func (mb *Mobius) DuDuAt(u, v float64) r3.Vec {
	t := mb.at(u, v)
	k := 4 * math.Pi * math.Pi
	return mb.Plane.Along(
		k*(t.wtt*t.ct-2*t.wt*t.st-t.w*t.ct),
		k*(t.wtt*t.st+2*t.wt*t.ct-t.w*t.st),
		-k*t.phi*t.ch/4,
	)
}

func (mb *Mobius) DuDvAt(u, v float64) r3.Vec {
	t := mb.at(u, v)
	k := 2 * math.Pi
	return mb.Plane.Along(
		k*(t.ch*t.ct/2-t.sh*t.st),
		k*(t.ch*t.st/2+t.sh*t.ct),
		-k*t.sh/2,
	)
}

// DvDvAt is zero: the band is ruled across v.
func (mb *Mobius) DvDvAt(u, v float64) r3.Vec {
	return r3.Vec{}
}
