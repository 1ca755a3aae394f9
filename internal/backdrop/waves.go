package backdrop

import (
	"math"
	"math/rand"
)

// WaveLayers is the number of superimposed waves.
const WaveLayers = 3

// WaveParams describes one wave layer.
type WaveParams struct {
	Amplitude float64
	Period    float64
	Speed     float64
	Opacity   float64
}

// WaveLayer returns the parameters of layer i, counted from the front.
func WaveLayer(i int) WaveParams {
	fi := float64(i)
	return WaveParams{
		Amplitude: 20 + fi*10,
		Period:    200 + fi*50,
		Speed:     0.02 - fi*0.005,
		Opacity:   0.15 - fi*0.03,
	}
}

// Y returns the height of the wave at x on the given frame around mid.
func (p WaveParams) Y(x, mid float64, frame uint64) float64 {
	t := float64(frame) * p.Speed
	return mid +
		p.Amplitude*math.Sin(x/p.Period*2*math.Pi+t) +
		p.Amplitude/2*math.Sin(x/(p.Period/2)*2*math.Pi+t*1.5)
}

// WaveField draws layered sine bands filled with a fading gradient.
type WaveField struct {
	palette Palette
	width   int
	height  int
	Frame   uint64
}

func NewWaveField(p Palette) *WaveField {
	return &WaveField{palette: p}
}

// Reset only records the new size; the phase survives resizes.
func (f *WaveField) Reset(w, h int, _ *rand.Rand) {
	f.width, f.height = w, h
}

// Path returns the closed outline of layer i on the current frame.
func (f *WaveField) Path(i int) []Point {
	p := WaveLayer(i)
	w, h := float64(f.width), float64(f.height)
	mid := h / 2

	pts := make([]Point, 0, f.width+3)
	pts = append(pts, Point{0, mid})
	for x := 0; x < f.width; x++ {
		pts = append(pts, Point{float64(x), p.Y(float64(x), mid, f.Frame)})
	}
	return append(pts, Point{w, h}, Point{0, h})
}

func (f *WaveField) Step(c Canvas) {
	c.Clear()
	for i := 0; i < WaveLayers; i++ {
		p := WaveLayer(i)
		c.FillGradientPolygon(f.Path(i), LinearGradient{
			Y0:   0,
			Y1:   float64(f.height),
			From: f.palette.Color(p.Opacity),
			To:   f.palette.Color(0),
		})
	}
	f.Frame++
}
