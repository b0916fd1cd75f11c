package tracker

import (
	"log"

	"github.com/fogleman/gg"

	ts "github.com/defCoding/cartpole-ai/timestep"
)

const margin float64 = 20.0

// LearningCurve tracks episode lengths and renders them as a PNG
// learning curve when saved. Longer episodes mean the pole stayed up
// longer, so an upward-trending curve indicates learning progress.
type LearningCurve struct {
	episodeLengths []int
	filename       string
	width          int
	height         int
}

// NewLearningCurve returns a new LearningCurve tracker rendering a
// width x height PNG image at the specified location filename
func NewLearningCurve(filename string, width, height int) *LearningCurve {
	return &LearningCurve{filename: filename, width: width, height: height}
}

// Track caches the episode length whenever the timestep passed to it
// is the last timestep in an episode
func (l *LearningCurve) Track(t ts.TimeStep) {
	if t.Last() {
		l.episodeLengths = append(l.episodeLengths, t.Number)
	}
}

// Save renders the learning curve and writes it to disk
func (l *LearningCurve) Save() {
	dc := gg.NewContext(l.width, l.height)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Axes
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, margin, margin, float64(l.height)-margin)
	dc.DrawLine(margin, float64(l.height)-margin,
		float64(l.width)-margin, float64(l.height)-margin)
	dc.Stroke()

	if len(l.episodeLengths) > 1 {
		maxLength := l.episodeLengths[0]
		for _, length := range l.episodeLengths {
			if length > maxLength {
				maxLength = length
			}
		}

		plotWidth := float64(l.width) - 2*margin
		plotHeight := float64(l.height) - 2*margin

		dc.SetRGB(0.2, 0.3, 0.8)
		for i, length := range l.episodeLengths {
			x := margin + plotWidth*float64(i)/
				float64(len(l.episodeLengths)-1)
			y := float64(l.height) - margin -
				plotHeight*float64(length)/float64(maxLength)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	if err := dc.SavePNG(l.filename); err != nil {
		log.Fatalf("could not save learning curve: %v", err)
	}
}
