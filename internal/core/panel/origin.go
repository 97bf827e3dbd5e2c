// Package panel computes where the notification panel opens relative to its
// trigger.
package panel

import "math"

// Rect is a bounding rectangle in viewport coordinates, as returned by
// Element.getBoundingClientRect().
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

type Origin struct {
	Top   float64 `json:"top"`
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// ComputeOrigin places the panel to the right of the trigger when it fits,
// and flips it against the right edge of the viewport otherwise. The panel
// never overflows the viewport.
func ComputeOrigin(trigger Rect, viewportWidth, panelMaxWidth, edgeGap float64) Origin {
	viewportWidth = math.Max(viewportWidth, 0)
	edgeGap = math.Max(edgeGap, 0)

	width := math.Min(panelMaxWidth, viewportWidth-2*edgeGap)
	width = math.Max(width, 0)

	left := trigger.Right + edgeGap
	if left+width > viewportWidth-edgeGap {
		left = viewportWidth - width - edgeGap
	}

	left = math.Min(math.Max(left, 0), viewportWidth-width)

	return Origin{
		Top:   trigger.Top,
		Left:  left,
		Width: width,
	}
}
