package panel

import (
	"fmt"
	"testing"
)

func TestComputeOrigin(t *testing.T) {
	type testCase struct {
		Name          string
		Trigger       Rect
		ViewportWidth float64
		PanelMaxWidth float64
		EdgeGap       float64
		Expected      Origin
	}

	testCases := []testCase{
		{
			Name:          "OpensToTheRight",
			Trigger:       Rect{Top: 40, Left: 10, Right: 50, Bottom: 80},
			ViewportWidth: 1280,
			PanelMaxWidth: 380,
			EdgeGap:       12,
			Expected:      Origin{Top: 40, Left: 62, Width: 380},
		},
		{
			Name:          "FlipsNearTheRightEdge",
			Trigger:       Rect{Top: 20, Left: 900, Right: 940, Bottom: 60},
			ViewportWidth: 1024,
			PanelMaxWidth: 380,
			EdgeGap:       12,
			Expected:      Origin{Top: 20, Left: 1024 - 380 - 12, Width: 380},
		},
		{
			Name:          "ShrinksOnNarrowViewport",
			Trigger:       Rect{Top: 0, Left: 0, Right: 40, Bottom: 40},
			ViewportWidth: 320,
			PanelMaxWidth: 380,
			EdgeGap:       12,
			Expected:      Origin{Top: 0, Left: 12, Width: 296},
		},
		{
			Name:          "TinyViewport",
			Trigger:       Rect{Top: 5, Left: 0, Right: 10, Bottom: 20},
			ViewportWidth: 16,
			PanelMaxWidth: 380,
			EdgeGap:       12,
			Expected:      Origin{Top: 5, Left: 4, Width: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			origin := ComputeOrigin(tc.Trigger, tc.ViewportWidth, tc.PanelMaxWidth, tc.EdgeGap)

			if e, g := tc.Expected, origin; e != g {
				t.Errorf("ComputeOrigin(): expected %+v, got %+v", e, g)
			}
		})
	}
}

func TestComputeOriginNeverOverflows(t *testing.T) {
	const (
		panelMaxWidth = 380
		edgeGap       = 12
	)

	for viewportWidth := 0.0; viewportWidth <= 1600; viewportWidth += 40 {
		for right := 0.0; right <= viewportWidth; right += 20 {
			trigger := Rect{Top: 10, Left: right - 20, Right: right, Bottom: 50}

			origin := ComputeOrigin(trigger, viewportWidth, panelMaxWidth, edgeGap)

			name := fmt.Sprintf("viewport=%v,right=%v", viewportWidth, right)

			if origin.Left < 0 {
				t.Errorf("%s: negative left %v", name, origin.Left)
			}

			if origin.Left+origin.Width > viewportWidth {
				t.Errorf("%s: left+width %v overflows viewport", name, origin.Left+origin.Width)
			}

			if right+edgeGap+panelMaxWidth > viewportWidth && viewportWidth >= panelMaxWidth+2*edgeGap {
				if e, g := viewportWidth-panelMaxWidth-edgeGap, origin.Left; e != g {
					t.Errorf("%s: origin.Left: expected %v, got %v", name, e, g)
				}
			}
		}
	}
}
