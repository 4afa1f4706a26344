package swipey

import (
	"github.com/vovakirdan/swipey/internal/core"
	"github.com/vovakirdan/swipey/internal/swipe"
)

// Button is one choice on the transition screen.
type Button struct {
	Param   string
	Delta   int
	Label   string
	Rect    core.Rect
	Enabled bool
}

// Labels for the decrease and increase buttons of each parameter.
var buttonLabels = map[string][2]string{
	swipe.ParamStrength:   {"WEAK", "STRONG"},
	swipe.ParamSmoothness: {"ROUGH", "SMOOTH"},
	swipe.ParamFocus:      {"NARROW", "WIDE"},
}

const (
	buttonWidth  = 12
	buttonHeight = 3
	buttonGap    = 6
	rowSpacing   = 4
)

// layoutButtons places a pair of buttons per offered parameter, centred on a w x h grid.
func layoutButtons(params []string, values *swipe.Parameters, w, h int) []Button {
	buttons := make([]Button, 0, len(params)*2)
	top := (h - len(params)*rowSpacing) / 2
	left := w/2 - buttonGap/2 - buttonWidth
	right := w/2 + buttonGap/2

	for i, name := range params {
		y := top + i*rowSpacing
		labels := buttonLabels[name]
		buttons = append(buttons,
			Button{
				Param:   name,
				Delta:   -1,
				Label:   labels[0],
				Rect:    core.NewRect(left, y, buttonWidth, buttonHeight),
				Enabled: values.CanAdjust(name, -1),
			},
			Button{
				Param:   name,
				Delta:   +1,
				Label:   labels[1],
				Rect:    core.NewRect(right, y, buttonWidth, buttonHeight),
				Enabled: values.CanAdjust(name, +1),
			},
		)
	}
	return buttons
}

// hitButton returns the enabled button under a cell, if any.
func hitButton(buttons []Button, x, y int) (Button, bool) {
	for _, b := range buttons {
		if b.Enabled && b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
