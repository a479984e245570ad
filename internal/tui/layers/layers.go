// Package layers positions rendered blocks on the screen canvas
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// Compose stacks base and every non-nil overlay into one rendered canvas
func Compose(base string, overlays ...*lipgloss.Layer) string {
	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, overlay := range overlays {
		if overlay != nil {
			stack = append(stack, overlay)
		}
	}
	return lipgloss.NewCanvas(stack...).Render()
}
