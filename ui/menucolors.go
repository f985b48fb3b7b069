package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired color palette for panels and lists.
var MenuColors = struct {
	Label       tcell.Color // Light gray for labels
	ButtonBG    tcell.Color // Button background
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
}{
	Label:       tcell.PaletteColor(250),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}
