package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#6B7280") // secondary copy, close button
	ColorInk   = lipgloss.Color("#374151") // greeting body text
)

var (
	ColorPinkWash   = lipgloss.Color("#FDF2F8") // loading background
	ColorPinkTrack  = lipgloss.Color("#FBCFE8") // progress bar track
	ColorPinkLight  = lipgloss.Color("#F9A8D4") // main gradient start
	ColorPink       = lipgloss.Color("#EC4899") // card borders, progress bar
	ColorPinkDeep   = lipgloss.Color("#DB2777") // headings
	ColorPurpleWash = lipgloss.Color("#FAF5FF") // countdown background
	ColorLavender   = lipgloss.Color("#C084FC") // main gradient end
	ColorPurple     = lipgloss.Color("#9333EA") // countdown border, button
	ColorPurpleDeep = lipgloss.Color("#7E22CE") // countdown heading
	ColorPurpleInk  = lipgloss.Color("#581C87") // countdown digits
	ColorGold       = lipgloss.Color("#EAB308") // sign-off
)

var (
	ColorBackdrop = lipgloss.Color("#1F1F23") // dimmed page behind the open card
	ColorShadow   = lipgloss.Color("#E9D5FF") // drop shadow under cards
)
