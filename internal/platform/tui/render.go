package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordguess/internal/games/wordguess"
)

// maxFeedbackRows is how many previous guesses the play screen lists.
const maxFeedbackRows = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	wrongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	wordStyle  = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	tileBase = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)
)

// tileStyles colours a letter by its evaluation state.
var tileStyles = map[wordguess.LetterState]lipgloss.Style{
	wordguess.LetterCorrect:   tileBase.Background(lipgloss.Color("2")),
	wordguess.LetterMisplaced: tileBase.Background(lipgloss.Color("1")),
	wordguess.LetterAbsent:    tileBase.Background(lipgloss.Color("8")),
	wordguess.LetterUnknown:   tileBase.Background(lipgloss.Color("8")),
}

// RenderTiles renders one evaluated guess as a row of coloured tiles.
func RenderTiles(feedback []wordguess.LetterFeedback) string {
	tiles := make([]string, len(feedback))
	for i, f := range feedback {
		style, ok := tileStyles[f.State]
		if !ok {
			style = tileStyles[wordguess.LetterUnknown]
		}
		tiles[i] = style.Render(string(f.Letter))
	}
	return strings.Join(tiles, " ")
}

// RenderDisplayWord spaces out the masked word: "A _ _ L E".
func RenderDisplayWord(word string) string {
	letters := strings.Split(word, "")
	return wordStyle.Render(strings.Join(letters, " "))
}

// renderHistory lists the first guesses with the raw input beside each row.
func renderHistory(history []wordguess.GuessRecord) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(subtleStyle.Render("Previous Guesses:"))
	for i, g := range history {
		if i == maxFeedbackRows {
			break
		}
		b.WriteString("\n")
		b.WriteString(RenderTiles(g.Feedback))
		b.WriteString("  ")
		b.WriteString(subtleStyle.Render(g.Raw))
	}
	return b.String()
}

// centerText centers a block within the given width.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
