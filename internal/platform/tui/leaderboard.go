package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordguess/internal/leaderboard"
)

// Leaderboard layout constants
const (
	leaderboardChrome = 10 // title, help, notice and margins
	minTableHeight    = 3
)

// trophies marks the top three ranks.
var trophies = []string{"1st", "2nd", "3rd"}

// rankStyles colours the top three ranks gold, silver and bronze.
var rankStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
}

// LeaderboardView is the leaderboard table embedded in the game screens.
type LeaderboardView struct {
	board   leaderboard.Board
	entries []leaderboard.Entry
	table   table.Model
	width   int
	height  int
	err     error
}

// NewLeaderboardView creates a view over board. A nil board shows an empty
// table.
func NewLeaderboardView(board leaderboard.Board, width, height int) LeaderboardView {
	v := LeaderboardView{
		board:  board,
		width:  width,
		height: height,
	}
	v.table = v.createTable()
	return v
}

// createTable creates a new table with appropriate columns.
func (v *LeaderboardView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Name", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Word", Width: 8},
		{Title: "Guesses", Width: 7},
		{Title: "Date", Width: 12},
	}

	// Give the name column whatever room is left.
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := v.width - 8 - used; extra > 0 {
		columns[1].Width += min(extra, leaderboard.MaxNameLength-columns[1].Width)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(minTableHeight, v.height-leaderboardChrome)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Load reads the board into the table.
func (v *LeaderboardView) Load(ctx context.Context) error {
	v.entries, v.err = nil, nil
	if v.board != nil {
		v.entries, v.err = v.board.Top(ctx, 0)
	}
	v.updateTableRows()
	return v.err
}

// Clear empties the board.
func (v *LeaderboardView) Clear(ctx context.Context) error {
	if v.board == nil {
		return nil
	}
	if err := v.board.Clear(ctx); err != nil {
		v.err = err
		return err
	}
	return v.Load(ctx)
}

// Entries returns the loaded entries.
func (v LeaderboardView) Entries() []leaderboard.Entry {
	return v.entries
}

// updateTableRows updates the table with current entries.
func (v *LeaderboardView) updateTableRows() {
	rows := make([]table.Row, len(v.entries))
	for i, e := range v.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			e.Word,
			fmt.Sprintf("%d", e.Guesses),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	v.table.SetRows(rows)

	// Reset cursor to top
	v.table.GotoTop()
}

// SetSize rebuilds the table for a new terminal size.
func (v *LeaderboardView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.updateTableRows()
}

// Update passes scrolling keys to the table.
func (v LeaderboardView) Update(msg tea.Msg) (LeaderboardView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the table, the podium line and any load error.
func (v LeaderboardView) View() string {
	var b strings.Builder

	if v.err != nil {
		b.WriteString(errorStyle.Render("Could not load scores: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if len(v.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(emptyStyle.Render("No scores yet!\nPlay a game and win to see your score here!"))
		return b.String()
	}

	var podium []string
	for i, e := range v.entries {
		if i == len(trophies) {
			break
		}
		podium = append(podium, rankStyles[i].Render(trophies[i]+" "+e.Name))
	}
	b.WriteString(strings.Join(podium, "   "))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(v.table.View()))

	return b.String()
}
