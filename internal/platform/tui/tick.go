// Package tui provides the Bubble Tea frontend for the word game.
// It handles the terminal UI loop, input mapping, the leaderboard screen
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeTTL is how long a transient notice stays on screen.
const noticeTTL = 3 * time.Second

// NoticeExpiredMsg clears the notice with the matching id.
type NoticeExpiredMsg struct {
	ID int
}

// noticeCmd returns a Bubble Tea command that expires notice id after d.
func noticeCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}
