package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Pager collects text to show in ov once the current update finishes.
// It implements commands.Viewer for the TUI.
type Pager struct {
	pending *page
}

// NewPager creates an idle pager
func NewPager() *Pager {
	return &Pager{}
}

// Show queues content for the pager
func (p *Pager) Show(title, content string) error {
	p.pending = &page{title: title, content: content}
	return nil
}

// take returns and clears the queued page
func (p *Pager) take() *page {
	pg := p.pending
	p.pending = nil
	return pg
}

// page runs ov over a block of text. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while ov owns it.
type page struct {
	title   string
	content string
}

func (pg *page) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(pg.title + "\n\n" + pg.content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (pg *page) SetStdin(io.Reader)  {}
func (pg *page) SetStdout(io.Writer) {}
func (pg *page) SetStderr(io.Writer) {}

type pagerClosedMsg struct {
	err error
}

func (pg *page) cmd() tea.Cmd {
	return tea.Exec(pg, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
