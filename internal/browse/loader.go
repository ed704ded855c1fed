package browse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/remotefinder/internal/feed"
)

// ErrCancelled is returned by RunLoader when the user aborts with ctrl+c.
var ErrCancelled = errors.New("cancelled")

type snapshotMsg struct {
	result feed.Result
}

type loaderModel struct {
	host    string
	timeout time.Duration
	load    func(ctx context.Context) feed.Result
	spin    spinner.Model
	result  feed.Result
	err     error
	done    bool
}

func newLoaderModel(host string, timeout time.Duration, load func(ctx context.Context) feed.Result) loaderModel {
	return loaderModel{
		host:    host,
		timeout: timeout,
		load:    load,
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("33"))),
		),
	}
}

func (m loaderModel) Init() tea.Cmd {
	return tea.Batch(m.fetchSnapshot(), m.spin.Tick)
}

// fetchSnapshot runs the load under its own deadline so a stalled upstream
// cannot leave the spinner up forever.
func (m loaderModel) fetchSnapshot() tea.Cmd {
	load, timeout := m.load, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return snapshotMsg{result: load(ctx)}
	}
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.result = msg.result
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrCancelled
			m.done = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loaderModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Loading remote jobs from %s...\n", m.spin.View(), m.host)
}

// RunLoader shows a spinner while load fetches a snapshot, giving up after
// timeout. It renders inline (no alt screen).
func RunLoader(host string, timeout time.Duration, load func(ctx context.Context) feed.Result) (feed.Result, error) {
	final, err := tea.NewProgram(newLoaderModel(host, timeout, load)).Run()
	if err != nil {
		return feed.Result{}, err
	}
	m := final.(loaderModel)
	return m.result, m.err
}
