package browse

import (
	"fmt"
	"os/exec"
	"runtime"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/remotefinder/internal/feed"
	"github.com/amishk599/remotefinder/internal/model"
	"github.com/amishk599/remotefinder/internal/query"
)

// Lines per job item in the list view (title + subtitle + blank separator).
const jobItemHeight = 3

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")) // bright blue

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(1, 2)

	jobTitleStyle = lipgloss.NewStyle().
			Bold(true)

	jobSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	selectedJobTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")). // bright white
				Background(lipgloss.Color("24"))  // dark blue bg

	selectedJobSubtitleStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("252")).
					Background(lipgloss.Color("24"))

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Width(12)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				MarginBottom(1)
)

type browseModel struct {
	snapshot  feed.Result
	processor *query.Processor
	params    query.Params

	jobs   []model.Job
	errMsg string

	list    viewport.Model
	detail  viewport.Model
	search  textinput.Model
	editing bool
	cursor  int
	width   int
	height  int
	ready   bool
	view    viewState
}

func newBrowseModel(snapshot feed.Result, processor *query.Processor, params query.Params) browseModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search title, company or tag"
	ti.CharLimit = 80
	ti.SetValue(params.Search)

	m := browseModel{
		snapshot:  snapshot,
		processor: processor,
		params:    params,
		search:    ti,
	}
	m.reprocess()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateSearch(msg)
		}
		if m.view == viewDetail {
			return m.updateDetailView(msg)
		}
		return m.updateListView(msg)
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.search.Blur()
		m.params.Search = strings.TrimSpace(m.search.Value())
		m.reprocess()
		m.recalcContent()
		return m, nil
	case "esc":
		m.editing = false
		m.search.Blur()
		m.search.SetValue(m.params.Search)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m browseModel) updateListView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "/":
		m.editing = true
		return m, m.search.Focus()
	case "s":
		m.params.Sort = nextSortMode(m.params.Sort)
		m.reprocess()
		m.recalcContent()
		return m, nil
	case "x":
		m.params.Search = ""
		m.params.Category = ""
		m.search.SetValue("")
		m.reprocess()
		m.recalcContent()
		return m, nil
	case "enter":
		return m.openDetailView()
	}

	// Forward other keys (pgup/pgdn/home/end) to the list viewport.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.view = viewList
		return m, nil
	case "o":
		if url := m.jobs[m.cursor].URL; url != "" {
			openURL(url)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// reprocess runs the query pipeline over the snapshot with the current params.
func (m *browseModel) reprocess() {
	res := m.processor.Process(m.snapshot, m.params)
	m.jobs = res.Jobs
	m.errMsg = res.ErrorMessage
	m.cursor = clamp(m.cursor, 0, max(len(m.jobs)-1, 0))
}

func (m *browseModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(len(m.jobs)-1, 0))
	m.recalcContent()
	m.ensureCursorVisible()
}

func (m *browseModel) ensureCursorVisible() {
	cursorTop := m.cursor * jobItemHeight
	cursorBottom := cursorTop + jobItemHeight - 1

	if cursorTop < m.list.YOffset {
		m.list.SetYOffset(cursorTop)
	} else if cursorBottom >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(cursorBottom - m.list.Height + 1)
	}
}

func (m browseModel) openDetailView() (tea.Model, tea.Cmd) {
	if len(m.jobs) == 0 {
		return m, nil
	}
	m.view = viewDetail
	m.detail = viewport.New(max(m.width-4, 20), max(m.height-4, 5))
	m.detail.SetContent(renderDetail(m.jobs[m.cursor]))
	return m, nil
}

func (m *browseModel) recalcLayout() {
	// Border (2) on each side of the pane.
	width := max(m.width-2, 20)
	// Header (1) + search line (1) + border top/bottom (2) + status bar (1).
	height := max(m.height-5, 5)

	if !m.ready {
		m.list = viewport.New(width, height)
		m.ready = true
	} else {
		m.list.Width = width
		m.list.Height = height
	}
	if m.view == viewDetail {
		m.detail.Width = max(m.width-4, 20)
		m.detail.Height = max(m.height-4, 5)
	}

	m.recalcContent()
}

func (m *browseModel) recalcContent() {
	if !m.ready {
		return
	}
	m.list.SetContent(renderJobs(m.jobs, m.cursor))
}

func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.view == viewDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m browseModel) viewList() string {
	header := fmt.Sprintf("Remote jobs (%d) · sort: %s", len(m.jobs), m.params.Sort)
	if m.params.Category != "" {
		header += " · category: " + m.params.Category
	}

	searchLine := m.search.View()
	if !m.editing && m.params.Search == "" {
		searchLine = jobSubtitleStyle.Render("  press / to search")
	}

	body := borderStyle.Width(m.list.Width).Render(m.list.View())
	if m.errMsg != "" {
		body = errorStyle.Render("⚠ " + m.errMsg)
	}

	status := " ↑/↓ cursor  Enter detail  / search  s sort  x clear  q quit"
	if m.editing {
		status = " Enter apply  Esc cancel"
	}

	return headerStyle.Render(header) + "\n" +
		searchLine + "\n" +
		body + "\n" +
		statusBarStyle.Width(m.width).Render(status)
}

func (m browseModel) viewDetail() string {
	title := detailTitleStyle.Render("Job Details")
	content := borderStyle.Width(m.width - 2).Render(m.detail.View())
	status := statusBarStyle.Width(m.width).Render(" o open URL  esc/backspace back  ↑/↓ scroll  q quit")
	return title + "\n" + content + "\n" + status
}

func renderDetail(j model.Job) string {
	var b strings.Builder

	addField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(detailLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	addField("Title", j.Title)
	addField("Company", j.Company)
	addField("Location", j.Location)
	addField("Salary", j.Salary)
	addField("Posted", j.Date)
	addField("Tags", strings.Join(j.Tags, ", "))
	addField("Job ID", j.ID)
	b.WriteByte('\n')
	addField("URL", j.URL)

	return b.String()
}

func renderJobs(jobs []model.Job, cursor int) string {
	if len(jobs) == 0 {
		return "  (no jobs)"
	}

	var b strings.Builder
	for i, j := range jobs {
		titleSt := jobTitleStyle
		subtitleSt := jobSubtitleStyle
		prefix := "  "
		if i == cursor {
			titleSt = selectedJobTitleStyle
			subtitleSt = selectedJobSubtitleStyle
			prefix = "> "
		}

		b.WriteString(prefix)
		b.WriteString(titleSt.Render(j.Title))
		b.WriteByte('\n')

		subtitle := j.Company + " · " + j.Location
		if j.Salary != "" {
			subtitle += " · " + j.Salary
		}
		b.WriteString(prefix)
		b.WriteString(subtitleSt.Render(subtitle))
		b.WriteByte('\n')

		if i < len(jobs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// nextSortMode cycles through query.SortModes; unknown modes restart at newest.
func nextSortMode(current query.SortMode) query.SortMode {
	i := slices.Index(query.SortModes, current)
	if i < 0 {
		return query.SortNewest
	}
	return query.SortModes[(i+1)%len(query.SortModes)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// openURL opens url in the default system browser, fire-and-forget.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}
	_ = cmd.Start()
}

// RunBrowser launches the interactive job browser over one fetched snapshot.
// Searching and re-sorting reprocess the snapshot; they never refetch.
func RunBrowser(snapshot feed.Result, processor *query.Processor, params query.Params) error {
	m := newBrowseModel(snapshot, processor, params)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
