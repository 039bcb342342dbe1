package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type progressModel struct {
	title      string
	events     <-chan Event
	spinner    spinner.Model
	prog       progress.Model
	items      []docItem
	index      map[string]int
	stageLabel string
	width      int
	done       bool
}

type docItem struct {
	path     string
	stage    Stage
	errors   int
	warnings int
}

type eventMsg Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-document
// resolve progress. The model quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]docItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, docItem{path: file, stage: StageQueued})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

const (
	statusCol = 12
	countsCol = 10
)

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	head := m.title
	if m.stageLabel != "" {
		head += " (" + m.stageLabel + ")"
	}
	if m.done {
		head = "done: " + head
	} else {
		head = m.spinner.View() + " " + head
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(head) + "\n\n")
	nameCol := max(m.width-statusCol-countsCol-6, 20)
	for i := range m.items {
		sb.WriteString(m.items[i].row(nameCol))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	bar := m.prog.View()
	if m.done {
		bar = m.prog.ViewAs(1)
	}
	sb.WriteString(bar + "\n")
	return sb.String()
}

// row renders "  <stage> <path>  <counts>" with the path padded to nameCol.
func (it *docItem) row(nameCol int) string {
	stage := stageInfo[it.stage]
	name := truncate(it.path, nameCol)
	line := "  " + stage.style.Render(fmt.Sprintf("%*s", statusCol, it.stage)) + " " + name
	if counts := it.counts(); counts != "" {
		line += strings.Repeat(" ", nameCol-runewidth.StringWidth(name)+1) + counts
	}
	return line
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	if ev.File == "" {
		if label := ev.Stage.String(); label != "" {
			m.stageLabel = label
		}
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	item.stage = ev.Stage
	item.errors = ev.Errors
	item.warnings = ev.Warnings
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range m.items {
		sum += stageInfo[it.stage].weight
	}
	return sum / float64(len(m.items))
}

// stageInfo: доля выполненной работы и цвет статуса для каждой стадии.
var stageInfo = map[Stage]struct {
	weight float64
	style  lipgloss.Style
}{
	StageQueued:  {0, lipgloss.NewStyle().Foreground(lipgloss.Color("7"))},
	StageDecode:  {0.2, lipgloss.NewStyle().Foreground(lipgloss.Color("6"))},
	StageBuild:   {0.4, lipgloss.NewStyle().Foreground(lipgloss.Color("6"))},
	StageResolve: {0.7, lipgloss.NewStyle().Foreground(lipgloss.Color("6"))},
	StageDone:    {1, lipgloss.NewStyle().Foreground(lipgloss.Color("2"))},
	StageFailed:  {1, lipgloss.NewStyle().Foreground(lipgloss.Color("1"))},
}

// counts renders "2E 1W", omitting zero parts.
func (it *docItem) counts() string {
	var parts []string
	if it.errors > 0 {
		parts = append(parts, errStyle.Render(fmt.Sprintf("%dE", it.errors)))
	}
	if it.warnings > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%dW", it.warnings)))
	}
	return strings.Join(parts, " ")
}

func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
