package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sfzkit/internal/driver"
)

type progressModel struct {
	title      string
	events     <-chan driver.Event
	spinner    spinner.Model
	prog       progress.Model
	items      []fileItem
	index      map[string]int
	stageLabel string
	failed     []int // indexes into items, in the order they failed
	width      int
	done       bool
}

type fileItem struct {
	path   string
	status string
	stage  driver.Stage
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-instrument
// progress of a directory run. files are the paths events will carry.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: "queued"})
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
		ev := driver.Event(msg)
		cmd := m.applyEvent(ev)
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
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// maxActive and maxFailed bound the lists under the counter line; a
// library can hold hundreds of instruments.
const (
	maxActive = 8
	maxFailed = 5
)

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.stageLabel != "" {
		header = fmt.Sprintf("%s (%s)", header, m.stageLabel)
	}
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	c := m.count()
	summary := fmt.Sprintf("%d/%d instruments", c.finished, len(m.items))
	if c.cached > 0 {
		summary += fmt.Sprintf(", %d cached", c.cached)
	}
	if c.failed > 0 {
		summary += ", " + styleStatus("error").Render(fmt.Sprintf("%d failed", c.failed))
	}
	b.WriteString(summary)
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	shown := 0
	for _, item := range m.items {
		if item.status == "queued" || finished(item.status) {
			continue
		}
		if shown == maxActive {
			fmt.Fprintf(&b, "  %12s +%d more\n", "", c.active-shown)
			break
		}
		m.writeItem(&b, item, nameWidth)
		shown++
	}
	// последние упавшие инструменты остаются на экране до конца
	for i, idx := range m.failed {
		if i == maxFailed {
			fmt.Fprintf(&b, "  %12s +%d more failed\n", "", len(m.failed)-i)
			break
		}
		m.writeItem(&b, m.items[idx], nameWidth)
	}
	if m.done || c.active == 0 {
		for _, item := range m.items {
			if item.status == "cached" || item.status == "done" {
				if shown == maxActive {
					break
				}
				m.writeItem(&b, item, nameWidth)
				shown++
			}
		}
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) writeItem(b *strings.Builder, item fileItem, nameWidth int) {
	status := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
	fmt.Fprintf(b, "  %s %s\n", status, truncate(item.path, nameWidth))
}

type counts struct {
	finished, cached, failed, active int
}

func (m *progressModel) count() counts {
	var c counts
	for _, item := range m.items {
		switch {
		case finished(item.status):
			c.finished++
			if item.status == "cached" {
				c.cached++
			}
			if item.status == "error" {
				c.failed++
			}
		case item.status != "queued":
			c.active++
		}
	}
	return c
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

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	label := statusLabel(ev.Stage, ev.Status)
	if ev.File == "" {
		if label != "" {
			m.stageLabel = label
		}
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	if label != "" {
		if label == "error" && m.items[idx].status != "error" {
			m.failed = append(m.failed, idx)
		}
		m.items[idx].status = label
		m.items[idx].stage = ev.Stage
	}
	return m.prog.SetPercent(m.percent())
}

// percent weighs finished instruments as 1 and running ones by stage.
func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		if finished(item.status) {
			total += 1.0
		} else {
			total += progressFromStage(item.stage)
		}
	}
	return total / float64(len(m.items))
}

func finished(status string) bool {
	return status == "done" || status == "cached" || status == "error"
}

func progressFromStage(stage driver.Stage) float64 {
	switch stage {
	case driver.StageLoad:
		return 0.05
	case driver.StageInclude:
		return 0.2
	case driver.StageExpand:
		return 0.4
	case driver.StageTokenize:
		return 0.6
	case driver.StageBuild:
		return 0.8
	default:
		return 0.0
	}
}

func statusLabel(stage driver.Stage, status driver.Status) string {
	switch status {
	case driver.StatusQueued:
		return "queued"
	case driver.StatusDone:
		return "done"
	case driver.StatusCached:
		return "cached"
	case driver.StatusError:
		return "error"
	case driver.StatusWorking:
		return stageLabel(stage)
	default:
		return ""
	}
}

func stageLabel(stage driver.Stage) string {
	switch stage {
	case driver.StageLoad:
		return "loading"
	case driver.StageInclude:
		return "including"
	case driver.StageExpand:
		return "expanding"
	case driver.StageTokenize, driver.StageBuild:
		return "parsing"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "loading", "including", "expanding", "parsing":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
