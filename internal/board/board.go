package board

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashub/ash/pkg/ash/client"
)

// -- messages --

type groupsLoadedMsg struct {
	groups []client.Group
	err    error
}

type joinedMsg struct {
	groupID uint
	title   string
	result  *client.JoinResult
	err     error
}

// -- model --

// Model is the study group browser.
type Model struct {
	client       *client.Client
	name         string
	email        string
	groups       []client.Group
	cursor       int
	courseFilter string // "" = all
	courseCycle  int
	courseOrder  []string
	status       string
	err          string
	loading      bool
	width        int
	height       int
}

// New creates a browser that joins groups as name.
func New(c *client.Client, name, email string) Model {
	return Model{client: c, name: name, email: email, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.loadGroups()
}

func (m Model) loadGroups() tea.Cmd {
	c := m.client
	course := m.courseFilter
	return func() tea.Msg {
		groups, err := c.StudyGroups.List(context.Background(), course, "")
		return groupsLoadedMsg{groups: groups, err: err}
	}
}

func (m *Model) buildCourseOrder() {
	seen := make(map[string]bool)
	for _, g := range m.groups {
		if g.Course != "" {
			seen[g.Course] = true
		}
	}
	courses := make([]string, 0, len(seen))
	for c := range seen {
		courses = append(courses, c)
	}
	sort.Strings(courses)
	m.courseOrder = append([]string{""}, courses...)
	m.courseCycle = 0
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case groupsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.groups = msg.groups
		m.err = ""
		if m.cursor >= len(m.groups) {
			m.cursor = 0
		}
		if m.courseFilter == "" {
			m.buildCourseOrder()
		}

	case joinedMsg:
		m.status = joinOutcome(msg)
		if msg.err == nil || client.IsStatus(msg.err, http.StatusConflict) {
			m.loading = true
			return m, m.loadGroups()
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func joinOutcome(msg joinedMsg) string {
	switch {
	case msg.err == nil:
		return accentStyle.Render(fmt.Sprintf("joined %s", msg.title))
	case client.JoinStatusOf(msg.err) == "waitlisted":
		return warnStyle.Render(fmt.Sprintf("%s is full, you are waitlisted", msg.title))
	case client.JoinStatusOf(msg.err) == "already_member":
		return dimStyle.Render(fmt.Sprintf("already a member of %s", msg.title))
	default:
		return closedStyle.Render("join failed: " + msg.err.Error())
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.groups)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "c":
		if len(m.courseOrder) > 1 {
			m.courseCycle = (m.courseCycle + 1) % len(m.courseOrder)
			m.courseFilter = m.courseOrder[m.courseCycle]
			m.cursor = 0
			m.loading = true
			return m, m.loadGroups()
		}
	case "enter", "J":
		if len(m.groups) == 0 || m.cursor >= len(m.groups) {
			return m, nil
		}
		g := m.groups[m.cursor]
		c, name, email := m.client, m.name, m.email
		m.status = dimStyle.Render("joining " + g.Title + "...")
		return m, func() tea.Msg {
			result, err := c.StudyGroups.Join(context.Background(), g.ID, name, email)
			return joinedMsg{groupID: g.ID, title: g.Title, result: result, err: err}
		}
	case "r":
		m.loading = true
		return m, m.loadGroups()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(" " + titleStyle.Render("Study Groups"))
	if m.courseFilter != "" {
		b.WriteString(dimStyle.Render(" · " + m.courseFilter))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.groups) == 0:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
	case m.err != "":
		b.WriteString(" " + closedStyle.Render("error: "+m.err) + "\n")
	case len(m.groups) == 0:
		b.WriteString(" " + dimStyle.Render("no study groups yet") + "\n")
	default:
		for i, g := range m.groups {
			b.WriteString(m.renderRow(i, g))
		}
	}

	if m.status != "" {
		b.WriteString("\n " + m.status + "\n")
	}

	b.WriteString("\n " + m.helpKeys() + "\n")
	return b.String()
}

func (m Model) renderRow(i int, g client.Group) string {
	cursor := " "
	title := normalStyle.Render(fmt.Sprintf("%-24s", truncate(g.Title, 24)))
	if i == m.cursor {
		cursor = accentStyle.Render("▸")
		title = selectedStyle.Render(fmt.Sprintf("%-24s", truncate(g.Title, 24)))
	}

	state := openStyle.Render("open  ")
	if !g.Open {
		state = closedStyle.Render("closed")
	}

	seats := metaStyle.Render(fmt.Sprintf("%d/%d", g.MemberCount, g.Capacity))
	course := dimStyle.Render(fmt.Sprintf("%-10s", g.Course))

	row := fmt.Sprintf(" %s %s %s  %s  %s", cursor, course, title, seats, state)
	if g.Meets != "" {
		row += "  " + metaStyle.Render(g.Meets)
	}
	return row + "\n"
}

func (m Model) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("c", "course") + "  " + helpEntry("enter", "join") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("q", "quit")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
