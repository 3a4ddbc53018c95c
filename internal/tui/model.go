package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/benchlink/benchlink-cli/internal/api"
	"github.com/benchlink/benchlink-cli/internal/router"
	"github.com/benchlink/benchlink-cli/internal/session"
)

// View identifies the screen currently displayed.
type View int

// Screens, one per navigable route the terminal UI supports.
const (
	ViewLogin View = iota
	ViewDashboard
	ViewProjects
	ViewTestSuites
	ViewExecutions
)

// routePath maps a screen to its navigation route, so switching screens
// goes through the same guard as any other navigation.
func (v View) routePath() string {
	switch v {
	case ViewLogin:
		return router.LoginPath
	case ViewDashboard:
		return "/dashboard"
	case ViewProjects:
		return "/projects"
	case ViewTestSuites:
		return "/testsuites"
	case ViewExecutions:
		return "/executions"
	default:
		return "/dashboard"
	}
}

func (v View) title() string {
	switch v {
	case ViewLogin:
		return "Login"
	case ViewDashboard:
		return "Dashboard"
	case ViewProjects:
		return "Projects"
	case ViewTestSuites:
		return "Test Suites"
	case ViewExecutions:
		return "Executions"
	default:
		return ""
	}
}

// Model is the terminal UI application state.
type Model struct {
	client *api.Client
	store  session.Store
	guard  *router.Guard

	view    View
	loading bool
	notice  string
	errMsg  string

	// Login form
	username textinput.Model
	password textinput.Model
	focused  int

	// Loaded data
	stats      *api.ProjectStatistics
	projects   []api.Project
	suites     []api.TestSuite
	executions []api.Execution
	cursor     int

	spinner  spinner.Model
	width    int
	height   int
	quitting bool
	styles   Styles
}

// NewModel builds the UI over a wired client. The starting screen is
// decided by the navigation guard: an existing session lands on the
// dashboard, anything else on login.
func NewModel(client *api.Client, store session.Store, guard *router.Guard) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		client:   client,
		store:    store,
		guard:    guard,
		view:     ViewLogin,
		username: username,
		password: password,
		spinner:  sp,
		styles:   DefaultStyles(),
	}

	if guard.Decide("/dashboard") == router.Allowed {
		m.view = ViewDashboard
	}
	return m
}

// Messages produced by background commands.

type loginDoneMsg struct {
	resp *api.LoginResponse
	err  error
}

type statsLoadedMsg struct {
	stats *api.ProjectStatistics
	err   error
}

type projectsLoadedMsg struct {
	page *api.Page[api.Project]
	err  error
}

type suitesLoadedMsg struct {
	page *api.Page[api.TestSuite]
	err  error
}

type executionsLoadedMsg struct {
	page *api.Page[api.Execution]
	err  error
}

// SessionExpiredMsg is injected from outside the update loop when the
// server rejects the session mid-flight.
type SessionExpiredMsg struct{}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.view == ViewDashboard {
		return tea.Batch(m.spinner.Tick, m.loadDashboard())
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SessionExpiredMsg:
		return m.toLogin("Your session has expired. Please log in again."), nil

	case loginDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.notice = ""
		m.password.SetValue("")
		m.view = ViewDashboard
		return m.startLoading(m.loadDashboard())

	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case projectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.projects = msg.page.Results
		m.cursor = 0
		return m, nil

	case suitesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.suites = msg.page.Results
		m.cursor = 0
		return m, nil

	case executionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.executions = msg.page.Results
		m.cursor = 0
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.view == ViewLogin {
		return m.handleLoginKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "d":
		return m.navigate(ViewDashboard)
	case "p":
		return m.navigate(ViewProjects)
	case "s":
		return m.navigate(ViewTestSuites)
	case "e":
		return m.navigate(ViewExecutions)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}

	case "r":
		return m.navigate(m.view)
	}

	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focused = (m.focused + 1) % 2
		if m.focused == 0 {
			m.username.Focus()
			m.password.Blur()
		} else {
			m.password.Focus()
			m.username.Blur()
		}
		return m, textinput.Blink

	case "enter":
		username := m.username.Value()
		password := m.password.Value()
		if username == "" || password == "" {
			m.errMsg = "username and password are required"
			return m, nil
		}
		return m.startLoading(m.doLogin(username, password))

	case "esc":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// navigate switches screens through the navigation guard. A rejected
// navigation lands on the login screen instead of the target.
func (m Model) navigate(target View) (tea.Model, tea.Cmd) {
	if m.guard.Decide(target.routePath()) == router.RedirectedToLogin {
		return m.toLogin("Please log in to continue."), textinput.Blink
	}

	m.view = target
	m.errMsg = ""
	switch target {
	case ViewDashboard:
		return m.startLoading(m.loadDashboard())
	case ViewProjects:
		return m.startLoading(m.loadProjects())
	case ViewTestSuites:
		return m.startLoading(m.loadSuites())
	case ViewExecutions:
		return m.startLoading(m.loadExecutions())
	}
	return m, nil
}

func (m Model) toLogin(notice string) Model {
	m.view = ViewLogin
	m.notice = notice
	m.errMsg = ""
	m.loading = false
	m.focused = 0
	m.username.Focus()
	m.password.Blur()
	m.password.SetValue("")
	return m
}

func (m Model) startLoading(cmd tea.Cmd) (Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m Model) listLen() int {
	switch m.view {
	case ViewProjects:
		return len(m.projects)
	case ViewTestSuites:
		return len(m.suites)
	case ViewExecutions:
		return len(m.executions)
	default:
		return 0
	}
}

// Background commands.

func (m Model) doLogin(username, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Login(context.Background(), username, password)
		return loginDoneMsg{resp: resp, err: err}
	}
}

func (m Model) loadDashboard() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		stats, err := client.ProjectStatistics(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m Model) loadProjects() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		page, err := client.ListProjects(context.Background(), api.ListParams{})
		return projectsLoadedMsg{page: page, err: err}
	}
}

func (m Model) loadSuites() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		page, err := client.ListTestSuites(context.Background(), api.ListParams{})
		return suitesLoadedMsg{page: page, err: err}
	}
}

func (m Model) loadExecutions() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		page, err := client.ListExecutions(context.Background(), api.ListParams{})
		return executionsLoadedMsg{page: page, err: err}
	}
}
