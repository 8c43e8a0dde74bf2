package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nrclassify/internal/domain"
)

// ClassifierPort is the TUI-facing subset of the classification service.
type ClassifierPort interface {
	Classify(id string) domain.Result
}

// Model is the Bubble Tea model for the interactive result browser.
type Model struct {
	service  ClassifierPort
	input    textinput.Model
	viewport viewport.Model
	results  []domain.Result
	summary  string
	status   string
	cursor   int
	ready    bool
}

// New creates a new TUI model over an initial batch of results.
func New(service ClassifierPort, results []domain.Result, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a record ID and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		results:  results,
		summary:  summary,
		status:   "Up/down to browse results, enter to classify a new ID.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and input boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + summary
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentResult())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			id := strings.TrimSpace(m.input.Value())
			if id != "" {
				res := m.service.Classify(id)
				m.results = append(m.results, res)
				m.cursor = len(m.results) - 1
				m.status = fmt.Sprintf("Classified %q", id)
				m.input.SetValue("")
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("NR/Cofactor Complex Classifier")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := inputBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	result := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + result + "\n" + input + "\n" + status
}

func (m Model) renderCurrentResult() string {
	if len(m.results) == 0 {
		return "No results yet. Enter a record ID below."
	}
	r := m.results[m.cursor]
	verdict := noStyle.Render("NO")
	if r.IsComplex {
		verdict = yesStyle.Render("YES")
	}
	title := fmt.Sprintf("Result %d/%d  %s  complex=%s  confidence=%.2f",
		m.cursor+1, len(m.results), r.RecordID, verdict, r.Confidence)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	if r.ReceptorChain != "" {
		b.WriteString(fmt.Sprintf("Receptor: chain %s (%s)\n", r.ReceptorChain, r.ReceptorType))
	}
	if r.CofactorChain != "" {
		b.WriteString(fmt.Sprintf("Cofactor: chain %s (%s)\n", r.CofactorChain, r.CofactorType))
	}
	if len(r.Reasons) > 0 {
		b.WriteString("\nReasons:\n")
		for _, reason := range r.Reasons {
			b.WriteString("  - ")
			b.WriteString(reason)
			b.WriteString("\n")
		}
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	yesStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	noStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
