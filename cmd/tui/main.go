package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/pswsm/fasta-cli-tools/internal/config"
	"github.com/pswsm/fasta-cli-tools/internal/fasta"
	"github.com/pswsm/fasta-cli-tools/internal/logging"
	"github.com/pswsm/fasta-cli-tools/internal/sequence"
	"github.com/pswsm/fasta-cli-tools/internal/stats"
	"github.com/pswsm/fasta-cli-tools/internal/translator"
)

// Colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
	errorColor     = lipgloss.Color("#EF4444") // Red
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	rnaStyle   = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	dnaStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// entry is one FASTA record together with its parse result.
type entry struct {
	header string
	seq    sequence.Sequence
	err    error
}

func newEntries(records []fasta.Record) []entry {
	out := make([]entry, len(records))
	for i, r := range records {
		seq, err := r.ToSequence()
		out[i] = entry{header: r.Header, seq: seq, err: err}
	}
	return out
}

type listItem struct {
	entry entry
}

func (i listItem) FilterValue() string { return i.entry.header }

func (i listItem) Title() string {
	if i.entry.header != "" {
		return i.entry.header
	}
	return "(no header)"
}

func (i listItem) Description() string {
	if i.entry.err != nil {
		return errorStyle.Render("invalid")
	}
	style := dnaStyle
	if i.entry.seq.Alphabet() == sequence.RNA {
		style = rnaStyle
	}
	return fmt.Sprintf("%s    %d bases", style.Render(i.entry.seq.Alphabet().String()), i.entry.seq.Len())
}

type mode int

const (
	modeNucleotides mode = iota
	modeReverseComplement
	modeTranslated
	modeComposition
	modeCount
)

func (m mode) String() string {
	switch m {
	case modeNucleotides:
		return "Nucleotides"
	case modeReverseComplement:
		return "Reverse complement"
	case modeTranslated:
		return "Translated"
	case modeComposition:
		return "Composition"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	entries       []entry
	currentMode   mode
	uppercase     bool
	showHelp      bool
	width         int
	height        int
	selectedIndex int
}

func initialModel(entries []entry, uppercase bool) model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = listItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "FASTA records"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:        l,
		entries:     entries,
		currentMode: modeNucleotides,
		uppercase:   uppercase,
	}
}

func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % modeCount
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// left panel takes 1/3 of the width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.showHelp = !m.showHelp
			return m, nil
		case "tab":
			return m.cycleMode(), nil
		case "u":
			m.uppercase = !m.uppercase
			return m, nil
		case "1", "2", "3", "4":
			m.currentMode = mode(msg.String()[0] - '1')
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelpModal()
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderLeftPanel(), m.renderRightPanel())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m model) renderLeftPanel() string {
	return containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	panel := containerStyle.Width(m.width*2/3 - 2).Height(m.height - 4)
	if len(m.entries) == 0 {
		return panel.Render("No records available")
	}
	selected, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return panel.Render("No record selected")
	}
	lines := m.buildRightLines(selected.entry)
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// buildRightLines renders the selected record in the current mode.
func (m model) buildRightLines(e entry) []string {
	header := titleStyle.Render(e.header)
	if e.err != nil {
		return []string{header, "", errorStyle.Render(e.err.Error())}
	}
	seq := e.seq
	if m.uppercase {
		seq = seq.ToUppercase()
	}

	var content string
	switch m.currentMode {
	case modeNucleotides:
		content = m.formatSequence(seq.Display(), "Nucleotides")
	case modeReverseComplement:
		content = m.formatSequence(seq.ReverseComplement().Display(), "Reverse complement")
	case modeTranslated:
		content = m.formatTranslation(seq)
	case modeComposition:
		var sb strings.Builder
		for _, f := range stats.Analyze(seq).Fields() {
			sb.WriteString(fmt.Sprintf("%-12s %s\n", f.Key+":", f.Value))
		}
		content = sb.String()
	}
	meta := mutedStyle.Render(fmt.Sprintf("Alphabet: %s    Bases: %d", seq.Alphabet(), seq.Len()))
	return []string{header, meta, "", content}
}

func (m model) formatTranslation(seq sequence.Sequence) string {
	if seq.Alphabet() == sequence.DNA {
		seq = seq.Transcribe()
	}
	p, err := translator.Translate(seq)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	var parts []string
	for _, s := range translator.SegmentOnStop(p) {
		if m.uppercase {
			parts = append(parts, s.Upper())
		} else {
			parts = append(parts, s.String())
		}
	}
	return m.formatSequence(strings.Join(parts, "\n"), "Translated (transcribed if DNA)")
}

func (m model) formatSequence(text, title string) string {
	if text == "" {
		return mutedStyle.Render(fmt.Sprintf("No %s available", strings.ToLower(title)))
	}
	titleStr := lipgloss.NewStyle().Foreground(accentColor).Bold(true).Render(title + ":")
	width := m.width*2/3 - 6
	if width < 10 {
		width = 10
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStr, "", sequenceStyle.Width(width).Render(text))
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("%d/%d records", m.selectedIndex+1, len(m.entries))
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode)
	rightInfo := "Press 'h' for help, 'q' to quit"

	spacing := m.width - len(leftInfo) - len(centerInfo) - len(rightInfo) - 6
	var statusContent string
	if spacing > 0 {
		left := spacing / 2
		statusContent = leftInfo + strings.Repeat(" ", left) + centerInfo + strings.Repeat(" ", spacing-left) + rightInfo
	} else {
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}
	return statusBarStyle.Width(m.width).Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `FASTA Browser - Help

Navigation:
  up/down, j/k  Navigate records
  /             Filter by header

View Modes:
  1             Nucleotides
  2             Reverse complement
  3             Translated
  4             Composition
  tab           Next mode
  u             Toggle uppercase

General:
  h             Toggle this help
  q, Ctrl+C     Quit

Current Mode: ` + m.currentMode.String() + `
Total Records: ` + fmt.Sprintf("%d", len(m.entries)) + `
`
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Render(helpContent)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func main() {
	configFlag := flag.String("config", "", "path to config file (optional)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tui [-config FILE] FASTA")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// the alt screen owns stderr while running, so only a log file is useful
	logger, closeFn := logging.New(logging.Options{LogFile: cfg.LogFile, Level: cfg.LogLevel})
	defer closeFn()
	if cfg.LogFile == "" {
		logger.SetLevel(log.FatalLevel)
	}

	records, err := fasta.ReadRecords(flag.Arg(0))
	if err != nil {
		logger.Error("failed to read fasta", "path", flag.Arg(0), "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("loaded records", "path", flag.Arg(0), "records", len(records))

	p := tea.NewProgram(initialModel(newEntries(records), cfg.Uppercase), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
