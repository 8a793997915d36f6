package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/topica/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/topica/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/topica/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/topica/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/topica/internal/core/domain"
)

// Bounds of the words-per-topic control.
const (
	MinTopWords = 1
	MaxTopWords = 20
)

// previewLength is the number of cleaned characters shown per document.
const previewLength = 200

// Corpus is the input the TUI models. Documents are ingested by the caller.
type Corpus struct {
	Documents []domain.Document
	Stopwords domain.StopwordSet
	Estimator domain.Estimator
	Model     domain.ModelOptions
	TopWords  int
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	status *status.Bar

	corpus Corpus

	// numTopics, topWords and seed are the current run parameters.
	numTopics int
	topWords  int
	seed      uint64

	// seq identifies the latest requested run; older results are dropped.
	seq int

	// result is the last successful run.
	result *domain.RunResult

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The topic count is clamped to the range the UI offers.
func NewApp(ports *Ports, corpus Corpus) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if len(corpus.Documents) == 0 {
		return nil, fmt.Errorf("creating app: %w", ErrNoDocuments)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	topWords := corpus.TopWords
	if topWords == 0 {
		topWords = domain.DefaultTopWords
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		status:      status.NewBar(s, km),
		corpus:      corpus,
		numTopics:   clamp(corpus.Model.NumTopics, domain.MinUITopics, domain.MaxUITopics),
		topWords:    clamp(topWords, MinTopWords, MaxTopWords),
		seed:        corpus.Model.Seed,
		currentView: messages.ViewTopics,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It starts the first fit.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("topica"),
		a.run(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.RunCompleted:
		if msg.Seq != a.seq {
			return a, nil
		}
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.result = msg.Result
		a.status.SetState(a.readyState())
		a.status.SetSummary(fmt.Sprintf("%d documents, %d terms, %s in %s",
			len(msg.Result.Documents), vocabularySize(msg.Result), msg.Result.Estimator,
			msg.Result.Elapsed.Round(time.Millisecond)))
		return a, nil

	case messages.ViewChanged:
		a.setView(msg.View)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Back):
		a.setView(messages.ViewTopics)
		return a, nil

	case keymap.Matches(k, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.setView(messages.ViewTopics)
		} else {
			a.setView(messages.ViewHelp)
		}
		return a, nil

	case keymap.Matches(k, a.keymap.Texts):
		if a.currentView == messages.ViewTexts {
			a.setView(messages.ViewTopics)
		} else {
			a.setView(messages.ViewTexts)
		}
		return a, nil

	case keymap.Matches(k, a.keymap.FewerTopics):
		return a, a.adjust(&a.numTopics, -1, domain.MinUITopics, domain.MaxUITopics)

	case keymap.Matches(k, a.keymap.MoreTopics):
		return a, a.adjust(&a.numTopics, 1, domain.MinUITopics, domain.MaxUITopics)

	case keymap.Matches(k, a.keymap.FewerWords):
		return a, a.adjust(&a.topWords, -1, MinTopWords, MaxTopWords)

	case keymap.Matches(k, a.keymap.MoreWords):
		return a, a.adjust(&a.topWords, 1, MinTopWords, MaxTopWords)

	case keymap.Matches(k, a.keymap.Reseed):
		a.seed++
		return a, a.run()
	}

	return a, nil
}

// adjust moves *v by delta within [lo, hi] and reruns if it changed.
func (a *App) adjust(v *int, delta, lo, hi int) tea.Cmd {
	next := clamp(*v+delta, lo, hi)
	if next == *v {
		return nil
	}
	*v = next
	return a.run()
}

// run starts a fit with the current parameters. Every run is a fresh
// pipeline invocation; the documents are never modified.
func (a *App) run() tea.Cmd {
	a.seq++
	a.status.SetState(status.StateRunning)

	seq := a.seq
	ctx := a.ctx
	topics := a.ports.Topics

	opts := a.corpus.Model
	opts.NumTopics = a.numTopics
	opts.Seed = a.seed
	req := domain.RunRequest{
		Documents: a.corpus.Documents,
		Stopwords: a.corpus.Stopwords,
		Estimator: a.corpus.Estimator,
		Model:     opts,
		TopWords:  a.topWords,
	}

	return func() tea.Msg {
		result, err := topics.Run(ctx, req)
		return messages.RunCompleted{Seq: seq, Result: result, Err: err}
	}
}

func (a *App) setView(v messages.ViewType) {
	a.currentView = v
	if a.status.State() == status.StateError || a.status.State() == status.StateRunning {
		return
	}
	a.status.SetState(a.readyState())
}

func (a *App) readyState() status.State {
	if a.currentView == messages.ViewHelp {
		return status.StateHelp
	}
	return status.StateReady
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetState(status.StateError)
	a.status.SetMessage(err.Error())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewTexts:
		body = a.viewTexts()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.viewTopics()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewHeader(),
		"",
		body,
		"",
		a.status.View(),
	)
}

func (a *App) viewHeader() string {
	estimator := a.corpus.Estimator
	if estimator == "" {
		estimator = domain.EstimatorVariational
	}
	params := fmt.Sprintf("topics %d  words %d  seed %d  %s",
		a.numTopics, a.topWords, a.seed, estimator)
	return a.styles.Title.Render("topica") + "  " + a.styles.Parameter.Render(params)
}

func (a *App) viewTopics() string {
	if a.result == nil {
		if a.err != nil {
			return a.styles.Error.Render(a.err.Error())
		}
		return a.styles.Muted.Render("Fitting...")
	}

	report := &a.result.Report
	var sb strings.Builder
	for _, t := range report.Topics {
		sb.WriteString(a.styles.TopicLabel.Render(t.Label + ":"))
		sb.WriteString(" ")
		sb.WriteString(a.styles.TopicWords.Render(strings.Join(t.Words, ", ")))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(a.styles.Subtitle.Render("Average topic distribution"))
	sb.WriteString("\n")

	chart, err := a.styles.Chart(a.barWidth()).String(report)
	if err != nil {
		sb.WriteString(a.styles.Error.Render(err.Error()))
	} else {
		sb.WriteString(strings.TrimSuffix(chart, "\n"))
	}
	return sb.String()
}

func (a *App) viewTexts() string {
	if a.result == nil {
		return a.styles.Muted.Render("Fitting...")
	}

	var sb strings.Builder
	sb.WriteString(a.styles.Subtitle.Render("Cleaned documents"))
	for i := range a.result.Documents {
		doc := &a.result.Documents[i]
		title := doc.Title
		if title == "" {
			title = fmt.Sprintf("document %d", i+1)
		}
		sb.WriteString("\n")
		sb.WriteString(a.styles.TopicLabel.Render(title))
		sb.WriteString("\n  ")
		sb.WriteString(a.styles.Normal.Render(doc.Preview(previewLength)))
	}
	return sb.String()
}

func (a *App) viewHelp() string {
	var sb strings.Builder
	sb.WriteString(a.styles.Subtitle.Render("Keys"))
	for _, column := range a.keymap.FullHelp() {
		for _, b := range column {
			h := b.Help()
			sb.WriteString(fmt.Sprintf("\n  %-8s %s", h.Key, h.Desc))
		}
	}
	return sb.String()
}

// barWidth leaves room for labels and percentages.
func (a *App) barWidth() int {
	const reserved = 20
	w := a.width - reserved
	if w < 10 {
		w = 10
	}
	if w > 60 {
		w = 60
	}
	return w
}

// NumTopics returns the current topic count.
func (a *App) NumTopics() int {
	return a.numTopics
}

// TopWords returns the current words-per-topic count.
func (a *App) TopWords() int {
	return a.topWords
}

// Seed returns the current seed.
func (a *App) Seed() uint64 {
	return a.seed
}

// Result returns the last successful run.
func (a *App) Result() *domain.RunResult {
	return a.result
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.status.SetWidth(width)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

func vocabularySize(r *domain.RunResult) int {
	if r.Vocabulary == nil {
		return 0
	}
	return r.Vocabulary.Size()
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
