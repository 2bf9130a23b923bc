package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/components/options"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/services"
)

// statusTimeout is how long copy and error messages stay in the status bar.
const statusTimeout = 3 * time.Second

// chrome is the number of rows used by the title, options and status bar.
const chrome = 4

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	editor    textarea.Model
	preview   viewport.Model
	help      help.Model
	options   *options.Panel
	statusBar *status.Bar

	// cfg is the active transform configuration.
	cfg domain.TransformConfig

	// theme is the active colour scheme.
	theme domain.Theme

	// result is the transform of the current editor contents.
	result domain.TransformResult

	// focus is the pane receiving unbound keys.
	focus messages.Pane

	// statusID identifies the current transient status message.
	statusID int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	defaults := domain.DefaultAppSettings()
	s := styles.ForTheme(defaults.UI.Theme)
	km := keymap.DefaultKeyMap()

	editor := textarea.New()
	editor.Placeholder = "Paste text here..."
	editor.CharLimit = 0
	editor.ShowLineNumbers = false
	editor.MaxHeight = 0
	editor.Focus()

	a := &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		editor:    editor,
		preview:   viewport.New(0, 0),
		help:      help.New(),
		options:   options.NewPanel(s, km, defaults.Transform),
		statusBar: status.NewBar(s, km),
		cfg:       defaults.Transform,
		theme:     defaults.UI.Theme,
		focus:     messages.PaneEditor,
	}
	a.recompute()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		a.loadSettings(),
		tea.SetWindowTitle("cleanpaste"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.SettingsLoaded:
		if msg.Err != nil {
			return a, a.showError(fmt.Errorf("loading settings: %w", msg.Err))
		}
		if msg.Settings != nil {
			a.cfg = msg.Settings.Transform
			a.setTheme(msg.Settings.UI.Theme)
			a.recompute()
		}
		return a, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			return a, a.showError(fmt.Errorf("saving settings: %w", msg.Err))
		}
		return a, nil

	case messages.Copied:
		if msg.Err != nil {
			return a, a.showError(fmt.Errorf("copying: %w", msg.Err))
		}
		return a, a.showStatus(status.StateCopied, fmt.Sprintf("Copied %d chars", msg.Chars))

	case messages.StatusExpired:
		if msg.ID == a.statusID {
			a.statusBar.Clear()
		}
		return a, nil
	}

	var cmd tea.Cmd
	if a.focus == messages.PaneEditor {
		a.editor, cmd = a.editor.Update(msg)
	} else {
		a.preview, cmd = a.preview.Update(msg)
	}
	return a, cmd
}

// handleKey dispatches bound keys and forwards the rest to the focused pane.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.layout()
		return a, nil

	case key.Matches(msg, a.keymap.ToggleZeroWidth):
		a.cfg.RemoveZeroWidth = !a.cfg.RemoveZeroWidth
		return a, a.configChanged()

	case key.Matches(msg, a.keymap.ToggleLineBreaks):
		a.cfg.FixLineBreaks = !a.cfg.FixLineBreaks
		return a, a.configChanged()

	case key.Matches(msg, a.keymap.ToggleEmoji):
		a.cfg.RemoveEmojis = !a.cfg.RemoveEmojis
		return a, a.configChanged()

	case key.Matches(msg, a.keymap.CycleCase):
		a.cfg.CaseMode = a.cfg.CaseMode.Next()
		return a, a.configChanged()

	case key.Matches(msg, a.keymap.ToggleWhitespace):
		a.cfg.CollapseWhitespace = !a.cfg.CollapseWhitespace
		return a, a.configChanged()

	case key.Matches(msg, a.keymap.ToggleStopWords):
		a.cfg.StripStopWords = !a.cfg.StripStopWords
		return a, a.configChanged()

	case key.Matches(msg, a.keymap.ToggleCode):
		a.cfg.CodeCompact = !a.cfg.CodeCompact
		return a, a.configChanged()

	case key.Matches(msg, a.keymap.ToggleTheme):
		a.setTheme(a.theme.Toggle())
		return a, a.saveTheme()

	case key.Matches(msg, a.keymap.Copy):
		return a, a.copyResult()

	case key.Matches(msg, a.keymap.Clear):
		a.editor.Reset()
		a.recompute()
		return a, nil

	case key.Matches(msg, a.keymap.SwitchPane):
		a.focus = a.focus.Next()
		if a.focus == messages.PaneEditor {
			return a, a.editor.Focus()
		}
		a.editor.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	if a.focus == messages.PaneEditor {
		before := a.editor.Value()
		a.editor, cmd = a.editor.Update(msg)
		if a.editor.Value() != before {
			a.recompute()
		}
		return a, cmd
	}
	a.preview, cmd = a.preview.Update(msg)
	return a, cmd
}

// recompute runs the pipeline on the editor contents and refreshes the preview.
func (a *App) recompute() {
	a.result = a.ports.Normaliser.Normalise(a.editor.Value(), a.cfg)
	a.preview.SetContent(a.result.Output)
	a.options.SetConfig(a.cfg)
	a.statusBar.SetResult(&a.result)
}

// configChanged applies a toggle and persists the new options.
func (a *App) configChanged() tea.Cmd {
	a.recompute()
	settings := a.ports.Settings
	if settings == nil {
		return nil
	}
	cfg := a.cfg
	return func() tea.Msg {
		return messages.SettingsSaved{Err: settings.SaveTransform(cfg)}
	}
}

func (a *App) setTheme(t domain.Theme) {
	if !t.IsValid() {
		t = domain.ThemeDark
	}
	a.theme = t
	a.styles = styles.ForTheme(t)
	a.options.SetStyles(a.styles)
	a.statusBar.SetStyles(a.styles)
}

func (a *App) saveTheme() tea.Cmd {
	settings := a.ports.Settings
	if settings == nil {
		return nil
	}
	theme := a.theme
	return func() tea.Msg {
		return messages.SettingsSaved{Err: settings.Set(services.KeyTheme, theme.String())}
	}
}

func (a *App) loadSettings() tea.Cmd {
	settings := a.ports.Settings
	if settings == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := settings.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

func (a *App) copyResult() tea.Cmd {
	actions := a.ports.ResultAction
	ctx := a.ctx
	result := a.result
	return func() tea.Msg {
		if actions == nil {
			return messages.Copied{Err: domain.ErrClipboardUnavailable}
		}
		if err := actions.CopyToClipboard(ctx, &result); err != nil {
			return messages.Copied{Err: err}
		}
		return messages.Copied{Chars: result.ResultLength}
	}
}

// showStatus sets a transient message and schedules its removal.
func (a *App) showStatus(state status.State, message string) tea.Cmd {
	a.statusID++
	id := a.statusID
	a.statusBar.SetState(state)
	a.statusBar.SetMessage(message)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return messages.StatusExpired{ID: id}
	})
}

func (a *App) showError(err error) tea.Cmd {
	a.err = err
	return a.showStatus(status.StateError, err.Error())
}

// layout sizes the panes to the terminal.
func (a *App) layout() {
	helpHeight := 0
	if a.help.ShowAll {
		helpHeight = lipgloss.Height(a.help.View(a.keymap))
	}

	frameW, frameH := a.styles.Pane.GetFrameSize()
	paneWidth := a.width/2 - frameW
	paneHeight := a.height - chrome - helpHeight - frameH
	if paneWidth < 1 {
		paneWidth = 1
	}
	if paneHeight < 1 {
		paneHeight = 1
	}

	a.editor.SetWidth(paneWidth)
	a.editor.SetHeight(paneHeight)
	a.preview.Width = paneWidth
	a.preview.Height = paneHeight
	a.options.SetWidth(a.width)
	a.statusBar.SetWidth(a.width)
	a.help.Width = a.width
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	editorPane, previewPane := a.styles.FocusedPane, a.styles.Pane
	if a.focus == messages.PanePreview {
		editorPane, previewPane = a.styles.Pane, a.styles.FocusedPane
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		editorPane.Render(a.editor.View()),
		previewPane.Render(a.preview.View()),
	)

	sections := []string{
		a.styles.Title.Render("cleanpaste") + " " + a.styles.Muted.Render("("+a.theme.String()+")"),
		a.options.View(),
		panes,
		a.statusBar.View(),
	}
	if a.help.ShowAll {
		sections = append(sections, a.styles.Help.Render(a.help.View(a.keymap)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}

// SetInput replaces the editor contents and recomputes the preview.
func (a *App) SetInput(text string) {
	a.editor.SetValue(text)
	a.recompute()
}

// Input returns the editor contents.
func (a *App) Input() string {
	return a.editor.Value()
}

// Result returns the transform of the current editor contents.
func (a *App) Result() domain.TransformResult {
	return a.result
}

// Config returns the active transform configuration.
func (a *App) Config() domain.TransformConfig {
	return a.cfg
}

// Theme returns the active colour scheme.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// Focus returns the pane receiving unbound keys.
func (a *App) Focus() messages.Pane {
	return a.focus
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// StatusBar returns the status bar component.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}
