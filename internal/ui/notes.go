package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ramanasai/glassnotes/internal/capture"
	"github.com/ramanasai/glassnotes/internal/dispatch"
	"github.com/ramanasai/glassnotes/internal/gesture"
	"github.com/ramanasai/glassnotes/internal/notes"
	"github.com/ramanasai/glassnotes/internal/notify"
	"github.com/ramanasai/glassnotes/internal/pager"
	"github.com/ramanasai/glassnotes/internal/version"
)

type mode int

const (
	modeBrowse mode = iota
	modePrompt
	modeMenu
)

var errPromptCancelled = errors.New("capture cancelled")

// NotesDeps wires the pager to storage and input.
type NotesDeps struct {
	Store  *notes.Store
	Worker *notes.Worker
	// Recognizer runs for every capture. Nil means a typed prompt stands in
	// for speech.
	Recognizer capture.Recognizer
	Thresholds gesture.Thresholds
	Notifier   *notify.Notifier
	// Theme defaults to DefaultTheme.
	Theme *Theme
	Log   zerolog.Logger
}

// ---------- messages & commands ----------

type snapshotMsg struct{ snap notes.Snapshot }
type feedClosedMsg struct{}
type resultMsg struct{ res notes.Result }
type captureDoneMsg struct{ res capture.Result }

func waitForSnapshot(feed <-chan notes.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-feed
		if !ok {
			return feedClosedMsg{}
		}
		return snapshotMsg{snap: snap}
	}
}

func waitForResult(results <-chan notes.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return nil
		}
		return resultMsg{res: res}
	}
}

func waitForCapture(f *capture.Future) tea.Cmd {
	return func() tea.Msg { return captureDoneMsg{res: f.Wait()} }
}

// gestureQueue collects what the classifier recognized during one Update.
type gestureQueue struct{ items []gesture.Gesture }

func (q *gestureQueue) OnGesture(g gesture.Gesture) bool {
	q.items = append(q.items, g)
	return true
}

func (q *gestureQueue) drain() []gesture.Gesture {
	out := q.items
	q.items = nil
	return out
}

// NotesModel is the notes pager screen.
type NotesModel struct {
	ctx        context.Context
	store      *notes.Store
	ctrl       *pager.Controller
	disp       *dispatch.Dispatcher
	feed       <-chan notes.Snapshot
	unsub      func()
	results    <-chan notes.Result
	recognizer capture.Recognizer
	notifier   *notify.Notifier
	log        zerolog.Logger

	input      *gesture.TerminalInput
	classifier *gesture.Classifier
	detected   *gestureQueue

	mode     mode
	prompt   textinput.Model
	promptTo capture.Request
	bar      CommandBar
	help     help.Model
	theme    Theme
	md       *glamour.TermRenderer

	width, height int
	status        string
	tone          tone
	quitting      bool
}

func NewNotesModel(ctx context.Context, deps NotesDeps) NotesModel {
	ctrl := pager.NewController(pager.DefaultOptions())
	feed, unsub := deps.Store.Subscribe()

	q := &gestureQueue{}
	pi := textinput.New()
	pi.Placeholder = "speak now (type, enter to finish, esc to cancel)"
	pi.CharLimit = 1000
	pi.Width = 60

	theme := DefaultTheme
	if deps.Theme != nil {
		theme = *deps.Theme
	}

	cmds := make([]string, 0, len(dispatch.Commands))
	for _, c := range dispatch.Commands {
		cmds = append(cmds, string(c))
	}

	m := NotesModel{
		ctx:        ctx,
		store:      deps.Store,
		ctrl:       ctrl,
		disp:       dispatch.New(ctrl, deps.Worker, deps.Log),
		feed:       feed,
		unsub:      unsub,
		results:    deps.Worker.Results(),
		recognizer: deps.Recognizer,
		notifier:   deps.Notifier,
		log:        deps.Log,
		input:      gesture.NewTerminalInput(),
		classifier: gesture.NewClassifier(deps.Thresholds, q),
		detected:   q,
		prompt:     pi,
		bar:        NewCommandBar(func() []string { return cmds }, len(cmds)),
		help:       help.New(),
		theme:      theme,
		width:      80,
		height:     24,
	}
	m.md = newMarkdown(m.width)
	ctrl.Navigator().OnTransition(func(from, to int) {
		deps.Log.Debug().Int("from", from).Int("to", to).Msg("page transition")
	})
	return m
}

func newMarkdown(width int) *glamour.TermRenderer {
	wrap := width - 12
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrap))
	if err != nil {
		return nil
	}
	return r
}

// Close unsubscribes from the store.
func (m NotesModel) Close() {
	if m.unsub != nil {
		m.unsub()
	}
}

// Controller exposes the page sequence, mostly for tests.
func (m NotesModel) Controller() *pager.Controller { return m.ctrl }

func (m NotesModel) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.feed), waitForResult(m.results), m.reloadCmd())
}

func (m NotesModel) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.store.Reload(m.ctx); err != nil {
			m.log.Error().Err(err).Msg("initial load")
		}
		return nil
	}
}

func (m NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.md = newMarkdown(m.width)
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.ctrl.Apply(msg.snap)
		m.log.Debug().Uint64("seq", msg.snap.Seq).Str("event", string(msg.snap.Event.Type)).Int("notes", len(msg.snap.Notes)).Msg("notes changed")
		return m, waitForSnapshot(m.feed)

	case feedClosedMsg:
		return m, nil

	case resultMsg:
		m.noteResult(msg.res)
		return m, waitForResult(m.results)

	case captureDoneMsg:
		return m.finishCapture(msg.res)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modePrompt:
			return m.updatePrompt(msg)
		case modeMenu:
			return m.updateMenu(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m NotesModel) updateBrowse(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.Tap):
		return m.gesture(gesture.Tap)
	case key.Matches(k, keys.Forward):
		return m.gesture(gesture.SwipeForward)
	case key.Matches(k, keys.Backward):
		return m.gesture(gesture.SwipeBackward)
	case key.Matches(k, keys.Down), key.Matches(k, keys.Quit):
		return m.gesture(gesture.SwipeDown)
	case key.Matches(k, keys.Menu):
		m.mode = modeMenu
		return m, m.bar.Open()
	case key.Matches(k, keys.Add):
		return m.command(dispatch.CommandAdd)
	case key.Matches(k, keys.Edit):
		return m.command(dispatch.CommandEdit)
	case key.Matches(k, keys.Delete):
		return m.command(dispatch.CommandDelete)
	case key.Matches(k, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m NotesModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeBrowse {
		return m, nil
	}
	for _, s := range m.input.Samples(msg) {
		m.classifier.OnSample(s)
	}
	var cmds []tea.Cmd
	var model tea.Model = m
	for _, g := range m.detected.drain() {
		var cmd tea.Cmd
		model, cmd = model.(NotesModel).gesture(g)
		cmds = append(cmds, cmd)
	}
	return model, tea.Batch(cmds...)
}

func (m NotesModel) gesture(g gesture.Gesture) (tea.Model, tea.Cmd) {
	m.log.Debug().Str("gesture", g.String()).Msg("gesture")
	return m.outcome(m.disp.OnGesture(g))
}

func (m NotesModel) command(c dispatch.Command) (tea.Model, tea.Cmd) {
	m.log.Debug().Str("command", string(c)).Msg("voice command")
	return m.outcome(m.disp.OnCommand(c))
}

func (m NotesModel) outcome(out dispatch.Outcome) (tea.Model, tea.Cmd) {
	if out.Quit {
		m.quitting = true
		m.disp.Tracker().Cancel()
		return m, tea.Quit
	}
	if out.Capture != nil {
		return m.startCapture(*out.Capture)
	}
	return m, nil
}

func (m NotesModel) startCapture(req capture.Request) (tea.Model, tea.Cmd) {
	if m.recognizer == nil {
		m.mode = modePrompt
		m.promptTo = req
		m.prompt.SetValue("")
		if req.Purpose == capture.PurposeEdit {
			if i := m.ctrl.IndexOfNote(req.NoteID); i >= 0 {
				if p, ok := m.ctrl.At(i); ok {
					m.prompt.SetValue(p.Note.Body)
				}
			}
		}
		return m, m.prompt.Focus()
	}
	m.setStatus(toneHint, "Listening...")
	f := m.disp.Tracker().Start(m.ctx, m.recognizer, req)
	return m, waitForCapture(f)
}

func (m NotesModel) updatePrompt(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.Type {
	case tea.KeyEnter:
		res := capture.Result{Token: m.promptTo.Token, Text: m.prompt.Value()}
		m.closePrompt()
		return m.finishCapture(res)
	case tea.KeyEsc:
		res := capture.Result{Token: m.promptTo.Token, Err: errPromptCancelled}
		m.closePrompt()
		return m.finishCapture(res)
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(k)
	return m, cmd
}

func (m *NotesModel) closePrompt() {
	m.prompt.Blur()
	m.mode = modeBrowse
}

func (m NotesModel) finishCapture(res capture.Result) (tea.Model, tea.Cmd) {
	out := m.disp.OnCaptureResult(res)
	if out.Stale {
		return m, nil
	}
	switch {
	case out.Handled:
		m.setStatus(toneHint, "Saving...")
	case errors.Is(res.Err, errPromptCancelled):
		m.setStatus(toneHint, "Cancelled")
	case res.Err != nil:
		m.setStatus(toneError, "Voice recognition failed")
	case strings.TrimSpace(res.Text) == "":
		m.setStatus(toneHint, "Nothing was recognized")
	}
	return m, nil
}

func (m NotesModel) updateMenu(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.Type {
	case tea.KeyEsc:
		m.bar.Close()
		m.mode = modeBrowse
		return m, nil
	case tea.KeyEnter:
		said := m.bar.Value()
		m.bar.Close()
		m.mode = modeBrowse
		if said == "" {
			return m, nil
		}
		c, ok := dispatch.ParseCommand(said)
		if !ok {
			m.setStatus(toneError, fmt.Sprintf("Unknown command %q", said))
			return m, nil
		}
		return m.command(c)
	}
	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(k)
	return m, cmd
}

func (m *NotesModel) noteResult(res notes.Result) {
	if res.Err != nil {
		m.setStatus(toneError, "Could not save: "+res.Err.Error())
		return
	}
	var err error
	switch res.Op.Kind {
	case notes.OpInsert:
		m.setStatus(toneSuccess, "Note added")
		err = m.notifier.NoteSaved(res.Op.Title, true)
	case notes.OpUpdate:
		m.setStatus(toneSuccess, "Note updated")
		err = m.notifier.NoteSaved(res.Op.Title, false)
	case notes.OpDelete:
		m.setStatus(toneSuccess, "Note deleted")
		err = m.notifier.NoteDeleted(res.Op.ID)
	}
	if err != nil {
		m.log.Warn().Err(err).Msg("desktop notification")
	}
}

func (m *NotesModel) setStatus(t tone, s string) {
	m.tone = t
	m.status = s
}

// ---------- view ----------

func (m NotesModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Glass Notes"))
	b.WriteString("  ")
	b.WriteString(m.theme.Label.Render(m.position()))
	b.WriteString("\n\n")
	b.WriteString(m.renderCard())
	b.WriteString("\n")
	b.WriteString(m.indicator())
	b.WriteString("\n\n")

	switch m.mode {
	case modePrompt:
		verb := "New note"
		if m.promptTo.Purpose == capture.PurposeEdit {
			verb = "Edit note"
		}
		b.WriteString(m.theme.Label.Render(verb))
		b.WriteString("\n")
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	case modeMenu:
		b.WriteString(m.bar.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.theme.status(m.tone, m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	b.WriteString("  ")
	b.WriteString(m.theme.Label.Render(version.GetShortVersion()))
	return b.String()
}

func (m NotesModel) position() string {
	if m.ctrl.Len() == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d/%d", m.ctrl.Navigator().Current()+1, m.ctrl.Len())
}

func (m NotesModel) cardWidth() int {
	w := m.width - 4
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m NotesModel) renderCard() string {
	page, ok := m.ctrl.Current()
	if !ok {
		return m.theme.Card.Width(m.cardWidth()).Render(m.theme.Hint.Render("Loading..."))
	}
	var body string
	switch page.Kind {
	case pager.KindOption:
		body = lipgloss.JoinVertical(lipgloss.Center,
			m.theme.Title.Render(page.Option.Icon),
			"",
			m.theme.Value.Render(page.Option.Label),
			"",
			m.theme.Hint.Render("tap to start"),
		)
	case pager.KindNote:
		text := page.Note.Body
		if m.md != nil {
			if out, err := m.md.Render(text); err == nil {
				text = strings.Trim(out, "\n")
			}
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			text,
			"",
			m.theme.Label.Render(page.Note.CreatedAt),
		)
	}
	return m.theme.Card.Width(m.cardWidth()).Render(body)
}

// indicator draws one dot per page, the current one highlighted.
func (m NotesModel) indicator() string {
	n := m.ctrl.Len()
	if n <= 1 {
		return ""
	}
	const maxDots = 20
	cur := m.ctrl.Navigator().Current()
	start := 0
	if n > maxDots {
		start = cur - maxDots/2
		if start < 0 {
			start = 0
		}
		if start > n-maxDots {
			start = n - maxDots
		}
	}
	var dots []string
	for i := start; i < n && i < start+maxDots; i++ {
		if i == cur {
			dots = append(dots, m.theme.DotActive.Render("●"))
		} else {
			dots = append(dots, m.theme.Dot.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}
