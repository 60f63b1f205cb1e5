package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"memoflow/internal/adapters/editor"
	"memoflow/internal/adapters/tui/views"
	"memoflow/internal/config"
	"memoflow/internal/domain"
	"memoflow/internal/flow"
	"memoflow/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewEdit
	ViewDelete
	ViewHelp
)

// App is the main TUI application model. It owns the marquee scheduler and
// drives it from a self-rescheduling frame tick inside the Update loop.
type App struct {
	repo   ports.NoteRepository
	editor *editor.Opener
	log    *logrus.Entry

	flow          *flow.Scheduler
	marquee       *Marquee
	frameInterval time.Duration

	state ViewState
	board *views.BoardModel
	edit  *views.EditModel
	del   *views.DeleteModel
	help  *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. clip and ed may be nil.
func NewApp(repo ports.NoteRepository, clip ports.Clipboard, ed *editor.Opener, cfg config.MarqueeConfig, log *logrus.Entry) *App {
	a := newApp(repo, clip, cfg, log, flow.NewRandom())
	a.editor = ed
	return a
}

func newApp(repo ports.NoteRepository, clip ports.Clipboard, cfg config.MarqueeConfig, log *logrus.Entry, rnd flow.Random) *App {
	a := &App{
		repo:  repo,
		log:   log,
		state: ViewBoard,
		board: views.NewBoardModel(clip),
		edit:  views.NewEditModel(repo),
		del:   views.NewDeleteModel(repo),
		help:  views.NewHelpModel(),
	}
	if cfg.Enabled {
		a.marquee = NewMarquee(cfg.Lanes)
		a.frameInterval = cfg.FrameInterval()
		pool := flow.NewPool(rnd, cfg.Placeholder)
		a.flow = flow.NewScheduler(cfg.FlowConfig(), pool, a.marquee, rnd, log.WithField("component", "flow"))
	}
	return a
}

// frameMsg carries the wall-clock time of one marquee frame
type frameMsg time.Time

type notesLoadedMsg struct {
	notes []domain.Note
}

type loadErrMsg struct {
	err error
}

type editorFinishedMsg struct {
	text string
	err  error
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.loadNotes
}

func (a *App) loadNotes() tea.Msg {
	notes, err := a.repo.List(context.Background())
	if err != nil {
		return loadErrMsg{err}
	}
	return notesLoadedMsg{notes}
}

func (a *App) nextFrame() tea.Cmd {
	return tea.Tick(a.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// marqueeHeight returns the rows taken by the marquee strip and its spacer
func (a *App) marqueeHeight() int {
	if a.marquee == nil {
		return 0
	}
	return a.marquee.Lanes() + 1
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.marquee != nil {
			a.marquee.SetWidth(msg.Width)
		}
		h := max(msg.Height-a.marqueeHeight(), 0)
		a.board.SetSize(msg.Width, h)
		a.edit.SetSize(msg.Width, h)
		a.del.SetSize(msg.Width, h)
		a.help.SetSize(msg.Width, h)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case frameMsg:
		now := time.Time(msg)
		a.marquee.SetNow(now)
		a.flow.Tick(now)
		return a, a.nextFrame()

	case notesLoadedMsg:
		a.board.SetNotes(msg.notes)
		return a, a.syncFlow(msg.notes)

	case loadErrMsg:
		a.log.WithError(msg.err).Error("load notes")
		a.board.SetMessage(fmt.Sprintf("Load failed: %v", msg.err), true)
		return a, nil

	// View switching messages
	case views.SwitchToEditMsg:
		a.state = ViewEdit
		a.edit.SetNote(msg.Note)
		return a, a.edit.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		note := msg.Note
		a.del.SetTarget(&note)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		return a, nil

	case views.NoteSavedMsg:
		a.state = ViewBoard
		a.board.SetMessage(msg.Message, false)
		return a, a.loadNotes

	case views.EditErrMsg:
		a.edit.SetMessage(msg.Err.Error(), true)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Text)

	case editorFinishedMsg:
		if msg.err != nil {
			a.edit.SetMessage(msg.err.Error(), true)
			return a, nil
		}
		a.edit.SetContent(msg.text)
		return a, nil

	case views.DeleteErrMsg:
		a.del.SetMessage(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewDelete:
		_, cmd = a.del.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// syncFlow hands a freshly loaded note set to the marquee: the first load
// starts the scheduler and the frame driver, later loads refresh the pool.
func (a *App) syncFlow(notes []domain.Note) tea.Cmd {
	if a.flow == nil {
		return nil
	}
	if a.flow.Running() {
		a.flow.RefreshPool(notes)
		return nil
	}
	if err := a.flow.Start(notes); err != nil {
		a.log.WithError(err).Warn("start marquee")
		return nil
	}
	return a.nextFrame()
}

func (a *App) openEditor(text string) tea.Cmd {
	if a.editor == nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: errors.New("external editor disabled")}
		}
	}

	cmd, session, err := a.editor.Edit(text)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		edited, readErr := session.Result()
		if err != nil {
			return editorFinishedMsg{err: err}
		}
		return editorFinishedMsg{text: edited, err: readErr}
	})
}

// View renders the marquee strip above the current view
func (a *App) View() string {
	var body string
	switch a.state {
	case ViewEdit:
		body = a.edit.View()
	case ViewDelete:
		body = a.del.View()
	case ViewHelp:
		body = a.help.View()
	default:
		body = a.board.View()
	}

	if a.marquee == nil {
		return body
	}
	return a.marquee.View() + "\n\n" + body
}
