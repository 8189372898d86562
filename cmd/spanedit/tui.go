package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/spanedit/editor"
	"github.com/iw2rmb/spanedit/internal/config"
	"github.com/iw2rmb/spanedit/span"
)

var quitKeys = key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))

type model struct {
	editor editor.Model
	status lipgloss.Style
	width  int
}

func newEditor(doc *span.Document, cfg config.Config, log logrus.FieldLogger) (editor.Model, error) {
	nav, err := navigation(cfg.Navigation)
	if err != nil {
		return editor.Model{}, err
	}
	return editor.New(editor.Config{
		Document:     doc,
		ShowBrackets: cfg.Editor.ShowBrackets,
		Style:        editor.DefaultStyle(),
		StyleForType: editor.TypeStyles(editorStyles(cfg.Styles)),
		KeyMap:       editor.DefaultKeyMap(),
		Navigation:   nav,
		OnChange: func(ev editor.ChangeEvent) {
			if !ev.HasChange {
				return
			}
			log.WithFields(logrus.Fields{
				"kind":    ev.Change.Kind.String(),
				"span":    ev.Change.Annotation.String(),
				"version": ev.Version,
			}).Debug("document changed")
		},
	})
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.status.Width(m.width).Render(m.statusLine())
}

func (m model) statusLine() string {
	doc := m.editor.Document()
	if a, ok := m.editor.Selected(); ok {
		return a.String() + "  " + doc.Text(a.Range())
	}
	return doc.Token(m.editor.Cursor())
}

func runTUI(doc *span.Document, cfg config.Config, log logrus.FieldLogger) error {
	ed, err := newEditor(doc, cfg, log)
	if err != nil {
		return err
	}
	m := model{
		editor: ed,
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
