// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/waxworks/stylus/internal/discogs"
)

const (
	defaultListWidth  = 60
	defaultListHeight = 16
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user picked a folder.
	ActionSelected
	// ActionStopped indicates the user cancelled the import.
	ActionStopped
)

// SelectionResult holds the result of a folder selection.
type SelectionResult struct {
	Action SelectionAction
	Folder *discogs.Folder
}

type folderItem struct {
	discogs.Folder
}

func (i folderItem) Title() string       { return i.Name }
func (i folderItem) FilterValue() string { return i.Name }
func (i folderItem) Description() string {
	return fmt.Sprintf("%d releases", i.Count)
}

type folderStyles struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	name     lipgloss.Style
	count    lipgloss.Style
}

func newFolderStyles() folderStyles {
	container := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237")).
		Bold(true)

	return folderStyles{
		normal:   container,
		selected: selected,
		name: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		count: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
	}
}

type folderDelegate struct {
	styles folderStyles
}

func newDelegate() folderDelegate {
	return folderDelegate{styles: newFolderStyles()}
}

func (d folderDelegate) Height() int                         { return 1 }
func (d folderDelegate) Spacing() int                        { return 0 }
func (d folderDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d folderDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	folder, ok := item.(folderItem)
	if !ok {
		return
	}

	line := fmt.Sprintf("%s  %s",
		d.styles.name.Render(folder.Name),
		d.styles.count.Render(fmt.Sprintf("(%d releases)", folder.Count)))

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(line))
}

type model struct {
	list     list.Model
	username string
	result   SelectionResult
}

func newModel(username string, items []folderItem) *model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	delegate := newDelegate()
	l := list.New(listItems, delegate, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:     l,
		username: username,
		result: SelectionResult{
			Action: ActionNone,
		},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(folderItem); ok {
				folder := selected.Folder
				m.result = SelectionResult{
					Action: ActionSelected,
					Folder: &folder,
				}
				return m, tea.Quit
			}
		case "ctrl+c", "q", "esc":
			m.result = SelectionResult{Action: ActionStopped}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(fmt.Sprintf("Collection folders for %s", m.username))
	listView := m.list.View()
	help := helpStyle.Render("Up/Down navigate | Enter select | q cancel")
	return lipgloss.JoinVertical(lipgloss.Left, header, listView, help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// SelectFolder presents an interactive picker over the user's collection
// folders. With one folder (or none beyond "All") the picker is skipped.
func SelectFolder(username string, folders []discogs.Folder) (SelectionResult, error) {
	if len(folders) == 0 {
		all := discogs.Folder{ID: discogs.AllFolder, Name: "All"}
		return SelectionResult{Action: ActionSelected, Folder: &all}, nil
	}
	if len(folders) == 1 {
		folder := folders[0]
		return SelectionResult{Action: ActionSelected, Folder: &folder}, nil
	}

	items := make([]folderItem, len(folders))
	for i, folder := range folders {
		items[i] = folderItem{Folder: folder}
	}
	m := newModel(username, items)
	finalModel, err := runProgram(m)
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
