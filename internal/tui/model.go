package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-list-sync/internal/service"
	"github.com/MKhiriev/go-list-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// listModel is the only screen of the client: the synchronized list with an
// edit form on top of it.
//
// The model never calls the controller from Update. Every controller call
// runs inside a tea.Cmd, because the controller publishes snapshots to the
// program from its dispatcher goroutine.
type listModel struct {
	ctx        context.Context
	controller service.ListController
	buildInfo  models.AppBuildInfo

	snapshot models.ListSnapshot
	cursor   int
	spinner  spinner.Model

	form          *formEditModel
	status        string
	errMsg        string
	showBuildInfo bool
}

func newListModel(ctx context.Context, controller service.ListController, buildInfo models.AppBuildInfo) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return listModel{
		ctx:        ctx,
		controller: controller,
		buildInfo:  buildInfo,
		snapshot:   controller.Snapshot(),
		spinner:    s,
	}
}

func (m listModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		wasLoading := m.snapshot.Status.IsLoading
		m.applySnapshot(msg.snapshot)
		if !wasLoading && m.snapshot.Status.IsLoading {
			return m, m.spinner.Tick
		}
		return m, nil
	case spinner.TickMsg:
		if !m.snapshot.Status.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case opDoneMsg:
		return m.handleOpDone(msg)
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		return m.withStatus("Скопировано")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
			return m, m.cmdSelect(m.currentID())
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.snapshot.Records)-1 {
			m.cursor++
			return m, m.cmdSelect(m.currentID())
		}
	case key.Matches(keyMsg, keys.sync):
		m.errMsg = ""
		return m, m.cmdSync()
	case key.Matches(keyMsg, keys.reload):
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.edit, keys.enter):
		record, ok := m.current()
		if !ok {
			return m.withStatus("Нет записей")
		}
		form := newFormEditModel(record)
		m.form = &form
		m.errMsg = ""
	case key.Matches(keyMsg, keys.copy):
		record, ok := m.current()
		if !ok {
			return m.withStatus("Нечего копировать")
		}
		return m, cmdCopy(record.Model().Name)
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m listModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form = nil
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			setters, err := m.form.changes()
			if err != nil {
				m.form.err = err.Error()
				return m, nil
			}
			id := m.form.id
			m.form = nil
			if len(setters) == 0 {
				return m.withStatus("Изменений нет")
			}
			return m, m.cmdEdit(id, setters)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m listModel) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = operationErrorText(msg.op, msg.err)
		return m, nil
	}

	switch msg.op {
	case opLoad:
		return m.withStatus("Список обновлён")
	case opSync:
		return m.withStatus("Синхронизация завершена")
	case opEdit:
		return m.withStatus("Запись изменена")
	}

	return m, nil
}

// applySnapshot takes the new collection and keeps the cursor on the
// selected record when there is one.
func (m *listModel) applySnapshot(s models.ListSnapshot) {
	m.snapshot = s

	if sel := s.Status.Selected; sel != nil {
		for i, r := range s.Records {
			if r.ID() == *sel {
				m.cursor = i
				return
			}
		}
	}

	if m.cursor >= len(s.Records) {
		m.cursor = len(s.Records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m listModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m listModel) current() (models.EditableRecord, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Records) {
		return models.EditableRecord{}, false
	}
	return m.snapshot.Records[m.cursor], true
}

func (m listModel) currentID() string {
	r, ok := m.current()
	if !ok {
		return ""
	}
	return r.ID()
}

func (m listModel) cmdLoad() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		return opDoneMsg{op: opLoad, err: controller.Load(ctx)}
	}
}

func (m listModel) cmdSync() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		return opDoneMsg{op: opSync, err: controller.Sync(ctx)}
	}
}

func (m listModel) cmdSelect(id string) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		return opDoneMsg{op: opSelect, err: controller.Select(id)}
	}
}

func (m listModel) cmdEdit(id string, setters []func(r *models.EditableRecord)) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		err := controller.Edit(id, func(r *models.EditableRecord) {
			for _, set := range setters {
				set(r)
			}
		})
		return opDoneMsg{op: opEdit, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func (m listModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.form != nil {
		return appStyle.Render(m.form.View())
	}

	return appStyle.Render(renderPage(m.viewTitle(), m.viewBody(),
		"↑/↓: нав. │ e: изм. │ s: синхр. │ r: обновить │ c: копировать │ v: версия"))
}

func (m listModel) viewTitle() string {
	title := titleStyle.Render("СПИСОК ЗАПИСЕЙ")
	if m.snapshot.Status.IsLoading {
		title += "  " + m.spinner.View() + " " + stateText(m.snapshot.Status.State)
	}
	return title
}

func (m listModel) viewBody() string {
	var b strings.Builder

	if len(m.snapshot.Records) == 0 {
		b.WriteString("Записей нет\n")
	}
	for i, r := range m.snapshot.Records {
		b.WriteString(m.viewRow(i, r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Изменено: %d из %d\n", m.snapshot.ModifiedCount(), len(m.snapshot.Records)))
	b.WriteString("Выбрано: " + valueOrDash(m.snapshot.Status.Selected) + "\n")

	if text := m.snapshot.Status.ErrorText; text != nil {
		b.WriteString(errorStyle.Render("Ошибка: "+*text) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m listModel) viewRow(i int, r models.EditableRecord) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}
	mark := " "
	if r.IsModified() {
		mark = modifiedStyle.Render("*")
	}

	e := r.Model()
	row := fmt.Sprintf("%-24s %10.2f  %s", fitText(e.Name, 24), e.Price, fitText(e.Description, 30))
	if i == m.cursor {
		row = selectedStyle.Render(row)
	}

	return cursor + mark + " " + row
}

func stateText(s models.SyncState) string {
	switch s {
	case models.SyncStateLoading:
		return "загрузка..."
	case models.SyncStateSyncing:
		return "синхронизация..."
	default:
		return ""
	}
}
