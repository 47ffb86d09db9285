package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-list-sync/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldName = iota
	fieldDescription
	fieldPrice
)

type formEditModel struct {
	id     string
	origin models.Entity
	inputs []textinput.Model
	focus  int
	err    string
}

func newFormEditModel(record models.EditableRecord) formEditModel {
	entity := record.Model()

	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldName].Placeholder = "Название"
	inputs[fieldDescription].Placeholder = "Описание"
	inputs[fieldPrice].Placeholder = "0.00"

	inputs[fieldName].SetValue(entity.Name)
	inputs[fieldDescription].SetValue(entity.Description)
	inputs[fieldPrice].SetValue(strconv.FormatFloat(entity.Price, 'f', -1, 64))
	inputs[fieldName].Focus()

	return formEditModel{id: record.ID(), origin: entity, inputs: inputs}
}

func (m *formEditModel) next() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formEditModel) prev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// changes parses the form and returns a setter for every field that differs
// from the loaded value. An unchanged form yields no setters.
func (m formEditModel) changes() ([]func(r *models.EditableRecord), error) {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	if name == "" {
		return nil, errEmptyName
	}
	description := m.inputs[fieldDescription].Value()

	price, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldPrice].Value()), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, errInvalidPrice
	}

	var setters []func(r *models.EditableRecord)
	if name != m.origin.Name {
		setters = append(setters, func(r *models.EditableRecord) { r.SetName(name) })
	}
	if description != m.origin.Description {
		setters = append(setters, func(r *models.EditableRecord) { r.SetDescription(description) })
	}
	if price != m.origin.Price {
		setters = append(setters, func(r *models.EditableRecord) { r.SetPrice(price) })
	}

	return setters, nil
}

func (m formEditModel) View() string {
	out := "Поле      │ Значение\n"
	out += "──────────┼──────────────────────────────────────────\n"
	out += "Название  │ [" + m.inputs[fieldName].View() + "]\n"
	out += "Описание  │ [" + m.inputs[fieldDescription].View() + "]\n"
	out += "Цена      │ [" + m.inputs[fieldPrice].View() + "]\n"
	if m.err != "" {
		out += "Ошибка    │ " + errorStyle.Render(m.err) + "\n"
	}

	return renderPage(titleStyle.Render("ИЗМЕНЕНИЕ ЗАПИСИ: "+m.id), strings.TrimRight(out, "\n"),
		"esc: назад │ tab: след. поле │ enter: сохранить")
}
