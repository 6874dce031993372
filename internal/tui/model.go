package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bratus/pavadzimes/internal/app"
	"github.com/bratus/pavadzimes/internal/calc"
	"github.com/bratus/pavadzimes/internal/domain"
	"github.com/bratus/pavadzimes/internal/service"
)

// form field indices
const (
	fieldClientName = iota
	fieldClientAddress
	fieldClientReg
	fieldClientVAT
	fieldNumber
	fieldIssueDate
	fieldAdvance
	fieldCount
)

// item sub-form field indices
const (
	itemFieldDescription = iota
	itemFieldUnit
	itemFieldQuantity
	itemFieldPrice
	itemFieldCount
)

type formMode int

const (
	modeForm formMode = iota
	modeItem
)

type generateDoneMsg struct {
	result *service.GenerateResult
	err    error
}

var kinds = []domain.DocumentKind{
	domain.KindDeliveryNote,
	domain.KindInvoice,
	domain.KindAdvanceInvoice,
}

// Model is the single-screen document form
type Model struct {
	app *app.App

	mode       formMode
	fields     []textinput.Model
	fieldFocus int

	itemFields []textinput.Model
	itemFocus  int
	items      []domain.LineItem

	kindIndex    int
	signerIndex  int
	advanceIsPct bool

	generating bool
	statusMsg  string
	err        error
}

// NewModel creates the document form pre-filled with the next number
func NewModel(a *app.App) *Model {
	m := &Model{app: a, advanceIsPct: true}
	m.initForm()
	return m
}

func (m *Model) initForm() {
	m.fields = make([]textinput.Model, fieldCount)

	m.fields[fieldClientName] = newInput("SIA Klients", 120, 40)
	m.fields[fieldClientAddress] = newInput("Rīga, ...", 200, 40)
	m.fields[fieldClientReg] = newInput("40003000001", 11, 20)
	m.fields[fieldClientVAT] = newInput("LV40003000001", 13, 20)
	m.fields[fieldNumber] = newInput(strconv.Itoa(m.app.Ledger.NextNumber()), 6, 10)
	m.fields[fieldIssueDate] = newInput(time.Now().Format(domain.DateLayout), 10, 14)
	m.fields[fieldAdvance] = newInput("50", 12, 10)

	m.fieldFocus = fieldClientName
	m.fields[fieldClientName].Focus()
}

func (m *Model) initItemForm() {
	m.itemFields = make([]textinput.Model, itemFieldCount)
	m.itemFields[itemFieldDescription] = newInput("Būvdarbi ...", 200, 40)
	m.itemFields[itemFieldUnit] = newInput("gab.", 20, 10)
	m.itemFields[itemFieldQuantity] = newInput("1", 15, 10)
	m.itemFields[itemFieldPrice] = newInput("100,00", 15, 14)

	m.itemFocus = itemFieldDescription
	m.itemFields[itemFieldDescription].Focus()
}

func newInput(placeholder string, charLimit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = width
	return in
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) kind() domain.DocumentKind {
	return kinds[m.kindIndex]
}

func (m *Model) signer() string {
	signers := m.app.Config.Company.Signers
	if len(signers) == 0 {
		return ""
	}
	return signers[m.signerIndex%len(signers)]
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generateDoneMsg:
		m.generating = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMsg = fmt.Sprintf("%s %s saglabāts",
			msg.result.Record.Kind.Label(), msg.result.Record.DocumentID)
		if msg.result.PDF.Err != nil {
			m.statusMsg += " (PDF neizdevās)"
		}
		if msg.result.DOCX.Err != nil {
			m.statusMsg += " (DOCX neizdevās)"
		}
		// Numbering may have advanced.
		m.fields[fieldNumber].SetValue(strconv.Itoa(m.app.Ledger.NextNumber()))
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeItem {
			return m.updateItemForm(msg)
		}
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	if m.mode == modeItem {
		m.itemFields[m.itemFocus], cmd = m.itemFields[m.itemFocus].Update(msg)
	} else {
		m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	}
	return m, cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus + 1) % fieldCount
		return m, m.fields[m.fieldFocus].Focus()

	case "shift+tab", "up":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus - 1 + fieldCount) % fieldCount
		return m, m.fields[m.fieldFocus].Focus()

	case "ctrl+k":
		m.kindIndex = (m.kindIndex + 1) % len(kinds)
		return m, nil

	case "ctrl+n":
		if len(m.app.Config.Company.Signers) > 0 {
			m.signerIndex = (m.signerIndex + 1) % len(m.app.Config.Company.Signers)
		}
		return m, nil

	case "ctrl+p":
		m.advanceIsPct = !m.advanceIsPct
		return m, nil

	case "ctrl+a", "enter":
		m.mode = modeItem
		m.initItemForm()
		return m, textinput.Blink

	case "ctrl+d":
		if len(m.items) > 0 {
			m.items = m.items[:len(m.items)-1]
		}
		return m, nil

	case "ctrl+g":
		if m.generating {
			return m, nil
		}
		return m.startGenerate()
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *Model) updateItemForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeForm
		return m, nil

	case "tab", "down":
		m.itemFields[m.itemFocus].Blur()
		m.itemFocus = (m.itemFocus + 1) % itemFieldCount
		return m, m.itemFields[m.itemFocus].Focus()

	case "shift+tab", "up":
		m.itemFields[m.itemFocus].Blur()
		m.itemFocus = (m.itemFocus - 1 + itemFieldCount) % itemFieldCount
		return m, m.itemFields[m.itemFocus].Focus()

	case "enter":
		if m.itemFocus < itemFieldCount-1 {
			m.itemFields[m.itemFocus].Blur()
			m.itemFocus++
			return m, m.itemFields[m.itemFocus].Focus()
		}
		item := domain.LineItem{
			Description: strings.TrimSpace(m.itemFields[itemFieldDescription].Value()),
			Unit:        strings.TrimSpace(m.itemFields[itemFieldUnit].Value()),
			Quantity:    strings.TrimSpace(m.itemFields[itemFieldQuantity].Value()),
			UnitPrice:   strings.TrimSpace(m.itemFields[itemFieldPrice].Value()),
		}
		if item.Description != "" {
			m.items = append(m.items, item)
		}
		m.mode = modeForm
		return m, nil
	}

	var cmd tea.Cmd
	m.itemFields[m.itemFocus], cmd = m.itemFields[m.itemFocus].Update(msg)
	return m, cmd
}

// buildInput assembles the service input from the current form state.
func (m *Model) buildInput() service.GenerateInput {
	input := service.GenerateInput{
		Kind:       m.kind(),
		Items:      m.items,
		SignerName: m.signer(),
	}

	input.Client.Name = strings.TrimSpace(m.fields[fieldClientName].Value())
	input.Client.Address = strings.TrimSpace(m.fields[fieldClientAddress].Value())
	input.Client.RegNo = strings.TrimSpace(m.fields[fieldClientReg].Value())
	input.Client.VATNo = strings.TrimSpace(m.fields[fieldClientVAT].Value())
	if input.Client.VATNo == "" && input.Client.RegNo != "" {
		input.Client.VATNo = "LV" + input.Client.RegNo
	}

	if n, err := strconv.Atoi(strings.TrimSpace(m.fields[fieldNumber].Value())); err == nil {
		input.Number = n
	}
	if t, err := time.Parse(domain.DateLayout, strings.TrimSpace(m.fields[fieldIssueDate].Value())); err == nil {
		input.IssueDate = t
	}

	if m.kind() == domain.KindAdvanceInvoice {
		raw := strings.TrimSpace(m.fields[fieldAdvance].Value())
		if raw != "" {
			if m.advanceIsPct {
				input.AdvanceMode = calc.AdvancePercent
			} else {
				input.AdvanceMode = calc.AdvanceAmount
			}
			input.AdvanceValue = calc.Coerce(raw)
		}
	}

	return input
}

func (m *Model) startGenerate() (tea.Model, tea.Cmd) {
	input := m.buildInput()
	if input.Client.Name == "" {
		m.err = fmt.Errorf("klienta nosaukums ir obligāts")
		return m, nil
	}
	if len(input.Items) == 0 {
		m.err = fmt.Errorf("pievienojiet vismaz vienu pozīciju (enter)")
		return m, nil
	}

	m.generating = true
	m.err = nil
	m.statusMsg = ""
	svc := m.app.DocumentService
	return m, func() tea.Msg {
		res, err := svc.Generate(context.Background(), input)
		return generateDoneMsg{result: res, err: err}
	}
}
