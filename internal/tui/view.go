package tui

import (
	"fmt"
	"strings"

	"github.com/bratus/pavadzimes/internal/calc"
	"github.com/bratus/pavadzimes/internal/domain"
)

var formLabels = [fieldCount]string{
	"Klients:",
	"Adrese:",
	"Reģ. Nr.:",
	"PVN Nr.:",
	"Numurs:",
	"Datums:",
	"Avanss:",
}

var itemLabels = [itemFieldCount]string{
	"Nosaukums:",
	"Mērvienība:",
	"Daudzums:",
	"Cena:",
}

func (m *Model) View() string {
	if m.mode == modeItem {
		return m.viewItemForm()
	}
	return m.viewForm()
}

func (m *Model) viewForm() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf("%s — jauns dokuments", m.kind().Label())))
	s.WriteString("\n")
	s.WriteString(subtitleStyle.Render(fmt.Sprintf("  Paraksta: %s %s", m.app.Config.Company.SignerTitle, m.signer())))
	s.WriteString("\n\n")

	for i, label := range formLabels {
		if i == fieldAdvance && m.kind() != domain.KindAdvanceInvoice {
			continue
		}
		indicator := "  "
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			indicator = "> "
			labelStyle = focusedStyle
		}
		text := label
		if i == fieldAdvance {
			if m.advanceIsPct {
				text = "Avanss (%):"
			} else {
				text = "Avanss (€):"
			}
		}
		s.WriteString(fmt.Sprintf("%s%-12s %s\n", indicator, labelStyle.Render(text), m.fields[i].View()))
	}

	s.WriteString("\n")
	s.WriteString(m.viewItems())
	s.WriteString(m.viewTotals())

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("  Kļūda: %v", m.err)) + "\n")
	}
	if m.statusMsg != "" {
		s.WriteString(successStyle.Render("  "+m.statusMsg) + "\n")
	}
	if m.generating {
		s.WriteString(subtitleStyle.Render("  ģenerē...") + "\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("  enter: pozīcija  ctrl+d: dzēst pozīciju  ctrl+k: veids  ctrl+n: parakstītājs"))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("  ctrl+p: avansa režīms  ctrl+g: ģenerēt  esc: iziet"))

	return s.String()
}

func (m *Model) viewItems() string {
	if len(m.items) == 0 {
		return subtitleStyle.Render("  (nav pozīciju)") + "\n"
	}

	var s strings.Builder
	s.WriteString(subtitleStyle.Render(fmt.Sprintf("  Pozīcijas (%d):", len(m.items))) + "\n")

	result := calc.Calculate(m.items, m.kind(), calc.AdvanceInput{})
	for _, it := range result.Items {
		s.WriteString(fmt.Sprintf("   %-34s %8s %-8s %12s\n",
			truncate(it.Description, 34), it.QuantityDisplay, it.Unit,
			valueStyle.Render(it.LineTotalDisplay)))
	}
	return s.String()
}

// truncate shortens a string to maxLen runes with ellipsis. Rune-based:
// descriptions are Latvian and a byte cut could split a character.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// viewTotals recomputes live totals from the current form state so the
// figures on screen always match what generation would produce.
func (m *Model) viewTotals() string {
	if len(m.items) == 0 {
		return ""
	}

	input := m.buildInput()
	result := calc.Calculate(input.Items, input.Kind, calc.AdvanceInput{
		Mode:  input.AdvanceMode,
		Value: input.AdvanceValue,
	})

	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("   %-20s %s\n", "Summa (bez PVN):", valueStyle.Render("€ "+result.Totals.SubtotalDisplay)))
	s.WriteString(fmt.Sprintf("   %-20s %s\n", "PVN (21%):", valueStyle.Render("€ "+result.Totals.TaxDisplay)))
	s.WriteString(fmt.Sprintf("   %-20s %s\n", "Kopā:", valueStyle.Render("€ "+result.Totals.TotalDisplay)))
	if result.Advance != nil {
		s.WriteString(fmt.Sprintf("   %-20s %s\n",
			fmt.Sprintf("Avanss (%s):", result.Advance.PercentDisplay()),
			valueStyle.Render("€ "+result.Advance.AmountDisplay)))
	}
	s.WriteString("\n")
	return s.String()
}

func (m *Model) viewItemForm() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Jauna pozīcija") + "\n\n")

	for i, label := range itemLabels {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == m.itemFocus {
			indicator = "> "
			labelStyle = focusedStyle
		}
		s.WriteString(fmt.Sprintf("%s%-12s %s\n", indicator, labelStyle.Render(label), m.itemFields[i].View()))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("  tab: nākamais lauks  enter: pievienot  esc: atcelt"))

	return s.String()
}
