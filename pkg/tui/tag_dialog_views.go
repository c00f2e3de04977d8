package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// View renders the dialog: search bar on top, then the loading
// skeleton, the empty-state message, or the flowed grid of tag chips.
func (d *TagDialog) View() string {
	if !d.Active {
		return ""
	}

	contentWidth := dialogContentWidth(d.width)

	var content strings.Builder
	content.WriteString(d.styles.Title.Render("BROWSE TAGS"))
	content.WriteString("\n\n")

	searchBox := d.styles.SearchBox.Width(contentWidth - 2).Render(d.searchInput.View())
	content.WriteString(searchBox)
	content.WriteString("\n\n")

	switch {
	case d.Loading:
		content.WriteString(d.loadSpinner.View())
		content.WriteString(d.styles.Muted.Render(" Loading tags..."))
		content.WriteString("\n")

	case len(d.visible) == 0:
		// Failed loads and zero matches render the same way.
		content.WriteString(d.styles.Muted.Render("No tags found."))
		content.WriteString("\n")

	default:
		content.WriteString(d.renderChipRows(contentWidth))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	help := wordwrap.String("←/→ navigate · enter select · esc close", contentWidth)
	content.WriteString(d.styles.Help.Render(help))

	return d.styles.Dialog.Width(contentWidth + 4).Render(content.String())
}

// renderChipRows flows the visible tags into rows that fit the width,
// highlighting the chip under the cursor.
func (d *TagDialog) renderChipRows(maxWidth int) string {
	var rows []string
	var row []string
	rowWidth := 0

	for i, tag := range d.visible {
		chipStyle := d.styles.Chip
		if i == d.cursor {
			chipStyle = d.styles.ChipFocus
		}

		chip := chipStyle.Render(tag.Name)
		chipWidth := lipgloss.Width(chip) + 1 // trailing gap

		if rowWidth+chipWidth > maxWidth && len(row) > 0 {
			rows = append(rows, strings.Join(row, " "))
			row = nil
			rowWidth = 0
		}

		row = append(row, chip)
		rowWidth += chipWidth
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	return strings.Join(rows, "\n")
}
