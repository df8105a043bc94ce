package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/kboard/internal/config"
)

// helpSection groups bindings under a heading
type helpSection struct {
	title    string
	bindings [][2]string
}

// RenderHelp lists every key binding from km
func RenderHelp(km config.KeyMappings) string {
	sections := []helpSection{
		{"Navigation", [][2]string{
			{km.PrevColumn + " / ←", "previous column"},
			{km.NextColumn + " / →", "next column"},
			{km.PrevTask + " / ↑", "previous task"},
			{km.NextTask + " / ↓", "next task"},
		}},
		{"Tasks", [][2]string{
			{km.AddTask, "add task to this column"},
			{km.EditTask, "edit title"},
			{km.CyclePriority, "cycle priority"},
			{km.DeleteTask, "delete task"},
		}},
		{"Drag", [][2]string{
			{km.PickUpTask, "pick up / drop task"},
			{km.PickUpColumn, "pick up / drop column"},
			{km.Cancel, "cancel drag"},
		}},
		{"Columns", [][2]string{
			{km.CreateColumn, "new column"},
			{km.RenameColumn, "rename column"},
			{km.DeleteColumn, "delete column"},
		}},
		{"Other", [][2]string{
			{km.Search, "search"},
			{km.ShowHelp, "toggle help"},
			{km.Quit + " / ctrl+c", "quit"},
		}},
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	for _, s := range sections {
		sb.WriteString("\n\n")
		sb.WriteString(TitleStyle.Render(s.title))
		for _, b := range s.bindings {
			fmt.Fprintf(&sb, "\n  %-12s %s", b[0], b[1])
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(SubtleStyle.Render("Tasks only move one column at a time."))

	return HelpBoxStyle.Render(sb.String())
}
