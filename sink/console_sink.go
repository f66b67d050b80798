package sink

import (
	"audio-lab/domain/event"
	"audio-lab/domain/history"
	"audio-lab/errors"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const (
	presetsTitle   = "Current Volume Presets:"
	historyTitle   = "Audio Control History:"
	historySep     = " | "
	processingText = "Processing event:"
	undoingText    = "Undoing action:"
	noEventsText   = "No events to process."
	noActionsText  = "No actions to undo."
)

var (
	titleStyle  = color.New(color.FgCyan, color.OpBold)
	actionStyle = color.New(color.FgGreen)
	emptyStyle  = color.New(color.FgYellow)
)

// ConsoleSink writes one line per outcome, in the wording of the original audio console.
type ConsoleSink struct {
	out          io.Writer
	colours      bool
	historyTable bool
}

func NewConsoleSink(out io.Writer, colours, historyTable bool) *ConsoleSink {
	return &ConsoleSink{
		out:          out,
		colours:      colours,
		historyTable: historyTable,
	}
}

func (c *ConsoleSink) VolumePresets(presets []int) error {
	values := lo.Map(presets, func(p int, _ int) string {
		return strconv.Itoa(p)
	})
	return c.writeLine(c.paint(titleStyle, presetsTitle), strings.Join(values, " "))
}

func (c *ConsoleSink) EventProcessed(e event.Event) error {
	return c.writeLine(c.paint(actionStyle, processingText), string(e))
}

func (c *ConsoleSink) NoEvents() error {
	return c.writeLine(c.paint(emptyStyle, noEventsText))
}

func (c *ConsoleSink) ActionUndone(a history.Action) error {
	return c.writeLine(c.paint(actionStyle, undoingText), string(a))
}

func (c *ConsoleSink) NoActions() error {
	return c.writeLine(c.paint(emptyStyle, noActionsText))
}

func (c *ConsoleSink) History(actions []history.Action) error {
	title := c.paint(titleStyle, historyTitle)
	if c.historyTable {
		return c.writeTable(title, actions)
	}
	values := lo.Map(actions, func(a history.Action, _ int) string {
		return string(a)
	})
	return c.writeLine(title, strings.Join(values, historySep))
}

func (c *ConsoleSink) writeTable(title string, actions []history.Action) error {
	var buf bytes.Buffer
	buf.WriteString(title + "\n")

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Action"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for i, a := range actions {
		table.Append([]string{strconv.Itoa(i + 1), string(a)})
	}
	table.Render()

	if _, err := c.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPresenterWrite, err)
	}
	return nil
}

// writeLine joins the non-empty parts with a single space.
func (c *ConsoleSink) writeLine(parts ...string) error {
	parts = lo.Compact(parts)
	if _, err := fmt.Fprintln(c.out, strings.Join(parts, " ")); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPresenterWrite, err)
	}
	return nil
}

func (c *ConsoleSink) paint(style color.Style, text string) string {
	if !c.colours {
		return text
	}
	return style.Render(text)
}
