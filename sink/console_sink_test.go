package sink

import (
	"audio-lab/domain/history"
	"audio-lab/errors"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestConsoleSink_VolumePresets(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleSink(&out, false, false)

	req.NoError(console.VolumePresets([]int{5, 10, 15, 20, 25, 30}))

	req.Equal("Current Volume Presets: 5 10 15 20 25 30\n", out.String())
}

func TestConsoleSink_Events(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleSink(&out, false, false)

	req.NoError(console.NoEvents())
	req.NoError(console.EventProcessed("EmergencyStop"))

	req.Equal("No events to process.\nProcessing event: EmergencyStop\n", out.String())
}

func TestConsoleSink_Actions(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleSink(&out, false, false)

	req.NoError(console.ActionUndone("Volume Down"))
	req.NoError(console.NoActions())

	req.Equal("Undoing action: Volume Down\nNo actions to undo.\n", out.String())
}

func TestConsoleSink_History(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleSink(&out, false, false)

	req.NoError(console.History([]history.Action{"Volume Up", "Mute", "Volume Down"}))
	req.NoError(console.History(nil))

	req.Equal("Audio Control History: Volume Up | Mute | Volume Down\nAudio Control History:\n", out.String())
}

func TestConsoleSink_HistoryTable(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleSink(&out, false, true)

	req.NoError(console.History([]history.Action{"Volume Up", "Mute"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	req.Equal("Audio Control History:", lines[0])
	req.Contains(out.String(), "Volume Up")
	req.Contains(out.String(), "Mute")
	req.Less(strings.Index(out.String(), "Volume Up"), strings.Index(out.String(), "Mute"))
}

func TestConsoleSink_Colours_KeepText(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleSink(&out, true, false)

	req.NoError(console.EventProcessed("KeyPress"))

	// Escape codes depend on the terminal, the text does not
	req.Contains(out.String(), "Processing event:")
	req.True(strings.HasSuffix(out.String(), "KeyPress\n"))
}

func TestConsoleSink_WriteFailure(t *testing.T) {
	req := require.New(t)
	console := NewConsoleSink(failingWriter{}, false, false)

	err := console.NoEvents()
	req.ErrorIs(err, errors.ErrPresenterWrite)
	req.ErrorIs(err, io.ErrClosedPipe)

	table := NewConsoleSink(failingWriter{}, false, true)
	req.ErrorIs(table.History([]history.Action{"Mute"}), errors.ErrPresenterWrite)
}
