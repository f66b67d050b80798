package e2e

import (
	"audio-lab/domain/event"
	"audio-lab/domain/history"
	"audio-lab/runtime"
	"audio-lab/sink"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Header prints a step title in the test logs
func (s *BaseSuite) Header(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// WithOrchestrator runs fn against a fresh orchestrator whose console output is captured.
// The captured transcript is logged and returned without colour codes.
func (s *BaseSuite) WithOrchestrator(name string, fn func(ctx context.Context, o *runtime.Orchestrator)) string {
	s.Header(name)

	var out bytes.Buffer
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	console := sink.NewConsoleSink(&out, s.Config.Colours, s.Config.HistoryTable)
	orchestrator := runtime.NewOrchestrator(log, event.NewQueue(), history.NewHistory(),
		console, s.Config.NewPreset)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	fn(ctx, orchestrator)
	s.T().Logf("%s in %v\n%s", name, time.Since(start), out.String())

	return color.ClearCode(out.String())
}
