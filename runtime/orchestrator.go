// Package runtime sequences calls into the audio components and forwards their outcomes.
// It holds no business rules: queue and history decide, the presenter displays.
package runtime

import (
	"audio-lab/contract"
	"audio-lab/domain"
	"audio-lab/domain/event"
	"audio-lab/domain/history"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Orchestrator owns one event queue, one action history and one presenter.
// Like the components it drives, it is meant for a single caller.
type Orchestrator struct {
	log       *slog.Logger
	queue     contract.EventQueue
	history   contract.ActionHistory
	presenter contract.Presenter
	newPreset int
}

func NewOrchestrator(log *slog.Logger, queue contract.EventQueue, actions contract.ActionHistory,
	presenter contract.Presenter, newPreset int) *Orchestrator {
	return &Orchestrator{
		log:       log,
		queue:     queue,
		history:   actions,
		presenter: presenter,
		newPreset: newPreset,
	}
}

func (o *Orchestrator) ManageVolumePresets(newPreset int) error {
	presets := domain.UpdatedVolumePresets(newPreset)
	o.log.Debug("Volume presets computed", "new_preset", newPreset, "count", len(presets))
	return o.presenter.VolumePresets(presets)
}

func (o *Orchestrator) AddEvent(e event.Event) {
	o.queue.Enqueue(e)
	o.log.Debug("Event queued", "event", e, "pending", o.queue.Len())
}

func (o *Orchestrator) AddPriorityEvent(e event.Event) {
	o.queue.EnqueuePriority(e)
	o.log.Debug("Priority event queued", "event", e, "pending", o.queue.Len())
}

// ProcessEvents drains the queue and returns how many events were processed.
func (o *Orchestrator) ProcessEvents() (int, error) {
	events, ok := o.queue.DrainAll()
	if !ok {
		o.log.Debug("Event queue is empty")
		return 0, o.presenter.NoEvents()
	}
	for i, e := range events {
		if err := o.presenter.EventProcessed(e); err != nil {
			return i, fmt.Errorf("processing event %q: %w", e, err)
		}
	}
	o.log.Debug("Events processed", "count", len(events))
	return len(events), nil
}

func (o *Orchestrator) AddAction(a history.Action) {
	o.history.Record(a)
	o.log.Debug("Action recorded", "action", a, "size", o.history.Len())
}

// UndoLastAction reports whether something was undone.
func (o *Orchestrator) UndoLastAction() (bool, error) {
	a, ok := o.history.UndoLast()
	if !ok {
		o.log.Debug("Nothing to undo")
		return false, o.presenter.NoActions()
	}
	o.log.Debug("Action undone", "action", a, "size", o.history.Len())
	return true, o.presenter.ActionUndone(a)
}

func (o *Orchestrator) DisplayHistory() error {
	return o.presenter.History(o.history.Snapshot())
}

// Run plays the audio console demonstration from start to end.
func (o *Orchestrator) Run(ctx context.Context) error {
	log := o.log.With("run_id", uuid.NewString())

	steps := []struct {
		name string
		fn   func() error
	}{
		{"volume presets", o.volumePresetsStep},
		{"event queue", o.eventQueueStep},
		{"action history", o.actionHistoryStep},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			log.Warn("Demo interrupted", "step", step.name)
			return err
		}
		log.Info("Running demo step", "step", step.name)
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	log.Info("Demo completed", "pending_events", o.queue.Len(), "actions", o.history.Len())
	return nil
}

func (o *Orchestrator) volumePresetsStep() error {
	if err := o.ManageVolumePresets(o.newPreset); err != nil {
		return err
	}
	// A negative preset is ignored
	return o.ManageVolumePresets(-5)
}

func (o *Orchestrator) eventQueueStep() error {
	if _, err := o.ProcessEvents(); err != nil {
		return err
	}
	o.AddEvent("MouseClick")
	o.AddEvent("KeyPress")
	o.AddPriorityEvent("EmergencyStop")
	_, err := o.ProcessEvents()
	return err
}

func (o *Orchestrator) actionHistoryStep() error {
	o.AddAction("Volume Up")
	o.AddAction("Mute")
	o.AddAction("Volume Down")
	if err := o.DisplayHistory(); err != nil {
		return err
	}
	if _, err := o.UndoLastAction(); err != nil {
		return err
	}
	return o.DisplayHistory()
}
