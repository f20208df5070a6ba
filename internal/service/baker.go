package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"controlling_oven/internal/models"
	"controlling_oven/internal/oven"
	"controlling_oven/internal/repository"

	"github.com/google/uuid"
)

// BakerService executes stored programs against the actuator drivers.
// A mutex serializes runs: the core oven is not safe for concurrent
// RunProgram calls and the snapshot row is shared.
type BakerService struct {
	mu sync.Mutex

	programRepo repository.ProgramRepo
	runRepo     repository.RunRepo
	eventRepo   repository.EventRepo

	heating oven.HeatingModule
	fan     oven.Fan
}

func NewBakerService(
	programRepo repository.ProgramRepo,
	runRepo repository.RunRepo,
	eventRepo repository.EventRepo,
	heating oven.HeatingModule,
	fan oven.Fan,
) *BakerService {
	return &BakerService{
		programRepo: programRepo,
		runRepo:     runRepo,
		eventRepo:   eventRepo,
		heating:     heating,
		fan:         fan,
	}
}

// Run loads the program, drives the oven through it and records the outcome.
// The call blocks until the program completed or failed; the returned error
// is the core's error for failed runs.
func (s *BakerService) Run(ctx context.Context, programID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.programRepo.Get(ctx, programID)
	if err != nil {
		return err
	}

	tracker := newRunTracker(ctx, s.runRepo, s.eventRepo, p)
	tracker.start(p.InitialTemp != 0)

	ov, err := oven.NewOven(
		&instrumentedHeating{inner: s.heating, tracker: tracker},
		&instrumentedFan{inner: s.fan, tracker: tracker},
	)
	if err != nil {
		return err
	}

	program := toBakingProgram(p)
	if err := ov.RunProgram(&program); err != nil {
		tracker.failed(err)
		return err
	}
	tracker.completed()
	return nil
}

// toBakingProgram converts the stored form into the core's value objects.
func toBakingProgram(p models.Program) oven.BakingProgram {
	stages := make([]oven.ProgramStage, 0, len(p.Stages))
	for _, st := range p.Stages {
		stages = append(stages, oven.ProgramStage{
			TargetTemp: st.TargetTemp,
			StageTime:  st.StageTime,
			Heat:       oven.HeatType(st.Heat),
		})
	}
	return oven.BakingProgram{
		InitialTemp:  p.InitialTemp,
		Stages:       stages,
		CoolAtFinish: p.CoolAtFinish,
	}
}

// runTracker keeps the run snapshot current and appends events as the oven
// issues actuator commands. Persistence is best-effort: a logging failure
// must not abort a bake.
type runTracker struct {
	ctx       context.Context
	runRepo   repository.RunRepo
	eventRepo repository.EventRepo

	run models.OvenRun
	// the first heating command of a run with a non-zero initial temperature
	// is the heat-up, not a stage
	heatUpPending bool
}

func newRunTracker(ctx context.Context, runRepo repository.RunRepo, eventRepo repository.EventRepo, p models.Program) *runTracker {
	return &runTracker{
		ctx:       ctx,
		runRepo:   runRepo,
		eventRepo: eventRepo,
		run: models.OvenRun{
			ID:          1,
			ProgramID:   p.ID,
			ProgramName: p.Name,
			TotalStages: len(p.Stages),
		},
	}
}

func (t *runTracker) start(withHeatUp bool) {
	t.heatUpPending = withHeatUp
	t.run.Status = models.RunRunning
	t.saveRun()
	t.append(models.EventRunStart, "program started: "+t.run.ProgramName, map[string]any{
		"program_id":   t.run.ProgramID,
		"total_stages": t.run.TotalStages,
	})
}

func (t *runTracker) completed() {
	t.run.Status = models.RunCompleted
	t.saveRun()
	t.append(models.EventRunComplete, "program completed: "+t.run.ProgramName, nil)
}

func (t *runTracker) failed(cause error) {
	t.run.Status = models.RunFailed
	t.run.LastError = cause.Error()
	t.saveRun()
	t.append(models.EventRunFailed, "program failed: "+t.run.ProgramName, map[string]any{
		"cause": cause.Error(),
	})
}

// heatCommand records a successfully applied heating command.
func (t *runTracker) heatCommand(command string, s oven.HeatingSettings) {
	if t.heatUpPending {
		t.heatUpPending = false
		t.saveRun()
		t.append(models.EventHeatUp, fmt.Sprintf("initial heat-up to %d°C", s.Temperature), map[string]any{
			"temperature": s.Temperature,
		})
		return
	}

	t.run.CurrentStage++
	t.saveRun()
	t.append(models.EventStage,
		fmt.Sprintf("stage %d/%d: %s at %d°C for %ds",
			t.run.CurrentStage, t.run.TotalStages, command, s.Temperature, s.Time),
		map[string]any{
			"stage":       t.run.CurrentStage,
			"command":     command,
			"temperature": s.Temperature,
			"time":        s.Time,
		})
}

func (t *runTracker) fanChanged(on bool) {
	t.run.FanOn = on
	t.saveRun()
	desc := "fan off"
	if on {
		desc = "fan on"
	}
	t.append(models.EventFan, desc, nil)
}

func (t *runTracker) saveRun() {
	t.run.UpdatedAt = time.Now().UTC()
	_ = t.runRepo.Save(t.ctx, t.run)
}

func (t *runTracker) append(typ, desc string, meta map[string]any) {
	ev := models.OvenEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
	}
	if meta != nil {
		ev.Metadata = meta
	}
	_ = t.eventRepo.Append(t.ctx, ev)
}

// instrumentedHeating forwards commands to the driver and records the ones
// that succeed. The failing command surfaces through the run outcome instead.
type instrumentedHeating struct {
	inner   oven.HeatingModule
	tracker *runTracker
}

func (h *instrumentedHeating) Heater(s oven.HeatingSettings) error {
	return h.forward("heater", s, h.inner.Heater)
}

func (h *instrumentedHeating) ThermalCircuit(s oven.HeatingSettings) error {
	return h.forward("thermal_circuit", s, h.inner.ThermalCircuit)
}

func (h *instrumentedHeating) Grill(s oven.HeatingSettings) error {
	return h.forward("grill", s, h.inner.Grill)
}

func (h *instrumentedHeating) forward(command string, s oven.HeatingSettings, cmd func(oven.HeatingSettings) error) error {
	if err := cmd(s); err != nil {
		return err
	}
	h.tracker.heatCommand(command, s)
	return nil
}

type instrumentedFan struct {
	inner   oven.Fan
	tracker *runTracker
}

func (f *instrumentedFan) On() {
	f.inner.On()
	f.tracker.fanChanged(true)
}

func (f *instrumentedFan) Off() {
	f.inner.Off()
	f.tracker.fanChanged(false)
}
