package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"controlling_oven/internal/models"
	"controlling_oven/internal/oven"
	"controlling_oven/internal/repository"

	"github.com/google/uuid"
)

var (
	errEmptyProgramName = errors.New("program name is required")
	errNoStages         = errors.New("a program needs at least one stage")
)

type ProgramsService struct {
	programRepo repository.ProgramRepo
}

func NewProgramsService(programRepo repository.ProgramRepo) *ProgramsService {
	return &ProgramsService{programRepo: programRepo}
}

// Create validates the payload, assigns an id and stores the program.
func (s *ProgramsService) Create(ctx context.Context, p ProgramParams) (models.Program, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return models.Program{}, errEmptyProgramName
	}
	if len(p.Stages) == 0 {
		return models.Program{}, errNoStages
	}

	stages := make([]models.ProgramStage, 0, len(p.Stages))
	for i, st := range p.Stages {
		heat := oven.HeatType(strings.ToUpper(strings.TrimSpace(st.Heat)))
		if !heat.Valid() {
			return models.Program{}, fmt.Errorf("stage %d: unknown heat type %q", i+1, st.Heat)
		}
		stages = append(stages, models.ProgramStage{
			TargetTemp: st.TargetTemp,
			StageTime:  st.StageTime,
			Heat:       string(heat),
		})
	}

	program := models.Program{
		ID:           uuid.NewString(),
		Name:         name,
		InitialTemp:  p.InitialTemp,
		CoolAtFinish: p.CoolAtFinish,
		Stages:       stages,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.programRepo.Create(ctx, program); err != nil {
		return models.Program{}, err
	}
	return program, nil
}

func (s *ProgramsService) Get(ctx context.Context, id string) (models.Program, error) {
	return s.programRepo.Get(ctx, id)
}

func (s *ProgramsService) List(ctx context.Context) ([]models.Program, error) {
	return s.programRepo.List(ctx)
}

func (s *ProgramsService) Delete(ctx context.Context, id string) error {
	return s.programRepo.Delete(ctx, id)
}
