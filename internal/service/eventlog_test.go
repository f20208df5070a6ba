package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"controlling_oven/internal/models"
)

func TestEventLogService_List_InvalidRange(t *testing.T) {
	svc := NewEventLogService(&fakeEventRepo{})

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	if _, err := svc.List(context.Background(), LogFilter{From: from, To: to}); !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange, got %v", err)
	}
}

func TestEventLogService_List_NormalizesTypeAndFilters(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []models.OvenEvent{
		{EventID: "a", OccurredAt: now, Type: models.EventRunStart},
		{EventID: "b", OccurredAt: now.Add(time.Second), Type: models.EventStage},
		{EventID: "c", OccurredAt: now.Add(2 * time.Second), Type: models.EventStage},
	}}
	svc := NewEventLogService(repo)

	got, err := svc.List(context.Background(), LogFilter{
		From: now,
		To:   now.Add(time.Minute),
		Type: " stage ", // normalized to STAGE
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].EventID != "b" || got[1].EventID != "c" {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestEventLogService_List_RepoErrorPropagates(t *testing.T) {
	svc := NewEventLogService(&fakeEventRepo{listErr: errors.New("db down")})

	if _, err := svc.List(context.Background(), LogFilter{}); err == nil {
		t.Fatal("expected error, got nil")
	}
}
