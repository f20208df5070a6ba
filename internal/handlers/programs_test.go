package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"controlling_oven/internal/models"
	"controlling_oven/internal/repository"
	"controlling_oven/internal/service"
)

func TestProgramHandlers_CreateListGetDelete(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	stored := models.Program{
		ID:           "p1",
		Name:         "country loaf",
		InitialTemp:  230,
		CoolAtFinish: true,
		Stages: []models.ProgramStage{
			{TargetTemp: 230, StageTime: 1200, Heat: "HEATER"},
		},
		CreatedAt: now,
	}
	progs := &mockPrograms{
		created: stored,
		got:     stored,
		list:    []models.Program{stored},
	}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Programs:      progs,
	}
	r := newTestRouter(s)

	// Create → 201, params passed through to the service
	payload := []byte(`{"name":"country loaf","initial_temp":230,"cool_at_finish":true,` +
		`"stages":[{"target_temp":230,"stage_time":1200,"heat":"HEATER"}]}`)
	w := doRequest(r, http.MethodPost, "/api/v1/programs/", payload, "valid")
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	if progs.lastParams.Name != "country loaf" || progs.lastParams.InitialTemp != 230 {
		t.Fatalf("wrong create params: %+v", progs.lastParams)
	}
	if len(progs.lastParams.Stages) != 1 || progs.lastParams.Stages[0].Heat != "HEATER" {
		t.Fatalf("wrong stages in params: %+v", progs.lastParams.Stages)
	}
	var created models.Program
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}
	if created.ID != "p1" {
		t.Fatalf("unexpected created program: %+v", created)
	}

	// Create with missing stages → 400 before the service is reached
	w = doRequest(r, http.MethodPost, "/api/v1/programs/", []byte(`{"name":"x"}`), "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without stages, got %d", w.Code)
	}

	// List → count and programs
	w = doRequest(r, http.MethodGet, "/api/v1/programs/", nil, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count    int              `json:"count"`
		Programs []models.Program `json:"programs"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 1 || len(out.Programs) != 1 || out.Programs[0].ID != "p1" {
		t.Fatalf("unexpected list response: %+v", out)
	}

	// Get → 200 and id passed through
	w = doRequest(r, http.MethodGet, "/api/v1/programs/p1", nil, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	if progs.lastID != "p1" {
		t.Fatalf("expected id p1, got %q", progs.lastID)
	}

	// Delete → 200
	w = doRequest(r, http.MethodDelete, "/api/v1/programs/p1", nil, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestProgramHandlers_NotFoundMapping(t *testing.T) {
	notFound := fmt.Errorf("program p9: %w", repository.ErrProgramNotFound)
	progs := &mockPrograms{getErr: notFound, deleteErr: notFound}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Programs:      progs,
	}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/programs/p9", nil, "valid")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get status=%d, want 404", w.Code)
	}
	w = doRequest(r, http.MethodDelete, "/api/v1/programs/p9", nil, "valid")
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete status=%d, want 404", w.Code)
	}
}

func TestProgramHandlers_ValidationErrorIsBadRequest(t *testing.T) {
	progs := &mockPrograms{createErr: errors.New(`stage 0: unknown heat type "MICROWAVE"`)}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Programs:      progs,
	}
	r := newTestRouter(s)

	payload := []byte(`{"name":"x","stages":[{"target_temp":100,"stage_time":60,"heat":"MICROWAVE"}]}`)
	w := doRequest(r, http.MethodPost, "/api/v1/programs/", payload, "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("create status=%d, want 400, body=%s", w.Code, w.Body.String())
	}
}
