package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"reflect"
	"regexp"
	"testing"
	"time"

	"controlling_oven/internal/models"
	"controlling_oven/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool {
	return f(v)
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRunSQLite_Save_SetsUTCNowWhenTimeZero(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRunSQLite(db)

	run := models.OvenRun{
		Status:       models.RunRunning,
		ProgramID:    "p-1",
		ProgramName:  "sourdough",
		CurrentStage: 2,
		TotalStages:  3,
		FanOn:        true,
		// UpdatedAt is zero
	}

	isUTCRecent := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO oven_run")).
		WithArgs(
			1, // snapshot row id
			run.Status,
			run.ProgramID,
			run.ProgramName,
			run.CurrentStage,
			run.TotalStages,
			run.FanOn,
			run.LastError,
			isUTCRecent,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), run); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunSQLite_Save_ConvertsGivenTimeToUTC(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRunSQLite(db)

	locTokyo, _ := time.LoadLocation("Asia/Tokyo")
	original := time.Date(2026, 3, 14, 9, 26, 53, 0, locTokyo)
	expectedUTC := original.UTC()

	run := models.OvenRun{
		Status:    models.RunFailed,
		LastError: "oven run aborted: heating heater at 999°C/0s: target above max safe 300°C",
		UpdatedAt: original,
	}

	isExactUTC := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		return ok && tm.Equal(expectedUTC) && tm.Location() == time.UTC
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO oven_run")).
		WithArgs(1, run.Status, "", "", 0, 0, false, run.LastError, isExactUTC).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), run); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunSQLite_Save_ExecErrorIsPropagated(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRunSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO oven_run")).
		WillReturnError(errors.New("db down"))

	if err := repo.Save(context.Background(), models.OvenRun{Status: models.RunIdle}); err == nil {
		t.Fatalf("Save() expected error, got nil")
	}
}

func TestRunSQLite_Load_NoRowsReturnsZeroValueAndNilError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRunSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, status, program_id, program_name")).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	var zero models.OvenRun
	if !reflect.DeepEqual(got, zero) {
		t.Fatalf("Load() expected zero run, got: %+v", got)
	}
}

func TestRunSQLite_Load_HappyPathConvertsToUTC(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRunSQLite(db)

	cols := []string{"id", "status", "program_id", "program_name", "current_stage", "total_stages", "fan_on", "last_error", "updated_at"}
	locNY, _ := time.LoadLocation("America/New_York")
	nonUTC := time.Date(2026, 2, 1, 8, 30, 0, 0, locNY)

	rows := sqlmock.NewRows(cols).
		AddRow(1, models.RunCompleted, "p-9", "rye loaf", 3, 3, true, "", nonUTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, status, program_id, program_name")).
		WithArgs(1).
		WillReturnRows(rows)

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if got.ID != 1 ||
		got.Status != models.RunCompleted ||
		got.ProgramID != "p-9" ||
		got.CurrentStage != 3 ||
		got.TotalStages != 3 ||
		!got.FanOn {
		t.Fatalf("Load() unexpected fields: %+v", got)
	}
	if got.UpdatedAt.Location() != time.UTC {
		t.Fatalf("Load() UpdatedAt not UTC: %v (%v)", got.UpdatedAt, got.UpdatedAt.Location())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
