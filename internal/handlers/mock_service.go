package handlers

import (
	"context"
	"net/http"
	"time"

	"controlling_oven/internal/models"
	"controlling_oven/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPrograms struct {
	created    models.Program
	createErr  error
	got        models.Program
	getErr     error
	list       []models.Program
	listErr    error
	deleteErr  error
	lastParams service.ProgramParams
	lastID     string
}

func (m *mockPrograms) Create(ctx context.Context, p service.ProgramParams) (models.Program, error) {
	m.lastParams = p
	return m.created, m.createErr
}
func (m *mockPrograms) Get(ctx context.Context, id string) (models.Program, error) {
	m.lastID = id
	return m.got, m.getErr
}
func (m *mockPrograms) List(ctx context.Context) ([]models.Program, error) {
	return m.list, m.listErr
}
func (m *mockPrograms) Delete(ctx context.Context, id string) error {
	m.lastID = id
	return m.deleteErr
}

type mockBaker struct {
	runErr    error
	runCalled int
	lastRunID string
}

func (m *mockBaker) Run(ctx context.Context, programID string) error {
	m.runCalled++
	m.lastRunID = programID
	return m.runErr
}

type mockMonitoring struct {
	run models.OvenRun
	err error
}

func (m *mockMonitoring) GetRun(ctx context.Context) (models.OvenRun, error) {
	return m.run, m.err
}

type mockEventLog struct {
	resp     []models.OvenEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.OvenEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
