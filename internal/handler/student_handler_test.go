package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/gradebook"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func performRequest(t *testing.T, app *fiber.App, method, target string, payload interface{}) (int, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

type stubStudentService struct {
	createFn    func(dto.StudentCreateRequest) (dto.StudentResponse, error)
	listFn      func() []dto.StudentResponse
	getFn       func(string) (dto.StudentResponse, error)
	deleteFn    func(string) error
	enrollFn    func(string, string) (dto.StudentResponse, error)
	dropFn      func(string, string) (dto.StudentResponse, error)
	averageFn   func(string) (dto.AverageResponse, error)
	dashboardFn func(string) (dto.StudentDashboardResponse, error)
}

func (s *stubStudentService) CreateStudent(req dto.StudentCreateRequest) (dto.StudentResponse, error) {
	return s.createFn(req)
}

func (s *stubStudentService) ListStudents() []dto.StudentResponse { return s.listFn() }

func (s *stubStudentService) GetStudent(id string) (dto.StudentResponse, error) {
	return s.getFn(id)
}

func (s *stubStudentService) DeleteStudent(id string) error { return s.deleteFn(id) }

func (s *stubStudentService) EnrollStudent(id, course string) (dto.StudentResponse, error) {
	return s.enrollFn(id, course)
}

func (s *stubStudentService) DropStudent(id, course string) (dto.StudentResponse, error) {
	return s.dropFn(id, course)
}

func (s *stubStudentService) StudentOverallAverage(id string) (dto.AverageResponse, error) {
	return s.averageFn(id)
}

func (s *stubStudentService) StudentDashboard(id string) (dto.StudentDashboardResponse, error) {
	return s.dashboardFn(id)
}

func newStudentApp(svc *stubStudentService) *fiber.App {
	app := fiber.New()
	NewStudentHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/students"))
	return app
}

func TestStudentHandlerList(t *testing.T) {
	app := newStudentApp(&stubStudentService{
		listFn: func() []dto.StudentResponse {
			return []dto.StudentResponse{{StudentID: "s001", Name: "John Kirk"}}
		},
	})

	status, env := performRequest(t, app, http.MethodGet, "/students", nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var students []dto.StudentResponse
	require.NoError(t, json.Unmarshal(env.Data, &students))
	require.Len(t, students, 1)
	require.Equal(t, "s001", students[0].StudentID)
}

func TestStudentHandlerCreate(t *testing.T) {
	app := newStudentApp(&stubStudentService{
		createFn: func(req dto.StudentCreateRequest) (dto.StudentResponse, error) {
			return dto.StudentResponse{StudentID: req.StudentID, Name: req.Name}, nil
		},
	})

	status, env := performRequest(t, app, http.MethodPost, "/students", dto.StudentCreateRequest{
		StudentID: "s001",
		Name:      "John Kirk",
	})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)
	require.Equal(t, "student registered", env.Message)
}

func TestStudentHandlerCreateInvalidArgument(t *testing.T) {
	app := newStudentApp(&stubStudentService{
		createFn: func(dto.StudentCreateRequest) (dto.StudentResponse, error) {
			return dto.StudentResponse{}, fmt.Errorf("%w: name is required", gradebook.ErrInvalidArgument)
		},
	})

	status, env := performRequest(t, app, http.MethodPost, "/students", dto.StudentCreateRequest{StudentID: "s001"})
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, env.Success)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	app := newStudentApp(&stubStudentService{
		getFn: func(id string) (dto.StudentResponse, error) {
			return dto.StudentResponse{}, fmt.Errorf("%w: student %q", gradebook.ErrNotFound, id)
		},
	})

	status, env := performRequest(t, app, http.MethodGet, "/students/s999", nil)
	require.Equal(t, http.StatusNotFound, status)
	require.False(t, env.Success)
}

func TestStudentHandlerEnrollRequiresCourse(t *testing.T) {
	app := newStudentApp(&stubStudentService{})

	status, env := performRequest(t, app, http.MethodPost, "/students/s001/enroll", dto.EnrollmentRequest{})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "course is required", env.Message)
}

func TestStudentHandlerAverageIsNullable(t *testing.T) {
	app := newStudentApp(&stubStudentService{
		averageFn: func(string) (dto.AverageResponse, error) {
			return dto.AverageResponse{}, nil
		},
	})

	status, env := performRequest(t, app, http.MethodGet, "/students/s001/average", nil)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"average": null}`, string(env.Data))
}
