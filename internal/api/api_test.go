package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/alexanderramin/semestra/internal/service"
	"github.com/alexanderramin/semestra/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	tasks := repository.NewSQLiteTaskRepo(database)
	slots := repository.NewSQLiteBusySlotRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	courses := repository.NewSQLiteCourseRepo(database)
	users := repository.NewSQLiteUserRepo(database)

	a := New(
		service.NewTaskService(tasks, uow),
		service.NewBusySlotService(slots),
		service.NewProfileService(profiles),
		service.NewCourseService(courses),
		service.NewScheduleService(tasks, slots, profiles, uow),
		users,
		[]byte("test-secret"),
		time.Hour,
		zerolog.Nop(),
	)
	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded), "body: %s", data)
	}
	return resp, decoded
}

func signup(t *testing.T, baseURL, email string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, baseURL+"/auth/signup", "", map[string]string{
		"email": email, "password": "password123", "name": "Test Student",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv.URL, "student@example.edu")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "student@example.edu", body["email"])

	// Duplicate signup is rejected.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/signup", "", map[string]string{
		"email": "student@example.edu", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Login works with the right password only.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"email": "student@example.edu", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"email": "student@example.edu", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignup_Validation(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/auth/signup", "", map[string]string{
		"email": "not-an-email", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/signup", "", map[string]string{
		"email": "x@example.edu", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTasks_RequireAuth(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/tasks/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTasks_CRUD(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv.URL, "crud@example.edu")

	resp, created := doJSON(t, http.MethodPost, srv.URL+"/tasks/", token, map[string]any{
		"title":    "essay outline",
		"deadline": time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
		"category": "assignment",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, "medium", created["priority"])

	resp, list := doJSON(t, http.MethodGet, srv.URL+"/tasks/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list["tasks"], 1)

	resp, updated := doJSON(t, http.MethodPut, srv.URL+"/tasks/"+id, token, map[string]any{
		"title": "essay final draft", "priority": "high",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "essay final draft", updated["title"])
	assert.Equal(t, "high", updated["priority"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/tasks/"+id, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/tasks/"+id, token, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTasks_Complete(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv.URL, "done@example.edu")

	_, created := doJSON(t, http.MethodPost, srv.URL+"/tasks/", token, map[string]any{
		"title":    "lab report",
		"deadline": time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
	})
	id := created["id"].(string)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/tasks/"+id+"/complete", token, map[string]any{
		"actual_duration_mins": 40, "drain_intensity": 2,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", body["status"])
}

func TestTasks_UserIsolation(t *testing.T) {
	srv := newTestServer(t)
	alice := signup(t, srv.URL, "alice@example.edu")
	bob := signup(t, srv.URL, "bob@example.edu")

	_, created := doJSON(t, http.MethodPost, srv.URL+"/tasks/", alice, map[string]any{
		"title": "private", "deadline": time.Now().AddDate(0, 0, 1).Format(time.RFC3339),
	})
	id := created["id"].(string)

	resp, list := doJSON(t, http.MethodGet, srv.URL+"/tasks/", bob, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, list["tasks"])

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/tasks/"+id, bob, map[string]any{"title": "stolen"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBusySlots_BulkReplace(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv.URL, "busy@example.edu")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/busy-slots/", token, map[string]any{
		"day_of_week": 0, "start_hour": 9, "end_hour": 11, "title": "lecture",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/busy-slots/bulk", token, map[string]any{
		"busy_slots": []map[string]any{
			{"day_of_week": 1, "start_hour": 10, "end_hour": 12},
			{"day_of_week": 3, "start_hour": 14, "end_hour": 16},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["count"])

	resp, list := doJSON(t, http.MethodGet, srv.URL+"/busy-slots/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list["busy_slots"], 2)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/busy-slots/bulk", token, map[string]any{
		"busy_slots": []map[string]any{{"day_of_week": 9, "start_hour": 1, "end_hour": 2}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfile_Baseline(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv.URL, "profile@example.edu")

	// Default profile before onboarding.
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/profile/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "balanced", body["chronotype"])
	assert.EqualValues(t, 60, body["preferred_session_mins"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/profile/baseline", token, map[string]any{
		"name": "Sam", "chronotype": "night", "work_style": "sprints",
		"preferred_session_mins": 45,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "night", body["chronotype"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/profile/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "night", body["chronotype"])
	assert.EqualValues(t, 45, body["preferred_session_mins"])
}

func TestScheduleRun_EndToEnd(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv.URL, "plan@example.edu")

	for _, title := range []string{"read ch 1", "read ch 2"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/tasks/", token, map[string]any{
			"title": title, "deadline": time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/schedule/run", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["assignments"], 2)
	assert.Empty(t, body["unplaceable"])

	// Planned times show up on the task list afterwards.
	_, list := doJSON(t, http.MethodGet, srv.URL+"/tasks/", token, nil)
	tasks := list["tasks"].([]any)
	for _, raw := range tasks {
		task := raw.(map[string]any)
		assert.NotEmpty(t, task["planned_start"])
		assert.NotEmpty(t, task["planned_end"])
	}
}

func TestCourses_CRUD(t *testing.T) {
	srv := newTestServer(t)
	token := signup(t, srv.URL, "courses@example.edu")

	resp, created := doJSON(t, http.MethodPost, srv.URL+"/courses/", token, map[string]any{
		"name": "Operating Systems", "code": "CS350", "color": "#b8bb26",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := created["id"].(string)

	resp, updated := doJSON(t, http.MethodPut, srv.URL+"/courses/"+id, token, map[string]any{
		"code": "CS352",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "CS352", updated["code"])
	assert.Equal(t, "Operating Systems", updated["name"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/courses/"+id, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, list := doJSON(t, http.MethodGet, srv.URL+"/courses/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, list["courses"])
}
