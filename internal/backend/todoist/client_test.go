package todoist_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"todosync/internal/backend/todoist"
	"todosync/internal/config"
	"todosync/internal/service"
)

type recorded struct {
	method    string
	path      string
	auth      string
	requestID string
	body      map[string]any
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recorded
	handler  func(w http.ResponseWriter, r *http.Request)
}

func newFakeAPI(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{handler: handler}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{
			method:    r.Method,
			path:      r.URL.Path,
			auth:      r.Header.Get("Authorization"),
			requestID: r.Header.Get("X-Request-Id"),
		}
		if r.Body != nil && r.ContentLength != 0 {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		api.mu.Lock()
		api.requests = append(api.requests, rec)
		api.mu.Unlock()
		api.handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) request(i int) recorded {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.requests[i]
}

func newClient(t *testing.T, srv *httptest.Server) *todoist.Client {
	t.Helper()
	t.Setenv("TODOSYNC_TOKEN", "secret-token")
	t.Setenv("TODOIST_API_TOKEN", "")
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.BaseURL = srv.URL + "/rest/v2/"
	cfg.Timeout = 2 * time.Second

	client, err := todoist.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestListTasks(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"2995104339","content":"Buy Milk","is_completed":false,"project_id":"2203306141"},
			{"id":7,"content":"numeric id"}
		]`))
	})
	client := newClient(t, srv)

	tasks, err := client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []service.Task{
		{ID: 2995104339, Content: "Buy Milk"},
		{ID: 7, Content: "numeric id"},
	}
	if !reflect.DeepEqual(tasks, want) {
		t.Errorf("expected %+v, got %+v", want, tasks)
	}

	req := api.request(0)
	if req.method != http.MethodGet || req.path != "/rest/v2/tasks" {
		t.Errorf("unexpected request %s %s", req.method, req.path)
	}
	if req.auth != "Bearer secret-token" {
		t.Errorf("unexpected auth header %q", req.auth)
	}
}

func TestCreateTask(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"1","content":"buy milk"}`))
	})
	client := newClient(t, srv)

	task, err := client.CreateTask(context.Background(), "buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task != (service.Task{ID: 1, Content: "buy milk"}) {
		t.Errorf("unexpected task %+v", task)
	}

	req := api.request(0)
	if req.method != http.MethodPost || req.path != "/rest/v2/tasks" {
		t.Errorf("unexpected request %s %s", req.method, req.path)
	}
	if req.body["content"] != "buy milk" || len(req.body) != 1 {
		t.Errorf("unexpected body %+v", req.body)
	}
	if _, err := uuid.Parse(req.requestID); err != nil {
		t.Errorf("expected a uuid request id, got %q", req.requestID)
	}
}

func TestCreateTask_MissingID(t *testing.T) {
	_, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":"x"}`))
	})
	client := newClient(t, srv)

	if _, err := client.CreateTask(context.Background(), "x"); err == nil {
		t.Fatal("expected error for response without id")
	}
}

func TestDeleteTask(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client := newClient(t, srv)

	if err := client.DeleteTask(context.Background(), 2995104339); err != nil {
		t.Fatalf("delete: %v", err)
	}
	req := api.request(0)
	if req.method != http.MethodDelete || req.path != "/rest/v2/tasks/2995104339" {
		t.Errorf("unexpected request %s %s", req.method, req.path)
	}
}

func TestErrorsAreRemoteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			})
			client := newClient(t, srv)

			err := client.DeleteTask(context.Background(), 1)
			var re *service.RemoteError
			if !errors.As(err, &re) {
				t.Fatalf("expected RemoteError, got %v", err)
			}
			if re.Op != "delete" || re.Status != tt.status {
				t.Errorf("unexpected error fields %+v", re)
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	_, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := todoist.NewWithHTTPClient(srv.URL, srv.Client(), 50*time.Millisecond)
	_, err := client.ListTasks(context.Background())

	var re *service.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestNew_RequiresCredential(t *testing.T) {
	t.Setenv("TODOSYNC_TOKEN", "")
	t.Setenv("TODOIST_API_TOKEN", "")
	cfg, _ := config.New(t.TempDir())

	if _, err := todoist.New(context.Background(), cfg); !errors.Is(err, config.ErrNoCredential) {
		t.Errorf("expected ErrNoCredential, got %v", err)
	}
}
