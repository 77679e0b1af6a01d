package web

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/ops"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/workout"
)

func setupTest(t *testing.T) *Handlers {
	t.Helper()

	v, err := vault.Open(t.TempDir())
	if err != nil {
		t.Fatalf("vault.Open: %v", err)
	}

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}

	return &Handlers{
		vault:    v,
		cfg:      config.DefaultConfig(),
		renderer: NewRenderer(templateSub, "test"),
	}
}

// seedWorkout logs one chest session and returns its file name.
func seedWorkout(t *testing.T, h *Handlers) string {
	t.Helper()

	out, err := ops.SaveWorkout(h.vault, h.cfg, ops.SaveWorkoutInput{
		SessionName: "Chest",
		Exercises: []workout.Exercise{
			{Name: "Bench Press", Sets: []workout.Set{
				{Weight: "135lbs", Reps: 8, Done: true},
			}},
		},
		Effort: 6,
		Date:   time.Now().AddDate(0, 0, -3),
	})
	if err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	return out.FileName
}

func TestHandleHistoryEmpty(t *testing.T) {
	h := setupTest(t)

	// An empty vault has no workouts folder yet; the page still renders.
	rec := httptest.NewRecorder()
	h.HandleHistory(rec, httptest.NewRequest(http.MethodGet, "/workouts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No sessions logged yet") {
		t.Error("body missing empty-state message")
	}
}

func TestHandleHistory(t *testing.T) {
	h := setupTest(t)
	seedWorkout(t, h)

	rec := httptest.NewRecorder()
	h.HandleHistory(rec, httptest.NewRequest(http.MethodGet, "/workouts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Chest") {
		t.Error("body missing session display name")
	}
	if !strings.Contains(body, "effort 6") {
		t.Error("body missing effort badge")
	}
}

func TestHandleDetail(t *testing.T) {
	h := setupTest(t)
	fileName := seedWorkout(t, h)

	req := httptest.NewRequest(http.MethodGet, "/workouts/"+fileName, nil)
	req.SetPathValue("file", fileName)
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h3") || !strings.Contains(body, "Bench Press") {
		t.Error("body missing rendered exercise heading")
	}
	if strings.Contains(body, "categories:") {
		t.Error("frontmatter leaked into rendered body")
	}
}

func TestHandleDetailNotFoundJSON(t *testing.T) {
	h := setupTest(t)
	seedWorkout(t, h)

	req := httptest.NewRequest(http.MethodGet, "/workouts/2026-01-01-missing.md", nil)
	req.SetPathValue("file", "2026-01-01-missing.md")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	errorObj, ok := payload["error"].(map[string]any)
	if !ok || errorObj["code"] != "NOT_FOUND" {
		t.Errorf("error payload = %v, want code NOT_FOUND", payload)
	}
}

func TestHandleFresh(t *testing.T) {
	h := setupTest(t)
	seedWorkout(t, h)

	rec := httptest.NewRecorder()
	h.HandleFresh(rec, httptest.NewRequest(http.MethodGet, "/fresh", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// Trained three days ago at effort 6: chest is fresh again.
	if !strings.Contains(rec.Body.String(), "chest") {
		t.Error("body missing fresh muscle")
	}
}

func TestHandleProgression(t *testing.T) {
	h := setupTest(t)
	seedWorkout(t, h)

	rec := httptest.NewRecorder()
	h.HandleProgression(rec, httptest.NewRequest(http.MethodGet, "/progression?exercise=Bench+Press", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "135") {
		t.Error("body missing weight point")
	}

	// No query renders the empty form.
	rec = httptest.NewRecorder()
	h.HandleProgression(rec, httptest.NewRequest(http.MethodGet, "/progression", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := setupTest(t)
	seedWorkout(t, h)

	srv := NewServer(h.vault, h.cfg, "test", "127.0.0.1", 0)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts", nil))

	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("missing X-Frame-Options header")
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing Content-Security-Policy header")
	}
}
