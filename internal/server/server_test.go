package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/midbel/cycles"
	"github.com/midbel/cycles/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var base = time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC)

func testServer() *Server {
	cs := cycles.Cycles{
		{Start: base, End: base.Add(6 * time.Hour), Arrival: "fast"},
		{Start: base.Add(24 * time.Hour), End: base.Add(30 * time.Hour), Arrival: "late"},
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(config.Default().Chart, cs, logrus.NewEntry(log))
}

func do(t *testing.T, h http.Handler, method, target string) (int, map[string]any) {
	t.Helper()
	var (
		req = httptest.NewRequest(method, target, nil)
		rec = httptest.NewRecorder()
	)
	h.ServeHTTP(rec, req)
	var body map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %s", err)
		}
	}
	return rec.Code, body
}

func TestFocusRoutes(t *testing.T) {
	var (
		srv = testServer()
		r   = srv.Router()
		at  = "/focus?at=" + strconv.FormatInt(base.UnixMilli(), 10)
	)
	code, body := do(t, r, http.MethodPost, at)
	if code != http.StatusOK || body["changed"] != true {
		t.Fatalf("first move should change the focus: %d %v", code, body)
	}
	_, body = do(t, r, http.MethodPost, at)
	if body["changed"] != false {
		t.Errorf("second move over the same cycle should not change the focus: %v", body)
	}
	if f, ok := srv.snapshot().Current(); !ok || !f.Equal(base) {
		t.Errorf("focus mismatched! got %s", f)
	}
	_, body = do(t, r, http.MethodDelete, "/focus")
	if body["changed"] != true {
		t.Errorf("clear should report the previous focus: %v", body)
	}
	if _, ok := srv.snapshot().Current(); ok {
		t.Errorf("focus should be cleared")
	}
}

func TestFocusInvalid(t *testing.T) {
	r := testServer().Router()
	if code, _ := do(t, r, http.MethodPost, "/focus?at=now"); code != http.StatusBadRequest {
		t.Errorf("bad request expected, got %d", code)
	}
	if code, _ := do(t, r, http.MethodPost, "/focus?at=42"); code != http.StatusNotFound {
		t.Errorf("not found expected, got %d", code)
	}
}

func TestChartSVG(t *testing.T) {
	r := testServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/chart.svg?width=480", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type mismatched! got %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Errorf("svg document expected")
	}
	if code, _ := do(t, r, http.MethodGet, "/chart.svg?width=-1"); code != http.StatusBadRequest {
		t.Errorf("bad request expected for negative width, got %d", code)
	}
}

func TestListCycles(t *testing.T) {
	var (
		r   = testServer().Router()
		req = httptest.NewRequest(http.MethodGet, "/cycles", nil)
		rec = httptest.NewRecorder()
	)
	r.ServeHTTP(rec, req)
	var list []cycleView
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[1].Arrival != "late" {
		t.Fatalf("cycles mismatched: %+v", list)
	}
}
