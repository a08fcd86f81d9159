package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/colornav/cnctl/pkg/calibration"
	"github.com/colornav/cnctl/pkg/colormode"
	"github.com/colornav/cnctl/pkg/monitor"
)

// fakeServer is a minimal stand-in for the ColorNavigator API server,
// covering the endpoints the client uses.
type fakeServer struct {
	monitors      []monitor.Monitor
	modes         []colormode.ColorMode
	keyLock       monitor.KeyLockSetting
	lastPatchBody []byte
	lastPutBody   []byte
	lastQuery     map[string]string
	requests      int
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		monitors: []monitor.Monitor{
			{ID: "m0", ModelName: "CG2700X", SerialNumber: "00000001"},
		},
		modes: []colormode.ColorMode{
			{Selected: true, Enabled: true, Index: 0, Name: "User", Type: colormode.TypeStandard},
			{Selected: false, Enabled: true, Index: 1, Name: "CAL", Type: colormode.TypeAdvanced},
			{Selected: false, Enabled: false, Index: 2, Name: "sRGB", Type: colormode.TypeStandard},
		},
		keyLock: monitor.KeyLockOff,
	}
}

func (f *fakeServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests++
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/monitors" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"monitors": f.monitors})

		case r.URL.Path == "/monitors/m0/color-modes" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"colorModes": f.modes})

		case r.URL.Path == "/monitors/m0/color-modes/selected-index" && r.Method == http.MethodPut:
			var body struct {
				Index int `json:"index"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			for i := range f.modes {
				f.modes[i].Selected = f.modes[i].Index == body.Index
			}
			w.WriteHeader(http.StatusOK)

		case strings.HasPrefix(r.URL.Path, "/monitors/m0/color-modes/") && r.Method == http.MethodPatch:
			f.lastPatchBody = mustReadAll(r)
			w.WriteHeader(http.StatusNoContent)

		case r.URL.Path == "/monitors/m0/key-lock" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"keyLock": f.keyLock})

		case r.URL.Path == "/monitors/m0/key-lock" && r.Method == http.MethodPut:
			var body struct {
				KeyLock monitor.KeyLockSetting `json:"keyLock"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.keyLock = body.KeyLock
			w.WriteHeader(http.StatusNoContent)

		case r.URL.Path == "/monitors/m0/pixel-inspection" && r.Method == http.MethodGet:
			f.lastQuery = map[string]string{
				"x":           r.URL.Query().Get("x"),
				"y":           r.URL.Query().Get("y"),
				"show-marker": r.URL.Query().Get("show-marker"),
			}
			_ = json.NewEncoder(w).Encode(monitor.PixelInspection{
				ColorFormat: "RGB",
				RawValue:    map[string]int{"red": 128, "green": 64, "blue": 32},
			})

		case r.URL.Path == "/monitors/m0/pixel-inspection/marker" && r.Method == http.MethodPut:
			f.lastPutBody = mustReadAll(r)
			w.WriteHeader(http.StatusNoContent)

		case r.URL.Path == "/monitors/m0/selfcalibration/execution" && r.Method == http.MethodPut:
			w.WriteHeader(http.StatusOK)

		case r.URL.Path == "/monitors/m0/targets" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"targets": []calibration.Target{{Name: "API_Target"}}})

		case r.URL.Path == "/monitors/m0/targets" && r.Method == http.MethodPost:
			f.lastPutBody = mustReadAll(r)
			w.WriteHeader(http.StatusCreated)

		case r.URL.Path == "/monitors/m0/color-modes/1/target/calibration-results" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"calibrationResults": []calibration.Result{
					{ID: "cal-1", Executor: calibration.ExecutorSelfCalibration, ExecutedAt: "2024-05-01T10:00:00"},
				},
			})

		case r.URL.Path == "/monitors/m0/color-modes/1/target/calibration-results/cal-1/validation-results" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"validationResults": []calibration.ValidationResult{{ID: "val-1"}},
			})

		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Specified URI is not found."})
		}
	})
}

func mustReadAll(r *http.Request) []byte {
	b, _ := io.ReadAll(r.Body)
	return b
}

func newTestClient(t *testing.T) (*Client, *fakeServer) {
	t.Helper()

	f := newFakeServer()
	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c, f
}

func TestListMonitors(t *testing.T) {
	c, _ := newTestClient(t)

	monitors, err := c.ListMonitors(context.Background())
	if err != nil {
		t.Fatalf("ListMonitors returned error: %v", err)
	}
	if len(monitors) != 1 || monitors[0].ID != "m0" {
		t.Fatalf("monitors = %#v, want one monitor with id m0", monitors)
	}
	if got := monitors[0].String(); got != "CG2700X (00000001)" {
		t.Fatalf("String() = %q, want model and serial", got)
	}
}

func TestListMonitors_Empty(t *testing.T) {
	c, f := newTestClient(t)
	f.monitors = nil

	monitors, err := c.ListMonitors(context.Background())
	if err != nil {
		t.Fatalf("ListMonitors returned error: %v", err)
	}
	if len(monitors) != 0 {
		t.Fatalf("monitors = %#v, want empty", monitors)
	}
}

func TestSelectColorMode_RoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if err := c.SelectColorMode(ctx, "m0", 2); err != nil {
		t.Fatalf("SelectColorMode returned error: %v", err)
	}

	modes, err := c.GetColorModes(ctx, "m0")
	if err != nil {
		t.Fatalf("GetColorModes returned error: %v", err)
	}
	for _, mode := range modes {
		if mode.Index == 2 && !mode.Selected {
			t.Fatalf("mode 2 not selected after SelectColorMode: %#v", modes)
		}
		if mode.Index != 2 && mode.Selected {
			t.Fatalf("mode %d still selected after SelectColorMode: %#v", mode.Index, modes)
		}
	}
}

func TestUpdateColorMode_SendsEnableField(t *testing.T) {
	c, f := newTestClient(t)

	enable := true
	settings := colormode.Settings{
		Enable: &enable,
		Name:   "API_Sample",
		Type:   colormode.TypeStandard,
	}
	if err := c.UpdateColorMode(context.Background(), "m0", 3, settings); err != nil {
		t.Fatalf("UpdateColorMode returned error: %v", err)
	}

	body := string(f.lastPatchBody)
	if !strings.Contains(body, `"enable":true`) {
		t.Fatalf("PATCH body = %s, want enable field", body)
	}
	if !strings.Contains(body, `"name":"API_Sample"`) {
		t.Fatalf("PATCH body = %s, want name field", body)
	}
}

func TestKeyLock_GetAndSet(t *testing.T) {
	c, f := newTestClient(t)
	ctx := context.Background()

	setting, err := c.GetKeyLock(ctx, "m0")
	if err != nil {
		t.Fatalf("GetKeyLock returned error: %v", err)
	}
	if setting != monitor.KeyLockOff {
		t.Fatalf("setting = %q, want OFF", setting)
	}

	if err := c.SetKeyLock(ctx, "m0", monitor.KeyLockAll); err != nil {
		t.Fatalf("SetKeyLock returned error: %v", err)
	}
	if f.keyLock != monitor.KeyLockAll {
		t.Fatalf("server key lock = %q, want ALL", f.keyLock)
	}
}

func TestGetPixelInspection_EncodesQuery(t *testing.T) {
	c, f := newTestClient(t)

	info, err := c.GetPixelInspection(context.Background(), "m0", monitor.Position{X: 120, Y: 48}, true)
	if err != nil {
		t.Fatalf("GetPixelInspection returned error: %v", err)
	}

	if f.lastQuery["x"] != "120" || f.lastQuery["y"] != "48" || f.lastQuery["show-marker"] != "true" {
		t.Fatalf("query = %v, want x=120 y=48 show-marker=true", f.lastQuery)
	}
	if info.ColorFormat != "RGB" || info.RawValue["red"] != 128 {
		t.Fatalf("info = %#v, want decoded pixel values", info)
	}
}

func TestSetPixelMarker(t *testing.T) {
	c, f := newTestClient(t)
	ctx := context.Background()

	if err := c.SetPixelMarker(ctx, "m0", monitor.MarkerShow, &monitor.Position{X: 10, Y: 20}); err != nil {
		t.Fatalf("SetPixelMarker(SHOW) returned error: %v", err)
	}
	body := string(f.lastPutBody)
	if !strings.Contains(body, `"marker":"SHOW"`) || !strings.Contains(body, `"position":{"x":10,"y":20}`) {
		t.Fatalf("SHOW body = %s, want marker and position", body)
	}

	if err := c.SetPixelMarker(ctx, "m0", monitor.MarkerHide, nil); err != nil {
		t.Fatalf("SetPixelMarker(HIDE) returned error: %v", err)
	}
	body = string(f.lastPutBody)
	if !strings.Contains(body, `"marker":"HIDE"`) || strings.Contains(body, "position") {
		t.Fatalf("HIDE body = %s, want marker only", body)
	}
}

func TestSetPixelMarker_ShowRequiresPosition(t *testing.T) {
	c, f := newTestClient(t)

	err := c.SetPixelMarker(context.Background(), "m0", monitor.MarkerShow, nil)
	if err == nil {
		t.Fatalf("SetPixelMarker(SHOW, nil) returned nil error, want error")
	}
	if f.requests != 0 {
		t.Fatalf("request was sent despite missing position")
	}
}

func TestCalibrationAndValidationResults(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	calResults, err := c.GetCalibrationResults(ctx, "m0", 1)
	if err != nil {
		t.Fatalf("GetCalibrationResults returned error: %v", err)
	}
	if len(calResults) != 1 || calResults[0].ID != "cal-1" {
		t.Fatalf("calResults = %#v, want one result cal-1", calResults)
	}

	valResults, err := c.GetValidationResults(ctx, "m0", 1, calResults[0].ID)
	if err != nil {
		t.Fatalf("GetValidationResults returned error: %v", err)
	}
	if len(valResults) != 1 || valResults[0].ID != "val-1" {
		t.Fatalf("valResults = %#v, want one result val-1", valResults)
	}
}

func TestTargets_ListAndCreate(t *testing.T) {
	c, f := newTestClient(t)
	ctx := context.Background()

	targets, err := c.ListTargets(ctx, "m0")
	if err != nil {
		t.Fatalf("ListTargets returned error: %v", err)
	}
	if len(targets) != 1 || targets[0].Name != "API_Target" {
		t.Fatalf("targets = %#v, want one target API_Target", targets)
	}

	if err := c.CreateTarget(ctx, "m0", calibration.Target{Name: "New_Target"}); err != nil {
		t.Fatalf("CreateTarget returned error: %v", err)
	}
	if !strings.Contains(string(f.lastPutBody), `"name":"New_Target"`) {
		t.Fatalf("POST body = %s, want target name", f.lastPutBody)
	}
}

func TestSetSelfCalibration(t *testing.T) {
	c, _ := newTestClient(t)

	if err := c.SetSelfCalibration(context.Background(), "m0", calibration.ActionRun); err != nil {
		t.Fatalf("SetSelfCalibration returned error: %v", err)
	}
}
