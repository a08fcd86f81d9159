package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/colornav/cnctl/pkg/calibration"
	"github.com/colornav/cnctl/pkg/colormode"
	"github.com/colornav/cnctl/pkg/monitor"
)

// ListMonitors returns the connected monitors.
func (c *Client) ListMonitors(ctx context.Context) ([]monitor.Monitor, error) {
	var resp struct {
		Monitors []monitor.Monitor `json:"monitors"`
	}
	if err := c.do(ctx, http.MethodGet, "/monitors", nil, nil, &resp); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to list monitors")
	}
	return resp.Monitors, nil
}

// GetColorModes returns all color modes of a monitor.
func (c *Client) GetColorModes(ctx context.Context, monitorID string) ([]colormode.ColorMode, error) {
	var resp struct {
		ColorModes []colormode.ColorMode `json:"colorModes"`
	}
	path := "/monitors/" + monitorID + "/color-modes"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get color modes")
	}
	return resp.ColorModes, nil
}

// GetColorMode returns the color mode at the given index.
func (c *Client) GetColorMode(ctx context.Context, monitorID string, index int) (*colormode.ColorMode, error) {
	var mode colormode.ColorMode
	path := "/monitors/" + monitorID + "/color-modes/" + strconv.Itoa(index)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &mode); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get color mode %d", index)
	}
	return &mode, nil
}

// UpdateColorMode changes the settings of the color mode at the given index.
func (c *Client) UpdateColorMode(ctx context.Context, monitorID string, index int, settings colormode.Settings) error {
	path := "/monitors/" + monitorID + "/color-modes/" + strconv.Itoa(index)
	if err := c.do(ctx, http.MethodPatch, path, nil, settings, nil); err != nil {
		return pkgerrors.Wrapf(err, "failed to change color mode %d settings", index)
	}
	return nil
}

// SelectColorMode makes the color mode at the given index the current one.
func (c *Client) SelectColorMode(ctx context.Context, monitorID string, index int) error {
	body := struct {
		Index int `json:"index"`
	}{Index: index}
	path := "/monitors/" + monitorID + "/color-modes/selected-index"
	if err := c.do(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return pkgerrors.Wrapf(err, "failed to select color mode %d", index)
	}
	return nil
}

// GetCalibrationResults returns the calibration results recorded for the
// target of the color mode at the given index.
func (c *Client) GetCalibrationResults(ctx context.Context, monitorID string, index int) ([]calibration.Result, error) {
	var resp struct {
		CalibrationResults []calibration.Result `json:"calibrationResults"`
	}
	path := "/monitors/" + monitorID + "/color-modes/" + strconv.Itoa(index) + "/target/calibration-results"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get calibration results of color mode %d", index)
	}
	return resp.CalibrationResults, nil
}

// GetValidationResults returns the validation results recorded against one
// calibration result.
func (c *Client) GetValidationResults(ctx context.Context, monitorID string, index int, calibrationResultID string) ([]calibration.ValidationResult, error) {
	var resp struct {
		ValidationResults []calibration.ValidationResult `json:"validationResults"`
	}
	path := "/monitors/" + monitorID + "/color-modes/" + strconv.Itoa(index) +
		"/target/calibration-results/" + calibrationResultID + "/validation-results"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get validation results of calibration result %s", calibrationResultID)
	}
	return resp.ValidationResults, nil
}

// GetKeyLock returns the current key lock setting.
func (c *Client) GetKeyLock(ctx context.Context, monitorID string) (monitor.KeyLockSetting, error) {
	var resp struct {
		KeyLock monitor.KeyLockSetting `json:"keyLock"`
	}
	path := "/monitors/" + monitorID + "/key-lock"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get key lock setting")
	}
	return resp.KeyLock, nil
}

// SetKeyLock changes the key lock setting.
func (c *Client) SetKeyLock(ctx context.Context, monitorID string, setting monitor.KeyLockSetting) error {
	body := struct {
		KeyLock monitor.KeyLockSetting `json:"keyLock"`
	}{KeyLock: setting}
	path := "/monitors/" + monitorID + "/key-lock"
	if err := c.do(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return pkgerrors.Wrapf(err, "failed to change key lock setting to %s", setting)
	}
	return nil
}

// GetPixelInspection reads the pixel at the given coordinate, optionally
// showing the cross marker there.
func (c *Client) GetPixelInspection(ctx context.Context, monitorID string, pos monitor.Position, showMarker bool) (*monitor.PixelInspection, error) {
	query := url.Values{}
	query.Set("x", strconv.Itoa(pos.X))
	query.Set("y", strconv.Itoa(pos.Y))
	query.Set("show-marker", strconv.FormatBool(showMarker))

	var info monitor.PixelInspection
	path := "/monitors/" + monitorID + "/pixel-inspection"
	if err := c.do(ctx, http.MethodGet, path, query, nil, &info); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get pixel information at (%d, %d)", pos.X, pos.Y)
	}
	return &info, nil
}

// SetPixelMarker changes the pixel-inspection cross marker state. A SHOW
// request must carry the marker position.
func (c *Client) SetPixelMarker(ctx context.Context, monitorID string, state monitor.MarkerState, pos *monitor.Position) error {
	if state == monitor.MarkerShow && pos == nil {
		return fmt.Errorf("marker position is required to show the cross marker")
	}

	body := struct {
		Marker   monitor.MarkerState `json:"marker"`
		Position *monitor.Position   `json:"position,omitempty"`
	}{Marker: state}
	if state == monitor.MarkerShow {
		body.Position = pos
	}

	path := "/monitors/" + monitorID + "/pixel-inspection/marker"
	if err := c.do(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return pkgerrors.Wrapf(err, "failed to change the cross marker state to %s", state)
	}
	return nil
}

// SetSelfCalibration starts or stops the SelfCalibration routine.
func (c *Client) SetSelfCalibration(ctx context.Context, monitorID string, action calibration.SelfCalibrationAction) error {
	body := struct {
		Action calibration.SelfCalibrationAction `json:"action"`
	}{Action: action}
	path := "/monitors/" + monitorID + "/selfcalibration/execution"
	if err := c.do(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return pkgerrors.Wrapf(err, "failed to %s SelfCalibration", action)
	}
	return nil
}

// ListTargets returns the calibration targets stored on a monitor.
func (c *Client) ListTargets(ctx context.Context, monitorID string) ([]calibration.Target, error) {
	var resp struct {
		Targets []calibration.Target `json:"targets"`
	}
	path := "/monitors/" + monitorID + "/targets"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get calibration targets")
	}
	return resp.Targets, nil
}

// CreateTarget stores a new calibration target on a monitor.
func (c *Client) CreateTarget(ctx context.Context, monitorID string, target calibration.Target) error {
	path := "/monitors/" + monitorID + "/targets"
	if err := c.do(ctx, http.MethodPost, path, nil, target, nil); err != nil {
		return pkgerrors.Wrapf(err, "failed to create calibration target")
	}
	return nil
}
