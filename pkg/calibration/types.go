package calibration

import (
	"encoding/json"
	"fmt"
)

// SelfCalibrationAction defines user actions for the monitor-internal
// SelfCalibration routine.
type SelfCalibrationAction string

const (
	ActionRun  SelfCalibrationAction = "RUN"
	ActionStop SelfCalibrationAction = "STOP"
)

// ParseSelfCalibrationAction converts a user-supplied string into a
// SelfCalibrationAction.
func ParseSelfCalibrationAction(s string) (SelfCalibrationAction, error) {
	switch SelfCalibrationAction(s) {
	case ActionRun, ActionStop:
		return SelfCalibrationAction(s), nil
	}
	return "", fmt.Errorf("invalid SelfCalibration action %q (must be RUN or STOP)", s)
}

// Executor identifies what performed a calibration.
type Executor string

const (
	ExecutorColorNavigator  Executor = "COLORNAVIGATOR"
	ExecutorSelfCalibration Executor = "SELFCALIBRATION"
)

// Target is a stored calibration target: the desired color characteristics
// a monitor is calibrated toward.
type Target struct {
	ID                         string           `json:"id,omitempty"`
	Name                       string           `json:"name"`
	ColorModeName              string           `json:"colorModeName,omitempty"`
	Parameters                 TargetParameters `json:"parameters"`
	ProfileUpdateRule          string           `json:"profileUpdateRule,omitempty"`
	ProfilePolicy              *ProfilePolicy   `json:"profilePolicy,omitempty"`
	UseTargetNameAsProfileName bool             `json:"useTargetNameAsProfileName"`
	Protection                 bool             `json:"protection"`
}

// TargetParameters are the color characteristics of a calibration target.
type TargetParameters struct {
	Brightness            *ValueWithType `json:"brightness,omitempty"`
	BlackLevel            *ValueWithType `json:"blackLevel,omitempty"`
	WhitePoint            *ValueWithType `json:"whitePoint,omitempty"`
	Gamma                 *ValueWithType `json:"gamma,omitempty"`
	Gamut                 *Gamut         `json:"gamut,omitempty"`
	CalibrationPolicy     string         `json:"calibrationPolicy,omitempty"`
	SixColors             *SixColors     `json:"sixColors,omitempty"`
	OptimizeForLimited109 bool           `json:"optimizeForLimited109"`
}

// ValueWithType is a typed target parameter. Value is a number, a string
// (e.g. a standard illuminant name) or absent, depending on Type.
type ValueWithType struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

type Gamut struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Clipping bool   `json:"clipping"`
}

// HSL is one six-color adjustment entry.
type HSL struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Lightness  int `json:"lightness"`
}

type SixColors struct {
	Red     HSL `json:"red"`
	Green   HSL `json:"green"`
	Blue    HSL `json:"blue"`
	Cyan    HSL `json:"cyan"`
	Magenta HSL `json:"magenta"`
	Yellow  HSL `json:"yellow"`
}

// ProfilePolicy controls how ICC profiles are generated for a target.
type ProfilePolicy struct {
	ProfileVersion    string `json:"profileVersion"`
	ToneCurve         string `json:"toneCurve"`
	ReflectBlackLevel bool   `json:"reflectBlackLevel"`
}

// Result is one calibration run recorded for a color mode's target. The
// measurement payloads are kept raw: the CLI only displays them and their
// schema is owned by the server.
type Result struct {
	ID                    string          `json:"id"`
	Executor              Executor        `json:"executor"`
	ColorNavigatorVersion string          `json:"colorNavigatorVersion,omitempty"`
	ErrorCode             int             `json:"errorCode,omitempty"`
	CalibrationData       json.RawMessage `json:"calibrationData,omitempty"`
	MeasurementData       json.RawMessage `json:"measurementData,omitempty"`
	ExecutedAt            string          `json:"executedAt"`
	MonitorInformation    json.RawMessage `json:"monitorInformation,omitempty"`
	SensorInformation     json.RawMessage `json:"sensorInformation,omitempty"`
}

// ValidationResult is one validation run recorded against a calibration
// result.
type ValidationResult struct {
	ID                 string          `json:"id"`
	MeasurementData    json.RawMessage `json:"measurementData,omitempty"`
	Statistics         json.RawMessage `json:"statistics,omitempty"`
	ValidationResult   json.RawMessage `json:"validationResult,omitempty"`
	CalibrationData    json.RawMessage `json:"calibrationData,omitempty"`
	ExecutedAt         string          `json:"executedAt"`
	MonitorInformation json.RawMessage `json:"monitorInformation,omitempty"`
	SensorInformation  json.RawMessage `json:"sensorInformation,omitempty"`

	// Whether the measured values were converted to under-D50-illuminant
	// values before being stored.
	IsConvertedMeasurementDataUnderD50Illuminant bool `json:"isConvertedMeasurementDataUnderD50Illuminant"`
}
