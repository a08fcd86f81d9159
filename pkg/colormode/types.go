package colormode

import (
	"fmt"

	"github.com/colornav/cnctl/pkg/calibration"
)

// Type is the kind of a color mode.
type Type string

const (
	TypeStandard   Type = "STANDARD"
	TypeSyncSignal Type = "SYNCSIGNAL"
	TypeAdvanced   Type = "ADVANCED"
)

// ColorMode is one entry of a monitor's color mode list, as returned by the
// API. ADVANCED modes carry a calibration target; STANDARD and SYNCSIGNAL
// modes carry parameters directly.
type ColorMode struct {
	Selected   bool                `json:"selected"`
	Enabled    bool                `json:"enabled"`
	Index      int                 `json:"index"`
	Name       string              `json:"name"`
	Type       Type                `json:"type"`
	Target     *calibration.Target `json:"target,omitempty"`
	Parameters *Parameters         `json:"parameters,omitempty"`
}

// Settings is the PATCH body for changing a color mode. The request field
// is "enable" while responses report "enabled".
type Settings struct {
	Enable     *bool       `json:"enable,omitempty"`
	Name       string      `json:"name,omitempty"`
	Type       Type        `json:"type,omitempty"`
	Parameters *Parameters `json:"parameters,omitempty"`
}

// Parameters are the display parameters of a STANDARD or SYNCSIGNAL mode.
type Parameters struct {
	Type       Type        `json:"type"`
	Brightness *Brightness `json:"brightness,omitempty"`
	BlackLevel *BlackLevel `json:"blackLevel,omitempty"`
	WhitePoint *WhitePoint `json:"whitePoint,omitempty"`
	Gamma      *Gamma      `json:"gamma,omitempty"`
	Gamut      *Gamut      `json:"gamut,omitempty"`
}

type Brightness struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type BlackLevel struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value,omitempty"`
}

// WhitePoint value is either a standard illuminant name ("D65") or a color
// temperature in Kelvin, depending on Type.
type WhitePoint struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type Gamma struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type Gamut struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Clipping bool   `json:"clipping"`
}

// ParseIndex validates a color mode index. Monitors expose at most 10 modes.
func ParseIndex(i int) (int, error) {
	if i < 0 || i > 9 {
		return 0, fmt.Errorf("color mode index %d is out of the range of 0 to 9", i)
	}
	return i, nil
}
