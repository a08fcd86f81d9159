package monitor

import "fmt"

// Monitor is one entry of the connected monitor list.
type Monitor struct {
	ID           string `json:"id"`
	ModelName    string `json:"modelName"`
	SerialNumber string `json:"serialNumber"`
}

func (m Monitor) String() string {
	return fmt.Sprintf("%s (%s)", m.ModelName, m.SerialNumber)
}

// KeyLockSetting controls which physical monitor buttons are locked.
type KeyLockSetting string

const (
	KeyLockOff  KeyLockSetting = "OFF"
	KeyLockMenu KeyLockSetting = "MENU"
	KeyLockAll  KeyLockSetting = "ALL"
)

// ParseKeyLockSetting converts a user-supplied string into a KeyLockSetting.
func ParseKeyLockSetting(s string) (KeyLockSetting, error) {
	switch KeyLockSetting(s) {
	case KeyLockOff, KeyLockMenu, KeyLockAll:
		return KeyLockSetting(s), nil
	}
	return "", fmt.Errorf("invalid key lock setting %q (must be OFF, MENU or ALL)", s)
}

// MarkerState is the pixel-inspection cross marker state.
type MarkerState string

const (
	MarkerShow MarkerState = "SHOW"
	MarkerHide MarkerState = "HIDE"
)

// Position is a pixel coordinate on the monitor.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PixelInspection describes a single pixel as the monitor receives and
// displays it. RawValue and ConvertedRGBFull are keyed by channel name;
// the keys depend on the signal color format (RGB vs YCbCr).
type PixelInspection struct {
	ColorFormat      string         `json:"colorFormat"`
	HDCP             bool           `json:"hdcp"`
	Position         Position       `json:"position"`
	RawValue         map[string]int `json:"rawValue"`
	ConvertedRGBFull map[string]int `json:"convertedRgbFull"`
}
