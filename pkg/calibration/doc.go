// Package calibration defines the types shared by the calibration-related
// API endpoints. It contains:
//
//   - Target: a stored calibration target and its parameters
//   - Result / ValidationResult: recorded calibration and validation runs
//   - SelfCalibrationAction: the RUN/STOP actions of the monitor-internal
//     SelfCalibration routine
//
// These types mirror the JSON contracts of the ColorNavigator API so the
// client and commands share one set of definitions.
package calibration
