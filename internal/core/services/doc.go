// Package services implements the driving port interfaces.
// NormaliserService runs the stage pipeline and computes metrics;
// SettingsService maps persisted key/value settings onto domain types.
//
// Services depend only on domain types and driven ports.
package services
