// Package convert runs the audio-to-MP4 conversion pipeline.
//
// A conversion is a fixed, linear sequence of fallible steps:
//
//	validate-args -> check-encoder -> ensure-placeholder -> run-conversion -> check-result
//
// Each step runs exactly once and the first failure ends the run. Failures
// are tagged with one of the exported marker errors so callers can classify
// them with errors.Is. An optional probe of the produced file follows a
// successful run and never fails it.
package convert
