// Package progress derives everything the surfaces show about a student's
// position in a course: the next topic, per-topic status labels, completion
// status against the live catalog and the aggregate counts behind the
// dashboard charts.
//
// All functions are pure. Callers pass snapshots in and get derived values
// back; persisting the result is the enrollment service's job.
package progress
