// Package diagnostic carries warnings and notes produced while classifying
// fields and synthesizing copy code.
//
// Nothing in the generator logs globally. Every component that can report
// something takes a Sink; the CLI wires a zap-backed sink, tests use a
// Collector.
package diagnostic
