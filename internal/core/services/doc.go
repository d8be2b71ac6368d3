// Package services implements the driving port interfaces.
// Services orchestrate calls to driven ports (adapters) in a fixed order
// and never construct their own infrastructure: every collaborator is
// passed to the constructor.
//
// The first failing collaborator aborts an operation; services do not
// retry or recover.
package services
