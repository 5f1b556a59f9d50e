package tracker

// Package tracker turns user actions into state changes. Every shell sends
// one Event per action to Service.Dispatch, which applies it to the in-memory
// TrackerState and persists the result synchronously. The package knows
// nothing about the UI toolkit in use.
