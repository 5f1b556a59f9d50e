package model

// Package model defines the tracker's domain data: the watch status enum, the
// per-file record and the folder-wide state that shells render and mutate.
