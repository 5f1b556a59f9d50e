package store

// Package store persists a folder's TrackerState as a hidden JSON file inside
// that folder. Loading is fail-soft: any problem with the file yields default
// records for the scanned videos. Saving rewrites the whole file atomically.
