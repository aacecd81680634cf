package model

// Package model defines domain data structures used across the app: the
// internal clipboard entry, paste/delete outcomes, and file listing entries.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
