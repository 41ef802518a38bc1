package model

// Package model defines domain values shared across the app: languages, ratings,
// screens and the feedback record. Values are small and comparable so the state
// machine and the UI can pass them around by value.
