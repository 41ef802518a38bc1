package submit

// Package submit delivers complaint feedback to the external form endpoint.
// Delivery is fire-and-forget: one attempt per submission, in the background,
// with failures logged and reported but never returned to the caller.
