package usecase

import "github.com/google/uuid"

// newID is swapped in tests that need deterministic identifiers.
var newID = uuid.NewString
