package gitvend

import "gitvend/internal/engine"

// Type aliases re-export engine result types as the public API.

type Result = engine.Result
type DependencyError = engine.DependencyError
type CheckResult = engine.CheckResult
