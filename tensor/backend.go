// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/lazynn/internal/tensor"

// Backend defines the numeric operations layers are written against.
// Every result is a fresh tensor rounded to the backend's Floatx.
//
// Implementations:
//   - backend/cpu: Pure Go on top of gonum
//
// Example:
//
//	import (
//	    "github.com/born-ml/lazynn/tensor"
//	    "github.com/born-ml/lazynn/backend/cpu"
//	)
//
//	var backend tensor.Backend = cpu.New()
//	y, err := backend.Dot(x, w) // (32, 5) · (5, 10) → (32, 10)
type Backend = tensor.Backend
