//
// Copyright (C) 2025 The ragscore Authors.  All rights reserved.
//
// ragscore is licensed under the Apache License Version 2.0.
//
//

package evaluation

import "errors"

// Error taxonomy for evaluation calls.
//
// ErrInvalidRequest is a caller error and is never retried. A provider
// outage surfaces as similarity.ErrProviderUnavailable inside the gateway
// and degrades the affected metric to its neutral default; it never fails
// the call. ErrInternal aborts only the affected request.
var (
	// ErrInvalidRequest reports a missing or empty required request field.
	ErrInvalidRequest = errors.New("evaluation: invalid request")
	// ErrInternal reports an unexpected programming or data error.
	ErrInternal = errors.New("evaluation: internal error")
)
