// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrIncompleteSelection = errors.New("brand and year must both be selected")
	ErrHistoryDisabled     = errors.New("lookup history is disabled")
)
