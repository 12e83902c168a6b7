// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

package tui

import (
	"errors"
	"strings"

	"github.com/dchas/praxis/internal/adapter"
)

func humanizeAdapterError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Wrong login or password"
	case errors.Is(err, adapter.ErrConflict):
		return "An account with this login already exists"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the account store is unavailable"
	}

	return err.Error()
}
