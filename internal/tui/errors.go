// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/validators"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// humanizeError turns adapter and validation errors into UI messages.
func humanizeError(err error) string {
	var vErr *validators.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr):
		if vErr.Field == "" {
			return vErr.Error()
		}
		return vErr.Field + ": " + vErr.Error()
	case errors.Is(err, adapter.ErrConflict):
		return "Пользователь с таким именем уже существует"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Неверный логин или пароль, либо сессия истекла"
	case errors.Is(err, adapter.ErrNotFound):
		return "Запись не найдена"
	}

	return humanizeServerUnavailableError(err)
}
