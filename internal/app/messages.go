package app

import (
	"errors"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
)

// ListErrorMessage describes a failed list fetch of res for display.
func ListErrorMessage(res *resource.Resource, err error) string {
	if errors.Is(err, domain.ErrNotConfigured) {
		return MsgNotConfigured
	}
	if detail, ok := domain.DetailOf(err); ok {
		return res.ListFailedMessage(detail)
	}
	return res.ListUnknownErrorMessage()
}

// DeleteErrorMessage describes a failed delete of a res record for display.
func DeleteErrorMessage(res *resource.Resource, err error) string {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return MsgNotConfigured
	case errors.Is(err, domain.ErrReadOnly):
		return MsgReadOnlyForm
	}
	if detail, ok := domain.DetailOf(err); ok {
		return res.DeleteFailedMessage(detail)
	}
	return res.DeleteUnknownErrorMessage()
}
