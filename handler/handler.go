// Package handler provides reusable consumers for engine progress events.
package handler

import (
	"errors"

	"github.com/hupe1980/randhunt/engine"
)

// Multi fans one event out to several handlers. Every handler sees every
// event; errors are joined.
func Multi(handlers ...engine.ProgressHandler) engine.ProgressHandler {
	return func(ev engine.ProgressEvent) error {
		var errs []error
		for _, h := range handlers {
			if h == nil {
				continue
			}
			if err := h(ev); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}
