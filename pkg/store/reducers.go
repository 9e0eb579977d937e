package store

import (
	"log/slog"
	"time"
)

// CombineReducers builds a root reducer where each reducer owns one
// top-level key. A slice reducer receives nil for its key until it has
// produced a value.
func CombineReducers(reducers map[string]Reducer) Reducer {
	return func(state State, action Action) State {
		next := make(State, len(reducers))
		for k, v := range state {
			next[k] = v
		}
		for key, r := range reducers {
			var slice State
			if prev, ok := state[key].(State); ok {
				slice = prev
			}
			next[key] = r(slice, action)
		}
		return next
	}
}

// Logging returns middleware that logs every dispatched action.
func Logging(logger *slog.Logger) Middleware {
	return func(api API, next Dispatch) Dispatch {
		return func(action Action) error {
			start := time.Now()
			err := next(action)
			attrs := []any{
				"store_id", api.ID(),
				"action", action.Type,
				"duration", time.Since(start),
			}
			if err != nil {
				logger.Error("dispatch failed", append(attrs, "error", err)...)
				return err
			}
			logger.Debug("dispatch", attrs...)
			return nil
		}
	}
}
