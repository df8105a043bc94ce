package events

import (
	"log/slog"
	"time"
)

// PublishWithRetry attempts to publish an event, backing off exponentially
// between attempts. It returns the error from the final attempt.
//
// Publishing is best effort: callers log the error and carry on, since a
// missed notification never affects saved board state.
func PublishWithRetry(publisher EventPublisher, event Event, maxRetries int) error {
	if publisher == nil {
		return nil
	}

	var lastErr error
	baseDelay := 10 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := publisher.SendEvent(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"event_type", event.Type)
			}
			return nil
		}

		lastErr = err
		if err == ErrClosed {
			break
		}

		if attempt < maxRetries-1 {
			delay := baseDelay * (1 << attempt)
			slog.Debug("event publish failed, retrying",
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	if lastErr != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"error", lastErr)
	}

	return lastErr
}
