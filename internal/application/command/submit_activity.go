// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUBMIT ACTIVITY COMMAND
// Records one activity submission: validate against the catalog, append to
// the event store, recompute totals, evaluate newly crossed milestones.
// The whole submission is one sequential unit of work.
// ══════════════════════════════════════════════════════════════════════════════

// DefaultMaxCount is the default per-submission maximum.
const DefaultMaxCount = 10000

// SubmitActivityCommand contains one raw submission as received from the
// transport layer.
type SubmitActivityCommand struct {
	// UserID is the bot-assigned numeric identifier of the submitter.
	UserID activity.UserID

	// Username is the submitter's display name; may be empty.
	Username string

	// ActivityKey selects the catalog activity (e.g. "pushup").
	ActivityKey string

	// RawCount is the unparsed count text from the command arguments.
	RawCount string
}

// SubmitActivityResult contains the outcome of an accepted submission.
type SubmitActivityResult struct {
	// Event is the stored submission.
	Event activity.Event

	// Count is the parsed submission magnitude.
	Count int64

	// Stats is the submitter's full per-activity stats after the append.
	Stats activity.UserStats

	// NewMilestones lists the milestones first crossed by this submission,
	// in ascending order.
	NewMilestones []int64

	// Messages holds one achievement message per entry of NewMilestones,
	// in the same order.
	Messages []string
}

// SubmitActivityHandler handles the SubmitActivityCommand.
type SubmitActivityHandler struct {
	catalog    *activity.Catalog
	store      activity.EventStore
	aggregator *activity.Aggregator
	tracker    *activity.Tracker

	// maxCount is the per-submission maximum (inclusive).
	maxCount int64
}

// NewSubmitActivityHandler creates a new SubmitActivityHandler. A maxCount
// of zero falls back to DefaultMaxCount.
func NewSubmitActivityHandler(
	catalog *activity.Catalog,
	store activity.EventStore,
	aggregator *activity.Aggregator,
	tracker *activity.Tracker,
	maxCount int64,
) *SubmitActivityHandler {
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}
	return &SubmitActivityHandler{
		catalog:    catalog,
		store:      store,
		aggregator: aggregator,
		tracker:    tracker,
		maxCount:   maxCount,
	}
}

// MaxCount returns the configured per-submission maximum.
func (h *SubmitActivityHandler) MaxCount() int64 {
	return h.maxCount
}

// parseCount validates the raw count text. No state is mutated on a
// validation failure.
func (h *SubmitActivityHandler) parseCount(raw string) (int64, error) {
	count, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, activity.ErrInvalidFormat
	}
	if count <= 0 {
		return 0, activity.ErrNonPositiveCount
	}
	if count > h.maxCount {
		return 0, activity.ErrCountTooLarge
	}
	return count, nil
}

// Handle executes the submission pipeline. Validation failures return a
// user input error and leave no state behind. Once the event is appended
// it is never rolled back: achievements are best-effort on top of the
// durable event log, and a storage failure during evaluation propagates
// so the caller does not report partial success.
func (h *SubmitActivityHandler) Handle(ctx context.Context, cmd SubmitActivityCommand) (*SubmitActivityResult, error) {
	if _, ok := h.catalog.Lookup(cmd.ActivityKey); !ok {
		return nil, fmt.Errorf("submit %q: %w", cmd.ActivityKey, activity.ErrUnknownActivity)
	}

	count, err := h.parseCount(cmd.RawCount)
	if err != nil {
		return nil, fmt.Errorf("submit %s: %w", cmd.ActivityKey, err)
	}

	event, err := h.store.Append(ctx, cmd.ActivityKey, cmd.UserID, cmd.Username, count)
	if err != nil {
		return nil, fmt.Errorf("submit %s: %w", cmd.ActivityKey, err)
	}

	stats, err := h.aggregator.UserStats(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("submit %s: %w", cmd.ActivityKey, err)
	}

	milestones, err := h.tracker.Evaluate(ctx, cmd.UserID, cmd.Username, cmd.ActivityKey, stats[cmd.ActivityKey].Total)
	if err != nil {
		return nil, fmt.Errorf("submit %s: %w", cmd.ActivityKey, err)
	}

	messages := make([]string, len(milestones))
	for i, m := range milestones {
		messages[i] = h.tracker.MessageFor(cmd.ActivityKey, m)
	}

	return &SubmitActivityResult{
		Event:         event,
		Count:         count,
		Stats:         stats,
		NewMilestones: milestones,
		Messages:      messages,
	}, nil
}

// IsUserInputError reports whether the error is recoverable user input
// (unknown activity, unparsable or out-of-range count) as opposed to a
// storage failure.
func IsUserInputError(err error) bool {
	return errors.Is(err, activity.ErrUnknownActivity) ||
		errors.Is(err, activity.ErrInvalidFormat) ||
		errors.Is(err, activity.ErrNonPositiveCount) ||
		errors.Is(err, activity.ErrCountTooLarge)
}
