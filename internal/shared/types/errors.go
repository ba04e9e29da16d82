package types

import "errors"

var (
	ErrMissingCredentials = errors.New("missing Azure credentials: subscriptionId, directoryId, clientId and clientSecret are required")
	ErrInvalidTagValues   = errors.New("invalid tagValues: expected \"owner\" or \"column\"")
	ErrReservedTagColumn  = errors.New("tag column name is reserved for a report column")
	ErrNotEnoughPeriods   = errors.New("at least two finished billing periods are required")
	ErrMissingIssueToken  = errors.New("no GitHub token provided, cannot publish the report issue")
	ErrMissingRepository  = errors.New("no GitHub repository provided, expected owner/name")
)
