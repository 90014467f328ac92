// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ReportStatus is the processing stage of a [Report].
//
// The zero value is not a valid status. Values coming from JSON, SQL or query
// strings are parsed through [ParseReportStatus], so an unknown status never
// reaches the service layer.
type ReportStatus string

const (
	// StatusUploaded is the initial status of every freshly created report.
	StatusUploaded ReportStatus = "UPLOADED"
	// StatusProcessing marks a report whose content is being worked on.
	StatusProcessing ReportStatus = "PROCESSING"
	// StatusCompleted is terminal.
	StatusCompleted ReportStatus = "COMPLETED"
)

// ErrUnknownReportStatus is returned when a value does not name any
// [ReportStatus].
var ErrUnknownReportStatus = errors.New("unknown report status")

// allowedTransitions is the adjacency table of the report workflow.
// A status missing from the table (or mapped to an empty set) has no
// outgoing edges.
var allowedTransitions = map[ReportStatus]map[ReportStatus]struct{}{
	StatusUploaded:   {StatusProcessing: {}},
	StatusProcessing: {StatusCompleted: {}},
	StatusCompleted:  {},
}

// IsValidTransition reports whether a report may move from current to
// proposed. Self-loops, skips, backward moves and unknown statuses are all
// rejected.
func IsValidTransition(current, proposed ReportStatus) bool {
	next, ok := allowedTransitions[current]
	if !ok {
		return false
	}

	_, ok = next[proposed]
	return ok
}

// AllReportStatuses returns every status in workflow order.
func AllReportStatuses() []ReportStatus {
	return []ReportStatus{StatusUploaded, StatusProcessing, StatusCompleted}
}

// ParseReportStatus converts s into a [ReportStatus]. Matching ignores case
// and surrounding whitespace.
func ParseReportStatus(s string) (ReportStatus, error) {
	status := ReportStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownReportStatus, s)
	}

	return status, nil
}

// IsValid reports whether s is one of the known statuses.
func (s ReportStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// String implements [fmt.Stringer].
func (s ReportStatus) String() string {
	return string(s)
}

// MarshalJSON implements [json.Marshaler].
func (s ReportStatus) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportStatus, string(s))
	}

	return json.Marshal(string(s))
}

// UnmarshalJSON implements [json.Unmarshaler] and rejects unknown values.
func (s *ReportStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	status, err := ParseReportStatus(raw)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// Value implements [driver.Valuer].
func (s ReportStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportStatus, string(s))
	}

	return string(s), nil
}

// Scan implements [sql.Scanner].
func (s *ReportStatus) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into ReportStatus", src)
	}

	status, err := ParseReportStatus(raw)
	if err != nil {
		return err
	}

	*s = status
	return nil
}
