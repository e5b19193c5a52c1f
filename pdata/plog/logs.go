// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package plog // import "go.opentelemetry.io/jsonline/pdata/plog"

import (
	"go.opentelemetry.io/jsonline/pdata/pcommon"
)

// Logs is a batch of records emitted by a single Resource.
type Logs struct {
	Resource pcommon.Resource
	Records  []Record
}

// NewLogs pairs a batch of records with the Resource that emitted them.
func NewLogs(res pcommon.Resource, records []Record) Logs {
	return Logs{Resource: res, Records: records}
}

// LogRecordCount returns the number of records in the batch.
func (ld Logs) LogRecordCount() int {
	return len(ld.Records)
}

// ScopeLogs is the group of records sharing a CategoryName.
type ScopeLogs struct {
	Name    string
	Records []Record
}

// GroupByScope partitions records by CategoryName. Groups appear in the order
// their category was first seen, and records keep their batch order inside a
// group.
func GroupByScope(records []Record) []ScopeLogs {
	var groups []ScopeLogs
	index := make(map[string]int)
	for _, lr := range records {
		i, ok := index[lr.CategoryName]
		if !ok {
			i = len(groups)
			index[lr.CategoryName] = i
			groups = append(groups, ScopeLogs{Name: lr.CategoryName})
		}
		groups[i].Records = append(groups[i].Records, lr)
	}
	return groups
}
