// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// BookingRequest is the predicate function for bookingrequest builders.
type BookingRequest func(*sql.Selector)

// InsightSnapshot is the predicate function for insightsnapshot builders.
type InsightSnapshot func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)
