package tariff

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode     = errors.New("tariff code cannot be empty")
	ErrUnknownRule   = errors.New("unknown tariff timing rule")
	ErrNegativePrice = errors.New("tariff price cannot be negative")
	ErrMissingCutoff = errors.New("fixed-day tariff requires a cutoff time")
)

// TimingRule decides how the rental end is derived from the pickup instant.
type TimingRule string

const (
	// RuleFixedDay ends the rental the same calendar day at a fixed cutoff.
	RuleFixedDay TimingRule = "fixed_day"
	// RuleRolling24h ends the rental exactly 24 hours after pickup.
	RuleRolling24h TimingRule = "rolling_24h"
)

func (r TimingRule) IsValid() bool {
	switch r {
	case RuleFixedDay, RuleRolling24h:
		return true
	default:
		return false
	}
}

// Plan is immutable reference data. The stored price is the single source of
// truth for the estimated total at booking time.
type Plan struct {
	id            uuid.UUID
	code          string
	priceCents    int64
	rule          TimingRule
	cutoffMinutes int32 // minutes from midnight, meaningful only for RuleFixedDay
}

func NewPlan(id uuid.UUID, code string, priceCents int64, rule TimingRule, cutoffMinutes *int32) (Plan, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Plan{}, ErrEmptyCode
	}
	if priceCents < 0 {
		return Plan{}, ErrNegativePrice
	}
	if !rule.IsValid() {
		return Plan{}, ErrUnknownRule
	}

	var cutoff int32
	if rule == RuleFixedDay {
		if cutoffMinutes == nil {
			return Plan{}, ErrMissingCutoff
		}
		cutoff = *cutoffMinutes
	}

	return Plan{
		id:            id,
		code:          code,
		priceCents:    priceCents,
		rule:          rule,
		cutoffMinutes: cutoff,
	}, nil
}

func (p Plan) ID() uuid.UUID    { return p.id }
func (p Plan) Code() string     { return p.code }
func (p Plan) PriceCents() int64 { return p.priceCents }
func (p Plan) Rule() TimingRule { return p.rule }

// WindowFrom computes the rental window for a pickup instant. Fixed-day plans
// end the same calendar day at the plan cutoff regardless of pickup time;
// rolling plans end exactly 24 hours later.
func (p Plan) WindowFrom(pickup time.Time) (start, end time.Time) {
	start = pickup
	if p.rule == RuleFixedDay {
		end = time.Date(
			pickup.Year(), pickup.Month(), pickup.Day(),
			int(p.cutoffMinutes/60), int(p.cutoffMinutes%60), 0, 0,
			pickup.Location(),
		)
		return start, end
	}
	return start, pickup.Add(24 * time.Hour)
}
