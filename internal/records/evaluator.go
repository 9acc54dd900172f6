// Package records implements personal-record detection: a pure evaluator
// that derives candidate metric values from a logged set, and a ledger that
// atomically keeps the best-ever value per (user, exercise, record type).
package records

// RecordType identifies one derived performance metric tracked per
// (user, exercise) pair. New record types are added by extending this
// enumeration and the Evaluate table.
type RecordType string

const (
	MaxWeight          RecordType = "max_weight"
	MaxReps            RecordType = "max_reps"
	EstimatedOneRepMax RecordType = "estimated_one_rep_max"
	MaxVolume          RecordType = "max_volume"
)

// Order is the fixed evaluation order. Ledger writes for a multi-PR set
// always happen in this order so concurrent submissions resolve
// deterministically.
var Order = []RecordType{MaxWeight, MaxReps, EstimatedOneRepMax, MaxVolume}

// Candidate is one record-type value produced by a single set.
type Candidate struct {
	Type  RecordType
	Value float64
}

// Evaluate computes the candidate values for one set. Higher is better for
// every record type. A set with zero reps is a failed or incomplete set and
// yields no candidates at all.
func Evaluate(reps int, weight float64) []Candidate {
	if reps < 1 {
		return nil
	}
	return []Candidate{
		{Type: MaxWeight, Value: weight},
		{Type: MaxReps, Value: float64(reps)},
		// Epley estimate: weight * (1 + reps/30).
		{Type: EstimatedOneRepMax, Value: weight * (1 + float64(reps)/30)},
		{Type: MaxVolume, Value: weight * float64(reps)},
	}
}
