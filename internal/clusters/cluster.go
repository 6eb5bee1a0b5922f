package clusters

// Type identifies the failure mode a cluster represents.
type Type string

const (
	TypeConfusion Type = "confusion"
	TypeFatigue   Type = "fatigue-acceleration"
	TypeFailure   Type = "high-failure"
	TypeMismatch  Type = "bloom-mismatch"
	TypeTime      Type = "time"
)

// AllTypes returns the cluster taxonomy in detection order.
func AllTypes() []Type {
	return []Type{TypeConfusion, TypeFatigue, TypeFailure, TypeMismatch, TypeTime}
}

// DisplayName returns a human-readable label for the cluster type.
func (t Type) DisplayName() string {
	switch t {
	case TypeConfusion:
		return "Confusion Cluster"
	case TypeFatigue:
		return "Fatigue Acceleration"
	case TypeFailure:
		return "High Failure Zone"
	case TypeMismatch:
		return "Cognitive-Level Mismatch"
	case TypeTime:
		return "Pacing Overrun"
	default:
		return string(t)
	}
}

// Cluster is one detected anomaly: a contiguous run or population-wide
// set of problems flagged along a single metric dimension.
type Cluster struct {
	Type             Type
	ProblemIDs       []string
	Start, End       int // indices into the metrics list, inclusive
	Severity         float64
	AffectedLearners int
	Evidence         string
}
