package models

// Counter kinds used by the sequence generator. Each kind owns an
// independent, strictly increasing id space.
const (
	CounterUserID      = "userId"
	CounterExerciseID  = "exerciseId"
	CounterFoodEntryID = "foodEntryId"
)

// Counter is a row of the counters table: the last id issued for Name.
type Counter struct {
	Name string `json:"name"`
	Seq  int64  `json:"seq"`
}
