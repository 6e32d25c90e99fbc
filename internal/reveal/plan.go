package reveal

type StepKind string

const (
	StepRoll     StepKind = "roll"
	StepEvaluate StepKind = "evaluate"
)

// Step fires At units after the sequence starts. Index counts rolls from 1.
type Step struct {
	Kind  StepKind
	At    int
	Index int
}

var Plan = []Step{
	// Intermediate reveals
	{Kind: StepRoll, At: 1, Index: 1},
	{Kind: StepRoll, At: 2, Index: 2},
	{Kind: StepRoll, At: 3, Index: 3},
	{Kind: StepRoll, At: 4, Index: 4},
	{Kind: StepRoll, At: 5, Index: 5},
	// Evaluation, two units after the last reveal
	{Kind: StepEvaluate, At: 7},
}
