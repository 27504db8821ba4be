package console

type ChoiceKind int

const (
	ChoiceMove ChoiceKind = iota
	ChoiceExit
	ChoiceHelp
)

// Choice is one parsed line of user input.
type Choice struct {
	Kind ChoiceKind
	Move string
}
