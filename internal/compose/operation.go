package compose

import (
	"fmt"
	"strings"
)

// Operation is one docker-compose lifecycle subcommand.
type Operation int

const (
	Up Operation = iota + 1
	Down
	Start
	Stop
)

var operationNames = map[Operation]string{
	Up:    "up",
	Down:  "down",
	Start: "start",
	Stop:  "stop",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Valid reports whether o is one of the known operations.
func (o Operation) Valid() bool {
	_, ok := operationNames[o]
	return ok
}

// ParseOperation maps a subcommand name to its Operation.
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op, name := range operationNames {
		if name == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown compose operation %q", s)
}

// Action is a user-facing command: a fixed operation sequence plus the verb
// used in prompts.
type Action struct {
	Name       string
	Verb       string
	Operations []Operation
}

// Request is a single invocation of an Action. File is optional; when set it
// is the only file the operations apply to.
type Request struct {
	Action Action
	File   string
}

var (
	UpAction      = Action{Name: "up", Verb: "bring up", Operations: []Operation{Up}}
	DownAction    = Action{Name: "down", Verb: "take down", Operations: []Operation{Down}}
	RestartAction = Action{Name: "restart", Verb: "restart", Operations: []Operation{Stop, Start}}
	StartAction   = Action{Name: "start", Verb: "start", Operations: []Operation{Start}}
	StopAction    = Action{Name: "stop", Verb: "stop", Operations: []Operation{Stop}}
)

// Actions returns every action in menu order.
func Actions() []Action {
	return []Action{UpAction, DownAction, RestartAction, StartAction, StopAction}
}

// LookupAction finds an action by name.
func LookupAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Actions() {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// Request builds a request for this action. An empty file means "resolve
// from settings or discovery".
func (a Action) Request(file string) Request {
	return Request{Action: a, File: file}
}

// Prompt is the chooser placeholder for this action.
func (a Action) Prompt() string {
	return "Choose Docker Compose file to " + a.Verb
}
