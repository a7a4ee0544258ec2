package dispatch

import "strings"

// Command is a voice menu entry.
type Command string

const (
	CommandAdd      Command = "add"
	CommandEdit     Command = "edit"
	CommandDelete   Command = "delete"
	CommandNext     Command = "next"
	CommandPrevious Command = "previous"
)

// Commands lists the notes menu in display order.
var Commands = []Command{CommandAdd, CommandEdit, CommandDelete, CommandNext, CommandPrevious}

var aliases = map[string]Command{
	"add note": CommandAdd,
	"new note": CommandAdd,
	"remove":   CommandDelete,
	"back":     CommandPrevious,
	"prev":     CommandPrevious,
	"forward":  CommandNext,
}

// ParseCommand accepts spoken forms such as "ok glass, delete".
func ParseCommand(s string) (Command, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "ok glass")
	s = strings.TrimSpace(strings.TrimLeft(s, ",. "))
	for _, c := range Commands {
		if s == string(c) {
			return c, true
		}
	}
	c, ok := aliases[s]
	return c, ok
}
