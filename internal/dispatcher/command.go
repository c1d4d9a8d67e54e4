package dispatcher

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoCommand is returned when generated text holds no JSON object.
var ErrNoCommand = errors.New("no JSON command found in model output")

// Command is a function call parsed from model output.
type Command struct {
	Function string
	Params   json.RawMessage
}

// ExtractCommand finds the JSON command embedded in text.
//
// Every '{' is tried left to right and a single JSON value is decoded from
// there. The first object carrying a "function" member wins; when no object
// has one, the first object decoded is returned. Surrounding prose, code
// fences and nested braces are tolerated. A non-string "function" member is
// kept as its raw JSON text so the caller can report it as an unknown
// function.
func ExtractCommand(text string) (Command, error) {
	var first map[string]json.RawMessage
	for i := strings.IndexByte(text, '{'); i >= 0; {
		var members map[string]json.RawMessage
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&members); err == nil && members != nil {
			if _, ok := members["function"]; ok {
				return commandFrom(members), nil
			}
			if first == nil {
				first = members
			}
		}

		next := strings.IndexByte(text[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	if first != nil {
		return commandFrom(first), nil
	}
	return Command{}, ErrNoCommand
}

func commandFrom(members map[string]json.RawMessage) Command {
	var cmd Command
	if raw, ok := members["function"]; ok {
		if err := json.Unmarshal(raw, &cmd.Function); err != nil {
			cmd.Function = string(raw)
		}
	}
	cmd.Params = members["params"]
	return cmd
}
