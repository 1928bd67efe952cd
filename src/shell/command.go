package shell

import (
	"strconv"
	"strings"
)

type CommandType int8

func (c CommandType) String() string {
	return cmdTypeMap[c]
}

const (
	TypeADD CommandType = iota
	TypeREMOVE
	TypeCONTAINS
	TypeMIN
	TypeMAX
	TypeINORDER
	TypePREORDER
	TypePRINT
	TypeVALID
	TypeSTATS
	TypeCLEAR
	TypeHELP
	TypeQUIT
)

var cmdTypeMap = map[CommandType]string{
	TypeADD:      "ADD",
	TypeREMOVE:   "REMOVE",
	TypeCONTAINS: "CONTAINS",
	TypeMIN:      "MIN",
	TypeMAX:      "MAX",
	TypeINORDER:  "INORDER",
	TypePREORDER: "PREORDER",
	TypePRINT:    "PRINT",
	TypeVALID:    "VALID",
	TypeSTATS:    "STATS",
	TypeCLEAR:    "CLEAR",
	TypeHELP:     "HELP",
	TypeQUIT:     "QUIT",
}

var cmdNames = map[string]CommandType{
	"add":      TypeADD,
	"insert":   TypeADD,
	"remove":   TypeREMOVE,
	"delete":   TypeREMOVE,
	"rm":       TypeREMOVE,
	"contains": TypeCONTAINS,
	"has":      TypeCONTAINS,
	"min":      TypeMIN,
	"max":      TypeMAX,
	"inorder":  TypeINORDER,
	"keys":     TypeINORDER,
	"preorder": TypePREORDER,
	"print":    TypePRINT,
	"valid":    TypeVALID,
	"validate": TypeVALID,
	"stats":    TypeSTATS,
	"clear":    TypeCLEAR,
	"help":     TypeHELP,
	"quit":     TypeQUIT,
	"exit":     TypeQUIT,
	"q":        TypeQUIT,
	"leave":    TypeQUIT,
}

// How many keys each command takes. -1 means one or more.
var cmdArgs = map[CommandType]int{
	TypeADD:      -1,
	TypeREMOVE:   -1,
	TypeCONTAINS: 1,
}

// A single line of shell input.
type Command struct {
	Type CommandType
	Keys []int
}

// ParseCommand parses a line such as "add 1 2 3".
//
// An empty line parses to a nil command and a nil error.
func ParseCommand(line string) (*Command, error) {
	var fields = strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	var typ, ok = cmdNames[strings.ToLower(fields[0])]
	if !ok {
		return nil, newShellError(ErrUnknownCommand, fields[0])
	}

	var args = fields[1:]
	switch want := cmdArgs[typ]; {
	case want == -1 && len(args) == 0:
		return nil, newShellError(ErrMissingArgument, fields[0])
	case want >= 0 && len(args) != want:
		return nil, newShellError(ErrArgumentCount, fields[0])
	}

	var cmd = &Command{
		Type: typ,
		Keys: make([]int, 0, len(args)),
	}
	for _, arg := range args {
		var k, err = strconv.Atoi(arg)
		if err != nil {
			return nil, newShellError(ErrInvalidKey, arg)
		}
		cmd.Keys = append(cmd.Keys, k)
	}
	return cmd, nil
}
