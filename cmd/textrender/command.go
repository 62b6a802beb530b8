package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/textrender"
)

type opcode int

const (
	opQuit opcode = iota
	opHelp
	opFont
	opMetrics
	opColor
	opWidth
	opRender
	opDump
)

var opNames = map[string]opcode{
	"quit":    opQuit,
	"exit":    opQuit,
	"help":    opHelp,
	"font":    opFont,
	"metrics": opMetrics,
	"color":   opColor,
	"width":   opWidth,
	"render":  opRender,
	"dump":    opDump,
}

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

// command is a parsed shell line.
type command struct {
	op     opcode
	path   string // font, dump
	height int    // font; 0 keeps the current height
	text   string // width, render
	front  textrender.Color
	back   textrender.Color
	colors int // number of colors given to color
}

// parseCommand parses one non-empty shell line. Text arguments run to the
// end of the line and keep their inner spacing.
func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	word, rest, _ := strings.Cut(line, " ")
	op, ok := opNames[strings.ToLower(word)]
	if !ok {
		return command{}, fmt.Errorf("%w %q, try 'help'", errUnknownCommand, word)
	}

	cmd := command{op: op}
	args := strings.Fields(rest)
	switch op {
	case opQuit, opHelp, opMetrics:
		if len(args) != 0 {
			return command{}, fmt.Errorf("%w: %s", errUsage, word)
		}

	case opFont:
		if len(args) < 1 || len(args) > 2 {
			return command{}, fmt.Errorf("%w: font <path> [height]", errUsage)
		}
		cmd.path = args[0]
		if len(args) == 2 {
			h, err := strconv.Atoi(args[1])
			if err != nil || h <= 0 {
				return command{}, fmt.Errorf("%w: font height must be a positive integer, got %q", errUsage, args[1])
			}
			cmd.height = h
		}

	case opColor:
		if len(args) < 1 || len(args) > 2 {
			return command{}, fmt.Errorf("%w: color <front> [back]", errUsage)
		}
		var err error
		if cmd.front, err = textrender.ParseHex(args[0]); err != nil {
			return command{}, err
		}
		cmd.colors = 1
		if len(args) == 2 {
			if cmd.back, err = textrender.ParseHex(args[1]); err != nil {
				return command{}, err
			}
			cmd.colors = 2
		}

	case opWidth, opRender:
		cmd.text = rest

	case opDump:
		if len(args) != 1 {
			return command{}, fmt.Errorf("%w: dump <file.ppm|file.png>", errUsage)
		}
		cmd.path = args[0]
	}
	return cmd, nil
}
