// Command textrender renders text with the textrender library.
//
// With -text it renders once and writes the result to -output. Without it,
// it starts an interactive shell:
//
//	textrender -font DejaVuSans.ttf -height 32
//	tr > render Hello, World
//	tr > dump hello.png
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/gogpu/textrender"
	"github.com/gogpu/textrender/engine"
)

func main() {
	var (
		fontPath = flag.String("font", "gomono", "font file, or gomono / goregular for the built-in Go fonts")
		height   = flag.Int("height", 24, "maximum line height in pixels")
		engName  = flag.String("engine", engine.DefaultName, "font engine ("+strings.Join(engine.Names(), ", ")+")")
		encName  = flag.String("encoding", "", "input text encoding, e.g. latin1 (default utf-8)")
		front    = flag.String("fg", "#000000", "text color")
		back     = flag.String("bg", "#FFFFFF", "background color")
		text     = flag.String("text", "", "render this text and exit")
		output   = flag.String("output", "text.ppm", "output file for -text (.ppm or .png)")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	initDisplay(*verbose)

	opts := []textrender.Option{textrender.WithEngine(*engName)}
	if *encName != "" {
		enc, err := textrender.EncodingByName(*encName)
		if err != nil {
			fatal(err)
		}
		opts = append(opts, textrender.WithEncoding(enc))
	}

	intp, err := newIntp(opts...)
	if err != nil {
		fatal(err)
	}
	err = run(intp, *fontPath, *height, *front, *back, *text, *output)
	intp.close()
	if err != nil {
		fatal(err)
	}
}

// run configures intp and either renders text once or starts the shell.
func run(intp *Intp, fontPath string, height int, front, back, text, output string) error {
	var err error
	if intp.front, err = textrender.ParseHex(front); err != nil {
		return err
	}
	if intp.back, err = textrender.ParseHex(back); err != nil {
		return err
	}
	if err := intp.setFont(fontPath, height); err != nil {
		return err
	}

	if text != "" {
		if err := intp.render(text); err != nil {
			return err
		}
		return intp.dump(output)
	}

	repl, err := readline.NewEx(&readline.Config{
		Prompt:          "tr > ",
		HistoryFile:     filepath.Join(os.TempDir(), "textrender.history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer repl.Close()

	pterm.Info.Println("Quit with <ctrl>D or 'quit', list commands with 'help'")
	intp.REPL(repl)
	return nil
}

// initDisplay routes library logging through pterm.
func initDisplay(verbose bool) {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	logger := pterm.DefaultLogger.WithLevel(pterm.LogLevelWarn)
	if verbose {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDebug)
	}
	textrender.SetLogger(slog.New(pterm.NewSlogHandler(logger)))
}

func fatal(err error) {
	pterm.Error.Println(err)
	os.Exit(int(textrender.CodeOf(err)) + 1)
}
