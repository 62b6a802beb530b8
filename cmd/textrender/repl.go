package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textrender"
)

// builtinFonts are the font names resolved without a file.
var builtinFonts = map[string][]byte{
	"gomono":    gomono.TTF,
	"goregular": goregular.TTF,
}

// previewMaxWidth is the widest buffer printed as a shaded preview.
const previewMaxWidth = 120

// Intp is the shell interpreter. It owns one session and the last rendered
// buffer.
type Intp struct {
	session *textrender.Session
	height  int
	front   textrender.Color
	back    textrender.Color
	buf     *textrender.PixelBuffer
	tmpDir  string // holds extracted built-in fonts
}

func newIntp(opts ...textrender.Option) (*Intp, error) {
	s := textrender.NewSession(opts...)
	if err := s.Init(); err != nil {
		return nil, err
	}
	return &Intp{
		session: s,
		front:   textrender.Black,
		back:    textrender.White,
	}, nil
}

func (intp *Intp) close() {
	_ = intp.session.Release()
	if intp.tmpDir != "" {
		_ = os.RemoveAll(intp.tmpDir)
	}
}

// REPL reads and executes commands until EOF or quit.
func (intp *Intp) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Printf("%v (code %d)\n", err, textrender.CodeOf(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute runs cmd and reports whether the shell should stop.
func (intp *Intp) execute(cmd command) (quit bool, err error) {
	switch cmd.op {
	case opQuit:
		return true, nil
	case opHelp:
		help()
	case opFont:
		height := cmd.height
		if height == 0 {
			height = intp.height
		}
		err = intp.setFont(cmd.path, height)
	case opMetrics:
		err = intp.printMetrics()
	case opColor:
		intp.front = cmd.front
		if cmd.colors == 2 {
			intp.back = cmd.back
		}
		pterm.Printf("front %v, back %v\n", intp.front, intp.back)
	case opWidth:
		var w int
		if w, err = intp.session.TextWidth(cmd.text); err == nil {
			pterm.Printf("%d px\n", w)
		}
	case opRender:
		if err = intp.render(cmd.text); err == nil {
			intp.preview()
		}
	case opDump:
		err = intp.dump(cmd.path)
	}
	return false, err
}

// setFont activates a font file or one of the built-in fonts.
func (intp *Intp) setFont(name string, height int) error {
	path, err := intp.resolveFont(name)
	if err != nil {
		return err
	}
	if err := intp.session.SetFont(path, height); err != nil {
		return err
	}
	intp.height = height
	m, _ := intp.session.Metrics()
	pterm.Info.Printf("font %q at %d px (height %d)\n", m.Name, m.PixelSize, height)
	return nil
}

// resolveFont returns the file for name, extracting built-in fonts to a
// temporary directory. Existing files take precedence.
func (intp *Intp) resolveFont(name string) (string, error) {
	data, ok := builtinFonts[strings.ToLower(name)]
	if !ok {
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if intp.tmpDir == "" {
		dir, err := os.MkdirTemp("", "textrender")
		if err != nil {
			return "", fmt.Errorf("%w: %v", textrender.ErrCantOpenFile, err)
		}
		intp.tmpDir = dir
	}
	path := filepath.Join(intp.tmpDir, strings.ToLower(name)+".ttf")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("%w: %v", textrender.ErrCantOpenFile, err)
	}
	return path, nil
}

// render draws text into a new buffer sized to fit it.
func (intp *Intp) render(text string) error {
	w, err := intp.session.TextWidth(text)
	if err != nil {
		return err
	}
	buf := textrender.NewPixelBuffer(max(w, 1), intp.height)
	if err := intp.session.RenderText(text, intp.front, intp.back, buf.Bounds(), buf); err != nil {
		return err
	}
	intp.buf = buf
	pterm.Printf("rendered %dx%d\n", buf.Width(), buf.Height())
	return nil
}

// dump writes the last rendered buffer as PNG or PPM, by file extension.
func (intp *Intp) dump(path string) error {
	if intp.buf == nil {
		return errors.New("nothing rendered yet")
	}
	var err error
	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = intp.buf.SavePNG(path)
	} else {
		err = textrender.DumpImage(intp.buf, path)
	}
	if err != nil {
		return err
	}
	pterm.Info.Printf("wrote %s\n", path)
	return nil
}

func (intp *Intp) printMetrics() error {
	m, err := intp.session.Metrics()
	if err != nil {
		return err
	}
	data := [][]string{
		{"Family", "Pixel size", "Ascender", "Descender", "Line height"},
		{
			m.Name,
			fmt.Sprintf("%d", m.PixelSize),
			fmt.Sprintf("%d", m.Ascender),
			fmt.Sprintf("%d", m.Descender),
			fmt.Sprintf("%d", m.Height),
		},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// preview prints the last buffer as shaded characters.
func (intp *Intp) preview() {
	if intp.buf == nil || intp.buf.Width() > previewMaxWidth {
		return
	}
	for _, row := range shade(intp.buf, intp.back) {
		pterm.Println(row)
	}
}

// shadeRamp runs from background to full ink.
const shadeRamp = " .:-=+*#%@"

// shade maps each pixel to a character by its distance from back.
func shade(buf *textrender.PixelBuffer, back textrender.Color) []string {
	rows := make([]string, buf.Height())
	var sb strings.Builder
	for y := 0; y < buf.Height(); y++ {
		sb.Reset()
		for x := 0; x < buf.Width(); x++ {
			d := channelDistance(buf.Pixel(x, y), back)
			sb.WriteByte(shadeRamp[d*(len(shadeRamp)-1)/255])
		}
		rows[y] = strings.TrimRight(sb.String(), " ")
	}
	return rows
}

// channelDistance is the largest per-channel difference of a and b.
func channelDistance(a, b textrender.Color) int {
	d := 0
	for _, pair := range [][2]uint8{{a.R(), b.R()}, {a.G(), b.G()}, {a.B(), b.B()}} {
		diff := int(pair[0]) - int(pair[1])
		if diff < 0 {
			diff = -diff
		}
		d = max(d, diff)
	}
	return d
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	font <path|gomono|goregular> [height]   set the font and line height
	metrics                                 show the metrics of the active face
	color <front> [back]                    set colors, e.g. color #FF0000 #FFFFFF80
	width <text>                            measure text in pixels
	render <text>                           render text and preview it
	dump <file.ppm|file.png>                write the last rendered text
	quit                                    leave the shell
	`)
}
