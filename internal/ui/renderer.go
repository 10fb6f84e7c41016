// Package ui renders game screens as styled text for a remote terminal.
// Every line goes out with CRLF so raw sockets, telnet, and ssh clients all
// break lines correctly. Styling is lipgloss over a forced ANSI profile:
// the far end of a socket cannot be probed for capabilities, and plain
// terminals simply show the escape codes' text content.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer writes styled screens to one session's output. Each session
// gets its own Renderer; none of the methods are safe for concurrent use,
// matching the one-writer-per-session rule upstream.
type Renderer struct {
	w   io.Writer
	lip *lipgloss.Renderer

	box      lipgloss.Style // Double-bordered frame around full screens
	title    lipgloss.Style
	label    lipgloss.Style
	system   lipgloss.Style
	alert    lipgloss.Style
	speaker  lipgloss.Style
	dialogue lipgloss.Style
	prompt   lipgloss.Style
	art      lipgloss.Style
	exits    lipgloss.Style
	hpGood   lipgloss.Style
	hpWarn   lipgloss.Style
	hpCrit   lipgloss.Style
	mana     lipgloss.Style
	exp      lipgloss.Style
	gold     lipgloss.Style
}

// New creates a renderer for a session writer.
func New(w io.Writer) *Renderer {
	lip := lipgloss.NewRenderer(w)
	lip.SetColorProfile(termenv.ANSI256)
	return newRenderer(w, lip)
}

// NewPlain creates a renderer that emits no escape codes, for clients that
// cannot take ANSI and for tests.
func NewPlain(w io.Writer) *Renderer {
	lip := lipgloss.NewRenderer(w)
	lip.SetColorProfile(termenv.Ascii)
	return newRenderer(w, lip)
}

func newRenderer(w io.Writer, lip *lipgloss.Renderer) *Renderer {
	return &Renderer{
		w:   w,
		lip: lip,

		box:      lip.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("243")).Padding(0, 2),
		title:    lip.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		label:    lip.NewStyle().Foreground(lipgloss.Color("249")),
		system:   lip.NewStyle().Foreground(lipgloss.Color("243")),
		alert:    lip.NewStyle().Foreground(lipgloss.Color("196")),
		speaker:  lip.NewStyle().Bold(true).Foreground(lipgloss.Color("228")),
		dialogue: lip.NewStyle().Foreground(lipgloss.Color("228")),
		prompt:   lip.NewStyle().Foreground(lipgloss.Color("34")),
		art:      lip.NewStyle().Foreground(lipgloss.Color("108")),
		exits:    lip.NewStyle().Foreground(lipgloss.Color("243")),
		hpGood:   lip.NewStyle().Foreground(lipgloss.Color("42")),
		hpWarn:   lip.NewStyle().Foreground(lipgloss.Color("220")),
		hpCrit:   lip.NewStyle().Foreground(lipgloss.Color("196")),
		mana:     lip.NewStyle().Foreground(lipgloss.Color("75")),
		exp:      lip.NewStyle().Foreground(lipgloss.Color("86")),
		gold:     lip.NewStyle().Foreground(lipgloss.Color("178")),
	}
}

// write sends a rendered block, converting every line break to CRLF.
func (r *Renderer) write(block string) {
	for _, line := range strings.Split(block, "\n") {
		_, _ = io.WriteString(r.w, line)
		_, _ = io.WriteString(r.w, "\r\n")
	}
}

func (r *Renderer) writef(format string, args ...any) {
	r.write(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (r *Renderer) Blank() {
	r.write("")
}

// Narrate writes plain story and combat lines.
func (r *Renderer) Narrate(lines ...string) {
	for _, line := range lines {
		r.write(line)
	}
}

// Notice writes a bracketed system message.
func (r *Renderer) Notice(format string, args ...any) {
	r.write(r.system.Render("[" + fmt.Sprintf(format, args...) + "]"))
}

// Alert writes an error the player should act on.
func (r *Renderer) Alert(format string, args ...any) {
	r.write(r.alert.Render(fmt.Sprintf(format, args...)))
}

// Say writes one line of NPC speech.
func (r *Renderer) Say(name, text string) {
	r.write(r.speaker.Render(name+":") + " " + r.dialogue.Render(text))
}

// Prompt writes the input prompt and leaves the cursor after it.
func (r *Renderer) Prompt() {
	_, _ = io.WriteString(r.w, r.prompt.Render("> "))
}
