// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/prompt.go
// Summary: Modal confirmation overlay answered from the keyboard.

package texel

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Prompt is a pending question. The event loop keeps running while it is
// shown; the answer arrives on reply.
type Prompt struct {
	Message  string
	Answers  []string
	selected int
	reply    chan int
	answered bool
}

func newPrompt(message string, answers []string) *Prompt {
	if len(answers) == 0 {
		answers = []string{"OK"}
	}
	return &Prompt{
		Message: message,
		Answers: append([]string(nil), answers...),
		reply:   make(chan int, 1),
	}
}

// Selected returns the highlighted answer.
func (p *Prompt) Selected() int {
	return p.selected
}

func (p *Prompt) resolve(answer int) {
	if p.answered {
		return
	}
	p.answered = true
	p.reply <- answer
	close(p.reply)
}

// handleKey returns the chosen answer once the key settles the prompt.
// Escape and "n" pick the last answer, "y" the first.
func (p *Prompt) handleKey(ev *tcell.EventKey) (int, bool) {
	last := len(p.Answers) - 1
	switch ev.Key() {
	case tcell.KeyEnter:
		return p.selected, true
	case tcell.KeyEscape:
		return last, true
	case tcell.KeyLeft, tcell.KeyBacktab:
		p.selected = (p.selected + last) % len(p.Answers)
		return 0, false
	case tcell.KeyRight, tcell.KeyTab:
		p.selected = (p.selected + 1) % len(p.Answers)
		return 0, false
	case tcell.KeyRune:
	default:
		return 0, false
	}

	r := unicode.ToLower(ev.Rune())
	switch {
	case r == 'y':
		return 0, true
	case r == 'n':
		return last, true
	case r >= '1' && r <= '9':
		if ix := int(r - '1'); ix <= last {
			return ix, true
		}
		return 0, false
	}
	for i, answer := range p.Answers {
		if strings.HasPrefix(strings.ToLower(answer), string(r)) {
			return i, true
		}
	}
	return 0, false
}

func (p *Prompt) render(buf [][]Cell, normal, selected tcell.Style) {
	if len(buf) == 0 {
		return
	}
	screenW, screenH := len(buf[0]), len(buf)

	answersW := 0
	for _, a := range p.Answers {
		answersW += TextWidth(a) + 5
	}
	boxW := max(TextWidth(p.Message), answersW) + 4
	boxW = min(boxW, screenW)
	boxH := min(5, screenH)
	box := Bounds{X: (screenW - boxW) / 2, Y: (screenH - boxH) / 2, W: boxW, H: boxH}
	Fill(buf, box, ' ', normal)

	DrawText(buf, box.X+2, box.Y+1, box.W-4, p.Message, normal)
	x := box.X + 2
	for i, a := range p.Answers {
		style := normal
		if i == p.selected {
			style = selected
		}
		x += DrawText(buf, x, box.Y+3, box.X+box.W-x, "[ "+a+" ]", style)
		x += DrawText(buf, x, box.Y+3, box.X+box.W-x, " ", normal)
	}
}
