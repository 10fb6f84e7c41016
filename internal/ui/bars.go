package ui

import (
	"fmt"
	"strings"
)

const barWidth = 20

// barFill returns how many of width cells a current/max ratio fills,
// truncating like the classic meter: a bar only shows full at full.
func barFill(current, max, width int) int {
	if max <= 0 {
		return 0
	}
	if current <= 0 {
		return 0
	}
	if current >= max {
		return width
	}
	return current * width / max
}

func meter(filled, width int, fill, empty rune) string {
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(string(fill), filled) + strings.Repeat(string(empty), width-filled)
}

// hpBar renders "HP: [████░░] cur/max" colored by how hurt the owner is:
// green above 60%, yellow above 30%, red below.
func (r *Renderer) hpBar(current, max int) string {
	bar := meter(barFill(current, max, barWidth), barWidth, '█', '░')
	line := fmt.Sprintf("HP:  [%s] %d/%d", bar, current, max)
	switch {
	case current*10 > max*6:
		return r.hpGood.Render(line)
	case current*10 > max*3:
		return r.hpWarn.Render(line)
	default:
		return r.hpCrit.Render(line)
	}
}

// mpBar renders "MP: [████░░] cur/max" in blue.
func (r *Renderer) mpBar(current, max int) string {
	bar := meter(barFill(current, max, barWidth), barWidth, '█', '░')
	return r.mana.Render(fmt.Sprintf("MP:  [%s] %d/%d", bar, current, max))
}

// expBar renders "EXP: [▓▓░░] cur/needed" in cyan.
func (r *Renderer) expBar(current, needed int) string {
	bar := meter(barFill(current, needed, barWidth), barWidth, '▓', '░')
	return r.exp.Render(fmt.Sprintf("EXP: [%s] %d/%d", bar, current, needed))
}
