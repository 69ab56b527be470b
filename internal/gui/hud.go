package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

func logsLabel(a game.AvatarView) string {
	return fmt.Sprintf("Logs %d / %d", a.LogsCount, a.MaxLogs)
}

func (ui *playUI) drawHUD(s game.Snapshot) {
	panel := rl.NewRectangle(16, 16, 260, 96)
	drawPanel(panel)
	drawText("$ "+ui.balance.text, 32, 26, typeScale.Title, colorWarn)
	logsColor := colorText
	if s.Avatar.CapacityReached {
		logsColor = colorDanger
	}
	drawText(logsLabel(s.Avatar), 32, 70, typeScale.Body, logsColor)
	if s.Avatar.CapacityReached {
		drawText("MAX", 32+measureText(logsLabel(s.Avatar), typeScale.Body)+12, 70, typeScale.Body, colorDanger)
	}

	clip := ui.anim.clip
	if w := ui.anim.Weight(); w < 1 && ui.anim.previous != "" {
		clip = fmt.Sprintf("%s > %s %.0f%%", ui.anim.previous, ui.anim.clip, w*100)
	}
	drawText(clip, 16, ui.height-28, typeScale.Small, colorMuted)

	if s.ShowHint {
		drawTextCentered("Hold WASD, a gamepad stick or drag the mouse to walk", ui.width/2, ui.height-80, typeScale.Body, colorText)
		drawTextCentered("Stand facing a tree to chop, then sell on the gold square", ui.width/2, ui.height-52, typeScale.Small, colorDim)
	}
	if ui.paused {
		drawTextCentered("PAUSED", ui.width/2, ui.height/2-20, typeScale.Title, colorAccent)
	}

	if ui.stick.Active() {
		bx, by := float32(ui.stick.BaseX), float32(-ui.stick.BaseY)
		kx, ky := ui.stick.Knob()
		rl.DrawCircleLines(int32(bx), int32(by), float32(ui.stick.MaxRadius), colorDim)
		rl.DrawCircleV(rl.NewVector2(bx+float32(kx), by-float32(ky)), 18, rl.Fade(colorAccent, 0.8))
	}
}
