package gui

import rl "github.com/gen2brain/raylib-go/raylib"

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Warning       rl.Color
	Danger        rl.Color

	Ground    rl.Color
	Table     rl.Color
	SellPlace rl.Color
	SellLit   rl.Color
	Trunk     rl.Color
	Crown     rl.Color
	CrownLit  rl.Color
	Stump     rl.Color
	Avatar    rl.Color
	Backpack  rl.Color
	Log       rl.Color
}

// Field-log palette carried over from the menu theme, plus scene colors.
var AppTheme = Theme{
	Background:    rl.NewColor(0x14, 0x1A, 0x1F, 255), // #141A1F
	Panel:         rl.NewColor(0x1C, 0x23, 0x29, 230), // #1C2329
	Border:        rl.NewColor(0x2E, 0x3A, 0x40, 255), // #2E3A40
	TextPrimary:   rl.NewColor(0xE8, 0xE2, 0xD8, 255), // #E8E2D8
	TextSecondary: rl.NewColor(0xA6, 0xAD, 0xB1, 255), // #A6ADB1
	TextMuted:     rl.NewColor(0x7D, 0x85, 0x8A, 255), // #7D858A
	Accent:        rl.NewColor(0xD4, 0x6A, 0x1E, 255), // #D46A1E
	Warning:       rl.NewColor(0xC1, 0x8B, 0x2F, 255), // #C18B2F
	Danger:        rl.NewColor(0xB8, 0x4A, 0x3A, 255), // #B84A3A

	Ground:    rl.NewColor(0x2F, 0x5D, 0x42, 255),
	Table:     rl.NewColor(0x7A, 0x4E, 0x2A, 255),
	SellPlace: rl.NewColor(0xC1, 0x8B, 0x2F, 140),
	SellLit:   rl.NewColor(0xE8, 0xB0, 0x40, 200),
	Trunk:     rl.NewColor(0x6B, 0x45, 0x26, 255),
	Crown:     rl.NewColor(0x3C, 0xB0, 0x5A, 255),
	CrownLit:  rl.NewColor(0x9C, 0xE0, 0x6A, 255),
	Stump:     rl.NewColor(0x8A, 0x5A, 0x32, 255),
	Avatar:    rl.NewColor(0xD4, 0x6A, 0x1E, 255),
	Backpack:  rl.NewColor(0x5A, 0x3A, 0x22, 255),
	Log:       rl.NewColor(0xB0, 0x78, 0x40, 255),
}

var (
	colorBG     = AppTheme.Background
	colorPanel  = AppTheme.Panel
	colorBorder = AppTheme.Border
	colorText   = AppTheme.TextPrimary
	colorDim    = AppTheme.TextSecondary
	colorMuted  = AppTheme.TextMuted
	colorAccent = AppTheme.Accent
	colorWarn   = AppTheme.Warning
	colorDanger = AppTheme.Danger
)

func drawPanel(rect rl.Rectangle) {
	rl.DrawRectangleRounded(rect, 0.2, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.2, 8, 2, colorBorder)
}
