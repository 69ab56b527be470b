package game

// SellZone times how long the avatar has stood inside the sell rectangle and
// says when the next log is due. It does not touch the inventory itself.
type SellZone struct {
	rect  *Rect
	cfg   SellConfig
	in    bool
	timer float64
	sold  int
}

func NewSellZone(node *Transform, cfg SellConfig) SellZone {
	return SellZone{rect: RectFromNode(node), cfg: cfg}
}

func (z *SellZone) Rect() *Rect {
	return z.rect
}

func (z *SellZone) Inside() bool {
	return z.in
}

func (z *SellZone) Timer() float64 {
	return z.timer
}

// Sold is the number of logs released during the current visit.
func (z *SellZone) Sold() int {
	return z.sold
}

// Tick updates residency for a stationary avatar at pos and reports whether
// one log should be sold now. Entering resets the visit; the entry tick
// itself does not accumulate time. At most one log is due per tick.
func (z *SellZone) Tick(dt float64, pos Vec3, logs int) bool {
	inNow := z.rect.ContainsStrict(pos.X, pos.Z)

	switch {
	case !z.in && inNow:
		z.in = true
		z.timer = 0
		z.sold = 0
		return false
	case z.in && !inNow:
		z.in = false
		return false
	case !z.in:
		return false
	}

	z.timer += dt
	due := z.cfg.InitialDelay + float64(z.sold)*z.cfg.Period
	if z.timer > due && logs > 0 {
		z.sold++
		return true
	}
	return false
}
