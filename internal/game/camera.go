package game

// CameraFollow keeps the camera at a fixed offset from its target with the
// height pinned, so it never bobs with the target.
type CameraFollow struct {
	Offset   Vec3
	position Vec3
	target   Vec3
}

func NewCameraFollow(cfg CameraConfig) *CameraFollow {
	return &CameraFollow{Offset: cfg.Offset}
}

func (c *CameraFollow) Update(target Vec3) {
	c.target = target
	c.position = Vec3{
		X: target.X + c.Offset.X,
		Y: c.Offset.Y,
		Z: target.Z + c.Offset.Z,
	}
}

func (c *CameraFollow) Position() Vec3 { return c.position }
func (c *CameraFollow) Target() Vec3   { return c.target }
