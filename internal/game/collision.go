package game

// Collider resolves a desired displacement against the scene's static zones.
type Collider interface {
	ResolveMove(current, delta Vec3) Vec3
}

// CollisionService holds the table obstacle and the fenced ground boundary.
// Both rectangles are captured at construction and never follow their nodes.
type CollisionService struct {
	table  *Rect
	ground *Rect
}

func NewCollisionService(table, ground *Transform) *CollisionService {
	return &CollisionService{
		table:  RectFromNode(table),
		ground: RectFromNode(ground),
	}
}

func (c *CollisionService) Table() *Rect {
	if c == nil {
		return nil
	}
	return c.table
}

func (c *CollisionService) Ground() *Rect {
	if c == nil {
		return nil
	}
	return c.ground
}

// ResolveMove accepts current+delta only when it stays off the table and
// inside the ground. There is no sliding: a blocked move keeps current.
func (c *CollisionService) ResolveMove(current, delta Vec3) Vec3 {
	if c == nil || c.table == nil {
		return current
	}
	future := current.Add(delta)

	inTable := c.table.Contains(future.X, future.Z)
	inGround := c.ground.Contains(future.X, future.Z)
	if inTable || !inGround {
		return current
	}
	return future
}
