package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// HitsObstacle reports whether hitbox overlaps either segment of o.
func HitsObstacle(hitbox core.Rect, o Obstacle, s Shape) bool {
	return hitbox.Intersects(o.TopRect(s)) || hitbox.Intersects(o.BottomRect(s))
}

// OutOfBounds reports whether the avatar sprite has left the playfield
// vertically. There is no floor or ceiling padding.
func OutOfBounds(a Avatar, playfieldHeight float64) bool {
	return a.Y+a.Height > playfieldHeight || a.Y < 0
}

// CheckCollision reports whether the avatar touches any obstacle or has
// left the playfield. It stops at the first hit.
func CheckCollision(a Avatar, obstacles []Obstacle, s Shape, playfieldHeight float64) bool {
	hitbox := a.HitboxRect()
	for _, o := range obstacles {
		if HitsObstacle(hitbox, o, s) {
			return true
		}
	}
	return OutOfBounds(a, playfieldHeight)
}
