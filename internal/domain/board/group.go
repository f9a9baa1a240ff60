package board

var directions = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the in-bounds orthogonal neighbors of p.
func (b *Board) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range directions {
		n := Point{X: p.X + d.X, Y: p.Y + d.Y}
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// FindGroup flood-fills the same-colored chain containing p. An empty
// intersection has no group.
func (b *Board) FindGroup(p Point) []Point {
	color := b.At(p)
	if color == Empty {
		return nil
	}

	visited := make([]bool, len(b.grid))
	visited[b.index(p)] = true
	stack := []Point{p}
	var group []Point

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, cur)

		for _, n := range b.Neighbors(cur) {
			idx := b.index(n)
			if !visited[idx] && b.grid[idx] == color {
				visited[idx] = true
				stack = append(stack, n)
			}
		}
	}
	return group
}

// CountLiberties counts the distinct empty points next to any stone of group.
func (b *Board) CountLiberties(group []Point) int {
	seen := make([]bool, len(b.grid))
	count := 0
	for _, p := range group {
		for _, n := range b.Neighbors(p) {
			idx := b.index(n)
			if b.grid[idx] == Empty && !seen[idx] {
				seen[idx] = true
				count++
			}
		}
	}
	return count
}

// WouldCapture lists the opponent groups for which p is the last liberty,
// each group once.
func (b *Board) WouldCapture(p Point, color Stone) [][]Point {
	if !color.IsPlayer() {
		panic("board: WouldCapture needs a player color, got " + color.String())
	}
	if !b.InBounds(p) {
		return nil
	}

	opp := color.Opponent()
	seen := make([]bool, len(b.grid))
	var groups [][]Point
	for _, n := range b.Neighbors(p) {
		idx := b.index(n)
		if b.grid[idx] != opp || seen[idx] {
			continue
		}
		grp := b.FindGroup(n)
		for _, q := range grp {
			seen[b.index(q)] = true
		}
		if b.CountLiberties(grp) == 1 {
			groups = append(groups, grp)
		}
	}
	return groups
}
