package mcts

import "math"

// DefaultExploration is the C constant of the UCB1 formula. With a
// constant this high the selection stays close to a breadth-first
// sweep until visit counts grow large.
const DefaultExploration float64 = 10

// Picks the child with the best UCB1 score:
//
//	wins/visits + C * sqrt(ln(parent_visits)/visits)
//
// A child that was never simulated scores +Inf, so it wins against any
// simulated sibling. Ties keep the first maximal child, which makes
// the selection deterministic for a fixed tree shape.
func (n *node) selectChild(exploration float64) *node {
	best := n.children[0]
	bestScore := math.Inf(-1)
	lnParent := math.Log(float64(n.simulations))

	for _, child := range n.children {
		score := math.Inf(1)
		if child.simulations > 0 {
			score = float64(child.wins)/float64(child.simulations) +
				exploration*math.Sqrt(lnParent/float64(child.simulations))
		}

		if score > bestScore {
			best = child
			bestScore = score
		}
	}

	return best
}
