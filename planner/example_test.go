package planner_test

import (
	"fmt"
	"math/rand"

	"github.com/nviennot/porrt/belief"
	"github.com/nviennot/porrt/configspace"
	"github.com/nviennot/porrt/planner"
	"github.com/nviennot/porrt/roadmap"
	"github.com/nviennot/porrt/worldmask"
)

// twoWorldOracle treats a circular obstacle as present in world 0 and
// absent in world 1, and resolves the belief the first time the agent
// reaches the observation point.
type twoWorldOracle struct {
	obstacle  configspace.Config
	obstacleR float64
	observeAt configspace.Config
}

func (o twoWorldOracle) Validity(c configspace.Config) (worldmask.Mask, bool) {
	if configspace.Distance(c, o.obstacle) < o.obstacleR {
		m := worldmask.NewMask(2)
		m.Set(1, true) // feasible only in world 1, where the obstacle is absent
		return m, true
	}

	return worldmask.Full(2), true
}

func (o twoWorldOracle) TransitionValidity(from, to *roadmap.Node) (worldmask.Mask, bool) {
	return from.Validity.And(to.Validity), true
}

func (o twoWorldOracle) ReachableBeliefStates(start belief.State) []belief.State {
	return []belief.State{start, {1, 0}, {0, 1}}
}

func (o twoWorldOracle) Observe(c configspace.Config, b belief.State) []belief.State {
	if configspace.Distance(c, o.observeAt) < 0.05 {
		return []belief.State{{1, 0}, {0, 1}}
	}

	return []belief.State{b}
}

// Example demonstrates growing a roadmap around a world-dependent
// obstacle and extracting a contingent policy from it.
func Example() {
	oracle := twoWorldOracle{
		obstacle:  configspace.Config{0.5, 0},
		obstacleR: 0.2,
		observeAt: configspace.Config{0.3, 0},
	}

	p := planner.New(2, oracle, configspace.Distance)

	rng := rand.New(rand.NewSource(7))
	goalRegion := configspace.Config{1, 0}
	goal := func(c configspace.Config) worldmask.Mask {
		if configspace.Distance(c, goalRegion) < 0.1 {
			return worldmask.Full(2)
		}

		return worldmask.NewMask(2)
	}

	opts := roadmap.NewOptions(
		&roadmap.UniformBoxSampler{Min: configspace.Config{-0.2, -1}, Max: configspace.Config{1.2, 1}, Rng: rng},
		&roadmap.UniformDiscreteSampler{Rng: rng},
		roadmap.WithMaxStep(0.15),
		roadmap.WithNMin(40),
		roadmap.WithNMax(4000),
	)

	if err := p.GrowGraph(configspace.Config{0, 0}, goal, opts); err != nil {
		fmt.Println("grow_graph failed:", err)
		return
	}

	tree, err := p.PlanBeliefSpace(belief.State{0.5, 0.5})
	if err != nil {
		fmt.Println("plan_belief_space failed:", err)
		return
	}

	fmt.Println("leaves:", tree.Leaves() > 0)
}
