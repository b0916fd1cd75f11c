package main

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/defCoding/cartpole-ai/agent/tabular"
	"github.com/defCoding/cartpole-ai/environment"
	"github.com/defCoding/cartpole-ai/environment/cartpole"
	"github.com/defCoding/cartpole-ai/experiment"
	"github.com/defCoding/cartpole-ai/experiment/tracker"
)

func main() {
	var seed uint64 = 192382

	// Create the environment
	startBounds := r1.Interval{Min: -0.05, Max: 0.05}
	starter := environment.NewUniformStarter([]r1.Interval{startBounds,
		startBounds, startBounds, startBounds}, seed)
	task := cartpole.NewBalance(starter, 10_000)
	env, _ := cartpole.New(task, tabular.DefaultDiscountRate)

	// Discretization grid. Cart velocity and pole angular velocity are
	// unbounded, so they are clipped to [-1, 1] and ±50° respectively
	// before bucketing. The pole features carry nearly all of the
	// signal for balancing, so they get fine-grained buckets while the
	// cart features each collapse into a single bucket.
	angularVelocityBound := 50 * math.Pi / 180
	grid, err := tabular.NewGrid([]r1.Interval{
		{Min: -2 * cartpole.PositionLimit, Max: 2 * cartpole.PositionLimit},
		{Min: -1, Max: 1},
		{Min: -2 * cartpole.FailAngle, Max: 2 * cartpole.FailAngle},
		{Min: -angularVelocityBound, Max: angularVelocityBound},
	}, []int{1, 1, 48, 50})
	if err != nil {
		log.Fatalf("could not create grid: %v", err)
	}

	// Create the learning agent
	agent, err := tabular.New(env, grid, tabular.DefaultConfig(), seed)
	if err != nil {
		log.Fatalf("could not create agent: %v", err)
	}

	// Experiment
	lengths := tracker.NewEpisodeLength("episode_lengths.bin")
	curve := tracker.NewLearningCurve("learning_curve.png", 1024, 512)
	e := experiment.NewOnline(env, agent, 50_000, 1000, lengths, curve)
	e.Run()
	e.Save()

	if err := agent.Save("cartpole_values.bin"); err != nil {
		log.Fatalf("could not checkpoint agent: %v", err)
	}

	data := tracker.LoadLengths("episode_lengths.bin")
	fmt.Println(data[len(data)-10:])
	fmt.Printf("Final ε: %.2f  |  Visited states: %d\n", agent.Epsilon(),
		agent.States())
}
