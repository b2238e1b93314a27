package experiments

import "othello/experiments/metrics"

// Throughput gives both seats the same config so games have the same playing
// strength and similar length. The move records show nodes and episodes per
// move against the goroutine count.
func Throughput(games int) Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	id := 0
	for _, kind := range []string{"minimax", "mcts"} {
		for _, goroutines := range []int{1, 2, 4, 8, 16} {
			config := metrics.AgentConfig{ID: id, Kind: kind, Goroutines: goroutines, Duration: TimeBudget}
			configs = append(configs, config)
			matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
			id++
		}
	}

	return Experiment{Name: "throughput", Games: games, Configs: configs, MatchUps: matchUps}
}

// ByName returns the named experiment with games per match up.
func ByName(name string, games int) (Experiment, bool) {
	switch name {
	case "depth":
		return Depth(games), true
	case "parallelization":
		return Parallelization(games), true
	case "throughput":
		return Throughput(games), true
	}
	return Experiment{}, false
}
