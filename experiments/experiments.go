package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"othello/agent"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
)

const (
	NumGames   = 20 // Per match up
	TimeBudget = 100 * time.Millisecond
)

type Experiment struct {
	Name     string
	Games    int // Per match up, seats alternate between games
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

// Depth pairs a one-ply minimax baseline against deeper minimax agents and
// against MCTS on a time or an episode budget.
func Depth(games int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Goroutines: 1, Duration: TimeBudget, Depth: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Goroutines: 1, Duration: TimeBudget, Depth: 2},
		{ID: 2, Kind: "minimax", Goroutines: 1, Duration: TimeBudget, Depth: 4},
		{ID: 3, Kind: "minimax", Goroutines: 1, Duration: TimeBudget, Depth: 6},
		{ID: 4, Kind: "mcts", Goroutines: 1, Duration: TimeBudget},
		{ID: 5, Kind: "mcts", Goroutines: 1, Episodes: meta.EPISODES},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Experiment{Name: "depth", Games: games, Configs: append(configs, baseline), MatchUps: matchUps}
}

// Parallelization pairs each parallel agent against the sequential baseline
// of the same kind.
func Parallelization(games int) Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	id := 0
	for _, kind := range []string{"minimax", "mcts"} {
		baseline := metrics.AgentConfig{ID: id, Kind: kind, Goroutines: 1, Duration: TimeBudget}
		configs = append(configs, baseline)
		id++
		for _, goroutines := range []int{2, 4, 8} {
			config := metrics.AgentConfig{ID: id, Kind: kind, Goroutines: goroutines, Duration: TimeBudget}
			configs = append(configs, config)
			matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
			id++
		}
	}

	return Experiment{Name: "parallelization", Games: games, Configs: configs, MatchUps: matchUps}
}

// Run plays every match up and stores the configs, game records and move
// records under root/<name>/<timestamp>. It returns that directory.
func Run(ctx context.Context, experiment Experiment, root string) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", experiment.Name)

	for mi, matchUp := range experiment.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(experiment.MatchUps), matchUp[0], matchUp[1])

		for i := 0; i < experiment.Games; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			gameMetric, moveMetrics, err := runGame(ctx, first, second, uint64(mi*experiment.Games+i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(experiment.MatchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", experiment.Name)

	return store(experiment, root, gameRecords, moveRecords)
}

func store(experiment Experiment, root string, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, experiment.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(experiment.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecordsParquet(moveRecords); err != nil {
		return "", err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays one game with first as PlayerOne and second as PlayerTwo.
func runGame(ctx context.Context, first, second metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	rules := game.NewStandardRules()
	agents := []agent.Agent{
		CreateAgent(first, rules, seed),
		CreateAgent(second, rules, seed+1),
	}
	e := engine.LocalEngine(rules, agents)

	return e.Run(ctx)
}

// CreateAgent builds the agent a config describes. seed only matters to the
// random agent.
func CreateAgent(config metrics.AgentConfig, rules game.Rules, seed uint64) agent.Agent {
	options := []searcher.Option{searcher.WithRules(rules), searcher.WithMetrics()}

	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}

	switch config.Kind {
	case "minimax":
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		return agent.NewSearchAgent(searcher.NewMinimax(config.Goroutines, options...))
	case "mcts":
		if config.Episodes > 0 {
			options = append(options, searcher.WithEpisodes(config.Episodes))
		}
		if config.Cutoff > 0 {
			options = append(options, searcher.WithCutoff(config.Cutoff))
		}
		return agent.NewSearchAgent(searcher.NewMCTS(config.Goroutines, options...))
	case "random":
		return agent.NewRandomAgent(rules, seed)
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}
