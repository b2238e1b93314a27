package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/agent"
	"othello/engine"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
)

func main() {
	mode := flag.String("mode", "play", "play or experiment")
	black := flag.String("black", "human", "Agent for X: human, minimax, mcts or random")
	white := flag.String("white", "minimax", "Agent for O: human, minimax, mcts or random")
	numGoroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines per search")
	duration := flag.Duration("duration", meta.TIME_BUDGET, "Thinking time per move")
	depth := flag.Int("depth", meta.MAX_DEPTH, "Maximum minimax depth")
	episodes := flag.Int("episodes", 0, "MCTS episodes per move, 0 searches for -duration")
	cutoff := flag.Int("cutoff", meta.WITH_CUTOFF, "MCTS rollout cutoff, 0 plays out to the end")
	name := flag.String("experiment", "depth", "Experiment to run: depth, parallelization or throughput")
	games := flag.Int("games", experiments.NumGames, "Games per experiment match up")
	out := flag.String("out", "experiments", "Directory for experiment results")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		config := metrics.AgentConfig{
			Goroutines: *numGoroutines,
			Duration:   *duration,
			Depth:      *depth,
			Episodes:   *episodes,
			Cutoff:     *cutoff,
		}
		if err := play(ctx, *black, *white, config); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	case "experiment":
		experiment, ok := experiments.ByName(*name, *games)
		if !ok {
			log.Fatal().Msgf("unknown experiment %q", *name)
		}
		dir, err := experiments.Run(ctx, experiment, *out)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Println(dir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func play(ctx context.Context, black, white string, config metrics.AgentConfig) error {
	rules := game.NewStandardRules()
	agents := make([]agent.Agent, 0, 2)
	for i, kind := range []string{black, white} {
		a, err := newAgent(kind, config, rules, uint64(time.Now().UnixNano())+uint64(i))
		if err != nil {
			return err
		}
		agents = append(agents, a)
	}

	e := engine.LocalEngine(rules, agents)
	gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Print(e.Board)
	fmt.Printf("X: %d O: %d\n", e.Board.Count(game.PlayerOne), e.Board.Count(game.PlayerTwo))
	if gameMetric.Winner == 0 {
		fmt.Println("Draw")
	} else {
		fmt.Printf("Winner: %s\n", gameMetric.Winner)
	}
	return nil
}

func newAgent(kind string, config metrics.AgentConfig, rules game.Rules, seed uint64) (agent.Agent, error) {
	switch kind {
	case "human":
		return agent.NewHumanAgent(rules, os.Stdin, os.Stdout), nil
	case "minimax", "mcts", "random":
		config.Kind = kind
		return experiments.CreateAgent(config, rules, seed), nil
	}
	return nil, fmt.Errorf("unknown agent %q", kind)
}
