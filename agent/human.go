package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"othello/experiments/metrics"
	"othello/game"
)

type humanAgent struct {
	rules game.Rules
	in    *bufio.Scanner
	out   io.Writer
}

// NewHumanAgent returns an agent that prompts on out and reads cell indices
// from in, one per line. It passes on its own when there is nothing to choose.
func NewHumanAgent(rules game.Rules, in io.Reader, out io.Writer) Agent {
	return &humanAgent{rules: rules, in: bufio.NewScanner(in), out: out}
}

func (h *humanAgent) FindMove(ctx context.Context, board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	metric := metrics.SearchMetric{Searcher: "human"}
	moves := h.rules.LegalMoves(board, player)
	if moves[0] == game.Pass {
		fmt.Fprintf(h.out, "No legal moves for %s, passing\n", player)
		return game.Pass, metric, nil
	}

	fmt.Fprint(h.out, board)
	fmt.Fprintf(h.out, "Legal moves for %s: %v\n", player, moves)
	for {
		if err := ctx.Err(); err != nil {
			return game.Pass, metric, err
		}
		fmt.Fprint(h.out, "Choose a move (cell index 0-63): ")
		if !h.in.Scan() {
			err := h.in.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return game.Pass, metric, fmt.Errorf("failed to read move: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err == nil && slices.Contains(moves, game.Move(n)) {
			return game.Move(n), metric, nil
		}
		fmt.Fprintln(h.out, "Invalid move")
	}
}
