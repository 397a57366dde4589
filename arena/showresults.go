package main

import (
	"context"
	"log"
	"math"
)

type matchSummary struct {
	games  int
	wins   int
	losses int
	draws  int
	passes int
	stat   GameStatistics
}

// showResults tallies results from engine A's point of view.
func showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) (matchSummary, error) {
	var summary matchSummary
	for {
		var res gameResult
		var ok bool
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		case res, ok = <-gameResults:
		}
		if !ok {
			return summary, nil
		}
		summary.games++
		summary.passes += res.passes
		log.Printf("Finished game %v: %v {%v} %v moves, %v passes\n",
			res.gameInfo.gameNumber,
			gameResultString(res.result),
			res.comment,
			len(res.moves), res.passes)
		if res.result == gameResultDraw {
			summary.draws++
		} else if res.result == gameResultBlackWins && res.gameInfo.engineAIsBlack ||
			res.result == gameResultWhiteWins && !res.gameInfo.engineAIsBlack {
			summary.wins++
		} else {
			summary.losses++
		}
		summary.stat = computeStat(summary.wins, summary.losses, summary.draws)
		log.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			summary.wins, summary.losses, summary.draws, summary.stat.winningFraction, summary.games)
		log.Printf("Elo difference: %.1f, LOS: %.1f %%, passes so far: %v\n",
			summary.stat.eloDifference, summary.stat.los*100, summary.passes)
	}
}

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	if games == 0 {
		return GameStatistics{winningFraction: 0.5, los: 0.5}
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5
	if wins+losses > 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return GameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}

func gameResultString(v int) string {
	if v == gameResultBlackWins {
		return "1-0"
	}
	if v == gameResultWhiteWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
