package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/AmineOuatt/othello-game/othello"
	"golang.org/x/sync/errgroup"
)

type arena struct {
	games        int
	concurrency  int
	depthA       int
	depthB       int
	openingPlies int
	seed         int64
}

func (a *arena) Run(ctx context.Context) (matchSummary, error) {
	if a.depthA <= 0 || a.depthB <= 0 {
		return matchSummary{}, fmt.Errorf("depth-a %d, depth-b %d: %w", a.depthA, a.depthB, othello.ErrInvalidDepth)
	}
	var concurrency = a.concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", concurrency)

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var summary matchSummary

	g.Go(func() error {
		defer close(gameInfos)
		return generateOpenings(ctx, a.games, a.openingPlies, a.seed, gameInfos)
	})

	g.Go(func() error {
		var err error
		summary, err = showResults(ctx, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return summary, err
}

func (a *arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for gameInfo := range gameInfos {
		var black, white, err = a.newEngines(gameInfo.engineAIsBlack)
		if err != nil {
			return err
		}
		res, err := playGame(ctx, black, white, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

// newEngines returns the Black and White engines for one game.
func (a *arena) newEngines(engineAIsBlack bool) (*othello.AIPlayer, *othello.AIPlayer, error) {
	var blackDepth, whiteDepth = a.depthA, a.depthB
	if !engineAIsBlack {
		blackDepth, whiteDepth = a.depthB, a.depthA
	}
	black, err := othello.NewAIPlayer(othello.PlayerBlack, blackDepth)
	if err != nil {
		return nil, nil, err
	}
	white, err := othello.NewAIPlayer(othello.PlayerWhite, whiteDepth)
	if err != nil {
		return nil, nil, err
	}
	return black, white, nil
}
