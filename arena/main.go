package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
)

type Config struct {
	Games        int
	Concurrency  int
	DepthA       int
	DepthB       int
	OpeningPlies int
	Seed         int64
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.IntVar(&config.Games, "games", 20, "Number of games (rounded up to an even number)")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played in parallel")
	flag.IntVar(&config.DepthA, "depth-a", 3, "Search depth of engine A")
	flag.IntVar(&config.DepthB, "depth-b", 1, "Search depth of engine B")
	flag.IntVar(&config.OpeningPlies, "opening-plies", 4, "Random plies played before the engines take over")
	flag.Int64Var(&config.Seed, "seed", 1, "Seed for the random openings")
	flag.Parse()

	log.Printf("%+v", config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var a = &arena{
		games:        config.Games,
		concurrency:  config.Concurrency,
		depthA:       config.DepthA,
		depthB:       config.DepthB,
		openingPlies: config.OpeningPlies,
		seed:         config.Seed,
	}
	var summary, err = a.Run(ctx)
	if err != nil {
		return err
	}
	log.Printf("Final: A %v - B %v - draws %v over %v games",
		summary.wins, summary.losses, summary.draws, summary.games)
	return nil
}
