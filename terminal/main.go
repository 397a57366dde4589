package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/AmineOuatt/othello-game/othello"
	"github.com/gdamore/tcell/v2"
)

func main() {
	var err = run()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var (
		modeName  = flag.String("mode", "hva", "hvh (human vs human), hva (human vs AI) or ava (AI vs AI)")
		depth     = flag.Int("depth", 3, "AI search depth (1 easy, 3 medium, 5 hard)")
		humanName = flag.String("human", "black", "colour played by the human in hva mode")
		delay     = flag.Duration("delay", 400*time.Millisecond, "pause between AI moves in ava mode")
		logPath   = flag.String("log", "", "write search logs to this file")
	)
	flag.Parse()

	mode, err := parseMode(*modeName)
	if err != nil {
		return err
	}
	human, err := othello.ParsePlayer(*humanName)
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	u, err := newUI(screen, uiSettings{mode: mode, depth: *depth, human: human, aiDelay: *delay, logStats: *logPath != ""})
	if err != nil {
		return err
	}
	return u.Run()
}
