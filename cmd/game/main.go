// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-typing-defense/internal/app"
	"go-typing-defense/internal/audio"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/state"
	"go-typing-defense/internal/store"
	"go-typing-defense/internal/utils"
	"go-typing-defense/internal/words"
)

const defaultDatabasePath = "typing-defense.db"

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// scoreRecorder persists finished runs. Inserts are fire-and-forget so the
// game loop never blocks on disk.
type scoreRecorder struct {
	store *store.Store
	seed  int64
}

func (r *scoreRecorder) OnEvent(e event.Event) {
	result, ok := e.Data.(event.FinalResult)
	if !ok {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := r.store.InsertScore(ctx, store.Score{
			PlayedAt: time.Now(),
			Score:    result.Score,
			Waves:    result.Waves,
			WPM:      result.WPM,
			Accuracy: result.Accuracy,
			Seed:     r.seed,
		})
		if err != nil {
			log.Printf("record score: %v", err)
		}
	}()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks a random one")
	wordsPath := flag.String("words", "", "path to a word list, one word per line")
	lives := flag.Int("lives", 0, "starting lives, 0 uses the default")
	dbPath := flag.String("db", "", "path to the scores database")
	mute := flag.Bool("mute", false, "disable audio")
	top := flag.Int("top", 0, "print the top N scores and exit")
	flag.Parse()

	var fileCfg config.FileConfig
	if *configPath != "" {
		var err error
		fileCfg, err = config.LoadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Flags beat the config file, the config file beats the defaults.
	if *lives == 0 && fileCfg.Game.Lives != nil {
		*lives = *fileCfg.Game.Lives
	}
	if *seed == 0 && fileCfg.Game.Seed != nil {
		*seed = *fileCfg.Game.Seed
	}
	if *wordsPath == "" && fileCfg.Game.WordListPath != nil {
		*wordsPath = *fileCfg.Game.WordListPath
	}
	if *dbPath == "" && fileCfg.Game.DatabasePath != nil {
		*dbPath = *fileCfg.Game.DatabasePath
	}
	if fileCfg.Game.Audio != nil && !*fileCfg.Game.Audio {
		*mute = true
	}
	if *dbPath == "" {
		*dbPath = defaultDatabasePath
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	scores, err := store.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if cerr := scores.Close(); cerr != nil {
			log.Printf("close store: %v", cerr)
		}
	}()

	if *top > 0 {
		printTopScores(scores, *top)
		return
	}

	source, err := loadWords(*wordsPath, utils.NewPRNGService(*seed))
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()

	if !*mute {
		cues := audio.NewManager()
		if err := cues.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			cues.Register(dispatcher)
		}
	}
	dispatcher.Subscribe(event.GameFinalized, &scoreRecorder{store: scores, seed: *seed})

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, state.Deps{
		Dispatcher: dispatcher,
		Source:     source,
		Opts:       app.Options{Lives: *lives, Seed: *seed},
	}))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Typing Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadWords(path string, rng *utils.PRNGService) (words.Source, error) {
	if path == "" {
		return words.Default(rng)
	}
	return words.LoadFile(path, rng)
}

func printTopScores(scores *store.Store, limit int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	top, err := scores.TopScores(ctx, limit)
	if err != nil {
		log.Fatal(err)
	}
	if len(top) == 0 {
		fmt.Println("no scores yet")
		return
	}
	w := os.Stdout
	fmt.Fprintf(w, "%-4s %-20s %8s %6s %5s %9s\n", "#", "played", "score", "waves", "wpm", "accuracy")
	for i, sc := range top {
		fmt.Fprintf(w, "%-4d %-20s %8d %6d %5d %8d%%\n",
			i+1, sc.PlayedAt.Local().Format("2006-01-02 15:04"), sc.Score, sc.Waves, sc.WPM, sc.Accuracy)
	}
}
