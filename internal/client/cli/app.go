package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/mkalens/wallpaper/internal/client/client"
	"github.com/mkalens/wallpaper/internal/client/config"
	"github.com/mkalens/wallpaper/internal/client/models"
	"github.com/mkalens/wallpaper/internal/client/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config         *config.Config
	sessionService services.SessionService
	boardService   services.BoardService
	state          *models.AuthState
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerURL)

	ss := services.NewSessionService(apiClient, repos.Session)
	bs := services.NewBoardService(apiClient)

	return &App{
		config:         c,
		sessionService: ss,
		boardService:   bs,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isUnlocked() bool {
	return a.state != nil && a.state.IsAuthenticated
}

// Run resumes a persisted session if one exists, then enters the REPL.
func (a *App) Run(ctx context.Context) {
	state, err := a.sessionService.Current(ctx)
	if err != nil {
		log.Printf("error loading session: %s", err.Error())
	} else if state.IsAuthenticated {
		if err := a.boardService.Load(ctx, state.WallID); err != nil {
			log.Printf("error loading board: %s", err.Error())
		} else {
			a.state = state
			log.Printf("Resumed session for wall %q", state.WallName)
		}
	}

	a.Root(ctx)
}
