package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/mkalens/wallpaper/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Unlock prompts for the wall passphrase and tries to unlock the board.
// On success the unlock state is persisted locally and the memo list is
// loaded, so the session survives a restart.
func (a *App) Unlock(ctx context.Context) error {
	password, err := getPassword(os.Stdout, "Enter wall passphrase")
	if err != nil {
		return err
	}

	state, err := a.sessionService.Unlock(ctx, string(password))
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			log.Printf("Invalid passphrase")
		case errors.Is(err, client.ErrNotFound):
			log.Printf("No wall is configured on the server")
		default:
			log.Printf("Unlock failed: %s", err.Error())
		}
		return err
	}

	if err := a.boardService.Load(ctx, state.WallID); err != nil {
		log.Printf("error loading board: %s", err.Error())
		return err
	}

	a.state = state
	log.Printf("Unlocked wall %q", state.WallName)
	return nil
}

// Logout wipes the persisted unlock state and locks the board.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessionService.Logout(ctx); err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}
	a.state = nil
	log.Printf("Locked")
	return nil
}
