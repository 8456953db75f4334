// Command seed prepares the database for a fresh deployment: it applies the
// migrations and creates the wall with its bcrypt-hashed passphrase. By
// default it refuses to add a wall when one already exists.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/mkalens/wallpaper/internal/flagx"
	"github.com/mkalens/wallpaper/internal/hashx"
	"github.com/mkalens/wallpaper/internal/server/config"
	"github.com/mkalens/wallpaper/internal/server/models"
	"github.com/mkalens/wallpaper/internal/server/repositories/repomanager"
)

func main() {
	cfg := config.LoadConfig()

	args := flagx.FilterArgs(os.Args[1:], []string{"-n", "-p", "-force"})
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	name := fs.String("n", "Friendship Wall", "wall name")
	passphrase := fs.String("p", "", "wall passphrase (prompted when empty)")
	force := fs.Bool("force", false, "create the wall even if one already exists")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("%v", err)
	}

	if err := run(context.Background(), cfg, *name, *passphrase, *force); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, name, passphrase string, force bool) error {
	if passphrase == "" {
		fmt.Print("Enter wall passphrase: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("passphrase read error: %w", err)
		}
		passphrase = string(pw)
	}
	if passphrase == "" {
		return fmt.Errorf("passphrase must not be empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("db migration error: %w", err)
	}

	wallsRepo := rm.Walls(db)

	count, err := wallsRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("wall lookup error: %w", err)
	}
	if count > 0 && !force {
		return fmt.Errorf("a wall already exists; rerun with -force to add another")
	}

	hash, err := hashx.NewHasher(cfg.BcryptCost).Hash([]byte(passphrase))
	if err != nil {
		return fmt.Errorf("passphrase hashing error: %w", err)
	}

	wall := &models.Wall{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: hash,
	}
	if _, err := wallsRepo.Create(ctx, wall); err != nil {
		return fmt.Errorf("wall creation error: %w", err)
	}

	log.Printf("Created wall %q (%s)", wall.Name, wall.ID)
	return nil
}
