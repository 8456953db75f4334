package repomanager

import (
	"context"
	"database/sql"

	"github.com/mkalens/wallpaper/internal/dbx"
	"github.com/mkalens/wallpaper/internal/server/repositories/memos"
	"github.com/mkalens/wallpaper/internal/server/repositories/walls"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Walls(db dbx.DBTX) walls.Repository
	Memos(db dbx.DBTX) memos.Repository
}
