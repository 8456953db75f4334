package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mkalens/wallpaper/internal/client/client"
	"github.com/mkalens/wallpaper/internal/client/models"
)

func (a *App) list(ctx context.Context) {
	memos := a.boardService.Memos()
	if len(memos) == 0 {
		fmt.Println("The wall is empty.")
		return
	}

	for _, m := range memos {
		pin := "  "
		if m.IsPinned {
			pin = "* "
		}
		content := m.Content
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			content = content[:i] + " ..."
		}
		fmt.Printf("%s[%s] (%s) %s\n", pin, m.ID, m.Color, content)
	}
}

func (a *App) add(ctx context.Context) {
	content, err := GetMultiline(a.reader, "Enter memo text", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	color, err := getSimpleText(a.reader, "Enter color (yellow/pink/blue/green/purple, empty for yellow)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := getPassword(os.Stdout, "Choose a memo password (min 4 characters)")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	memo, err := a.boardService.Add(ctx, content, color, string(password))
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	fmt.Printf("Created memo %s\n", memo.ID)
}

// unlockMemo runs the ownership check for a memo: it prompts for the memo
// password and verifies it with the server before any mutation. On failure
// the user is returned to viewing with a message.
func (a *App) unlockMemo(ctx context.Context, action string) (*models.Memo, string, error) {
	id, err := getSimpleText(a.reader, fmt.Sprintf("Enter memo id to %s", action), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return nil, "", err
	}

	memo := a.boardService.Find(id)
	if memo == nil {
		log.Printf("No such memo on the board")
		return nil, "", client.ErrNotFound
	}

	password, err := getPassword(os.Stdout, "Enter memo password")
	if err != nil {
		log.Printf("error: %v", err)
		return nil, "", err
	}

	if err := a.boardService.Verify(ctx, id, string(password)); err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			log.Printf("Invalid password")
		case errors.Is(err, client.ErrNotFound):
			log.Printf("Memo not found on the server")
		default:
			log.Printf("Error: %s", err.Error())
		}
		return nil, "", err
	}

	return memo, string(password), nil
}

func (a *App) edit(ctx context.Context) {
	memo, password, err := a.unlockMemo(ctx, "edit")
	if err != nil {
		return
	}

	var content string
	for {
		content, err = GetMultiline(a.reader, "Enter new text", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		if strings.TrimSpace(content) != "" {
			break
		}
		fmt.Println("Memo text cannot be empty.")
	}

	color, err := getSimpleText(a.reader, "Enter color (empty to keep current)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var colorPtr *string
	if color != "" {
		colorPtr = &color
	}

	if _, err := a.boardService.Update(ctx, memo.ID, password, &content, colorPtr, nil); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	fmt.Println("Updated.")
}

func (a *App) pin(ctx context.Context) {
	memo, password, err := a.unlockMemo(ctx, "pin or unpin")
	if err != nil {
		return
	}

	pinned := !memo.IsPinned
	if _, err := a.boardService.Update(ctx, memo.ID, password, nil, nil, &pinned); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	if pinned {
		fmt.Println("Pinned. The memo moves up on the next refresh.")
	} else {
		fmt.Println("Unpinned. The memo moves down on the next refresh.")
	}
}

func (a *App) delete(ctx context.Context) {
	memo, password, err := a.unlockMemo(ctx, "delete")
	if err != nil {
		return
	}

	if err := a.boardService.Delete(ctx, memo.ID, password); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	fmt.Println("Deleted.")
}

func (a *App) refresh(ctx context.Context) {
	if err := a.boardService.Refetch(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	a.list(ctx)
}
