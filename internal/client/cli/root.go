package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.isUnlocked() {
		return fmt.Sprintf("(%s)", a.state.WallName)
	}
	return "(locked)"
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the wall CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("wall %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isUnlocked() {
				fmt.Println("Available commands: (l)ist, add, edit, pin, delete, refresh, logout, exit")
			} else {
				fmt.Println("Available commands: unlock, exit")
			}

		case "unlock":
			a.Unlock(ctx)
		case "l", "list":
			if a.requireUnlocked() {
				a.list(ctx)
			}
		case "add":
			if a.requireUnlocked() {
				a.add(ctx)
			}
		case "edit":
			if a.requireUnlocked() {
				a.edit(ctx)
			}
		case "pin":
			if a.requireUnlocked() {
				a.pin(ctx)
			}
		case "delete":
			if a.requireUnlocked() {
				a.delete(ctx)
			}
		case "refresh":
			if a.requireUnlocked() {
				a.refresh(ctx)
			}
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) requireUnlocked() bool {
	if !a.isUnlocked() {
		fmt.Println("The wall is locked. Type 'unlock' first.")
		return false
	}
	return true
}
