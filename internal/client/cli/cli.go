// Package cli реализует команды клиента bookshelf.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/bookshelf/internal/client/api"
	"github.com/iudanet/bookshelf/internal/client/iocli"
	"github.com/iudanet/bookshelf/internal/client/storage"
	apitypes "github.com/iudanet/bookshelf/pkg/api"
)

// ErrUnknownCommand неизвестная команда
var ErrUnknownCommand = errors.New("unknown command")

// ErrSessionExpired сервер отклонил сохраненный токен
var ErrSessionExpired = errors.New("session expired, please run 'bookshelf login' again")

//go:generate moq -out session_mock.go . SessionManager

// SessionManager локальная сессия клиента
type SessionManager interface {
	Signup(ctx context.Context, username, email, password string) (*storage.AuthData, error)
	Login(ctx context.Context, email, password string) (*storage.AuthData, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*storage.AuthData, error)
	Token(ctx context.Context) (string, error)
}

//go:generate moq -out books_mock.go . BooksAPI

// BooksAPI запросы к аккаунту и сохраненным книгам
type BooksAPI interface {
	Me(ctx context.Context, token string) (*apitypes.AccountResponse, error)
	SaveBook(ctx context.Context, token string, book apitypes.BookInput) (*apitypes.AccountResponse, error)
	RemoveBook(ctx context.Context, token, bookID string) (*apitypes.AccountResponse, error)
}

// Cli исполняет команды пользователя
type Cli struct {
	io      iocli.IO
	session SessionManager
	books   BooksAPI
	now     func() time.Time
}

// New создает CLI
func New(io iocli.IO, session SessionManager, books BooksAPI) *Cli {
	return &Cli{
		io:      io,
		session: session,
		books:   books,
		now:     time.Now,
	}
}

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return c.runSignup(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "me":
		return c.runMe(ctx)
	case "save":
		return c.runSave(ctx, args)
	case "remove":
		return c.runRemove(ctx, args)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// PrintUsage печатает справку
func PrintUsage(out iocli.IO) {
	out.Println("Bookshelf Client")
	out.Println()
	out.Println("Usage:")
	out.Println("  bookshelf [OPTIONS] COMMAND [ARGS]")
	out.Println()
	out.Println("Options:")
	out.Println("  --version      Show version information")
	out.Println("  --server URL   Server URL (default: http://localhost:8080)")
	out.Println("  --db PATH      Path to local database (default: bookshelf-client.db)")
	out.Println()
	out.Println("Commands:")
	out.Println("  signup                   Create a new account")
	out.Println("  login                    Login to server")
	out.Println("  logout                   Forget the local session")
	out.Println("  status                   Show authentication status")
	out.Println("  me                       Show account and saved books")
	out.Println("  save [FLAGS] <bookId>    Save a book (-title, -authors, -description, -image, -link)")
	out.Println("  remove <bookId>          Remove a saved book")
	out.Println()
	out.Println("Examples:")
	out.Println("  bookshelf signup")
	out.Println("  bookshelf login")
	out.Println("  bookshelf save -title 'Dune' -authors 'Frank Herbert' B1")
	out.Println("  bookshelf remove B1")
	out.Println("  bookshelf --server https://example.com me")
}

// apiError переводит отказ сервера по токену в ErrSessionExpired
func apiError(action string, err error) error {
	if api.IsUnauthorized(err) {
		return ErrSessionExpired
	}
	return fmt.Errorf("%s: %w", action, err)
}

func (c *Cli) printAccount(account *apitypes.AccountResponse) {
	c.io.Printf("Username: %s\n", account.Username)
	c.io.Printf("Email:    %s\n", account.Email)
	c.io.Println()

	if len(account.SavedBooks) == 0 {
		c.io.Println("No saved books.")
		c.io.Println()
		c.io.Println("Use 'bookshelf save <bookId>' to save your first book.")
		return
	}

	c.io.Printf("Saved books (%d):\n", account.BookCount)
	c.io.Println()
	for i, book := range account.SavedBooks {
		c.io.Printf("%d. %s\n", i+1, book.Title)
		c.io.Printf("   ID:      %s\n", book.BookID)
		if len(book.Authors) > 0 {
			c.io.Printf("   Authors: %s\n", strings.Join(book.Authors, ", "))
		}
		if book.Link != "" {
			c.io.Printf("   Link:    %s\n", book.Link)
		}
	}
}
