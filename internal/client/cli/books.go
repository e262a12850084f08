package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/bookshelf/pkg/api"
)

const (
	saveUsage   = "Usage: bookshelf save [-title T] [-authors 'A, B'] [-description D] [-image URL] [-link URL] <bookId>"
	removeUsage = "Usage: bookshelf remove <bookId>"
)

func (c *Cli) runMe(ctx context.Context) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	account, err := c.books.Me(ctx, token)
	if err != nil {
		return apiError("failed to load account", err)
	}

	c.io.Println("=== Account ===")
	c.io.Println()
	c.printAccount(account)
	return nil
}

func (c *Cli) runSave(ctx context.Context, args []string) error {
	book, err := parseSaveArgs(args)
	if err != nil {
		return err
	}

	if book.Title == "" {
		title, err := c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		if title == "" {
			return errors.New("title cannot be empty")
		}
		book.Title = title
	}

	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	account, err := c.books.SaveBook(ctx, token, book)
	if err != nil {
		return apiError("failed to save book", err)
	}

	c.io.Printf("✓ Book %s saved. Books on shelf: %d\n", book.BookID, account.BookCount)
	return nil
}

func (c *Cli) runRemove(ctx context.Context, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("missing book id. %s", removeUsage)
	}
	bookID := args[0]

	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	account, err := c.books.RemoveBook(ctx, token, bookID)
	if err != nil {
		return apiError("failed to remove book", err)
	}

	c.io.Printf("✓ Book %s removed. Books on shelf: %d\n", bookID, account.BookCount)
	return nil
}

// parseSaveArgs разбирает флаги команды save
func parseSaveArgs(args []string) (api.BookInput, error) {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	title := fs.String("title", "", "book title")
	authors := fs.String("authors", "", "comma-separated authors")
	description := fs.String("description", "", "book description")
	image := fs.String("image", "", "cover image URL")
	link := fs.String("link", "", "book page URL")

	if err := fs.Parse(args); err != nil {
		return api.BookInput{}, fmt.Errorf("%w. %s", err, saveUsage)
	}
	if fs.NArg() != 1 || strings.TrimSpace(fs.Arg(0)) == "" {
		return api.BookInput{}, fmt.Errorf("missing book id. %s", saveUsage)
	}

	return api.BookInput{
		BookID:      fs.Arg(0),
		Title:       strings.TrimSpace(*title),
		Authors:     splitAuthors(*authors),
		Description: *description,
		Image:       *image,
		Link:        *link,
	}, nil
}

func splitAuthors(s string) []string {
	authors := []string{}
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}
