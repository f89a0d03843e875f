// Package chapter provides a reference in-memory chapter store.
//
// The pacing core only needs a token source; this package supplies one
// backed by plain text chapters, for tests, tools, and embedders that do
// not bring their own storage.
package chapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/readpace/rsvp/token"
)

// Sentinel errors for chapter package.
var (
	// ErrUnknownBook is returned when a book ID is not in the store.
	ErrUnknownBook = errors.New("chapter: unknown book")

	// ErrNoSuchChapter is returned for an out-of-range chapter index.
	ErrNoSuchChapter = errors.New("chapter: no such chapter")

	// ErrDuplicateBook is returned when adding a book ID twice.
	ErrDuplicateBook = errors.New("chapter: duplicate book")
)

// Chapter is one pre-segmented plain text chapter.
type Chapter struct {
	Index int
	Title string
	Text  string
}

// Book is an ordered set of chapters.
type Book struct {
	ID       string
	Title    string
	Chapters []Chapter
}

// Load builds a Book from plain text. Form feeds separate chapters;
// chapters without a heading line get a numbered title.
func Load(id, title, text string) *Book {
	b := &Book{ID: id, Title: title}
	for i, part := range strings.Split(text, "\f") {
		ct := firstLine(part)
		if ct == "" {
			ct = fmt.Sprintf("Chapter %d", i+1)
		}
		b.Chapters = append(b.Chapters, Chapter{Index: i, Title: ct, Text: part})
	}
	return b
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Store is an in-memory book collection. It implements the frame cache's
// TokenSource by tokenizing chapter text on demand.
//
// Store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	books map[string]*Book
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{books: make(map[string]*Book)}
}

// Add registers a book. The store owns the value afterwards.
func (s *Store) Add(b *Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[b.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBook, b.ID)
	}
	s.books[b.ID] = b
	return nil
}

// Book returns a stored book by ID.
func (s *Store) Book(id string) (*Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	return b, ok
}

// Tokens tokenizes one chapter. Implements frames.TokenSource.
func (s *Store) Tokens(ctx context.Context, bookID string, chapterIndex int) ([]token.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	b, ok := s.books[bookID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBook, bookID)
	}
	if chapterIndex < 0 || chapterIndex >= len(b.Chapters) {
		return nil, fmt.Errorf("%w: %s chapter %d of %d", ErrNoSuchChapter, bookID, chapterIndex, len(b.Chapters))
	}

	return token.Tokenize(b.Chapters[chapterIndex].Text), nil
}
