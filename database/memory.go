package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"synergia-booking/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps bookings in insertion order inside the process. With a
// local path set, the whole collection is written to that JSON file after
// every change and read back on start.
type MemoryStore struct {
	mu        sync.RWMutex
	bookings  []model.Booking
	localPath string
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: []model.Booking{}, now: time.Now}
}

func NewLocalStore(path string) (*MemoryStore, error) {
	s := NewMemoryStore()
	s.localPath = path

	bookings, err := readLocalDB(path)
	if err != nil {
		return nil, err
	}
	s.bookings = bookings
	return s, nil
}

func readLocalDB(path string) ([]model.Booking, error) {
	bookings := []model.Booking{}

	fileBytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return bookings, nil
	} else if err != nil {
		return nil, fmt.Errorf("read local db %v: %w", path, err)
	}

	if err := json.Unmarshal(fileBytes, &bookings); err != nil {
		return nil, fmt.Errorf("parse local db %v: %w", path, err)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings, nil
}

// commit must be called with mu held for writing.
func (s *MemoryStore) commit() error {
	if s.localPath == "" {
		return nil
	}

	bookingsBytes, err := json.MarshalIndent(s.bookings, "", "	")
	if err != nil {
		return fmt.Errorf("encode local db: %w", err)
	}
	if err := os.WriteFile(s.localPath, bookingsBytes, 0644); err != nil {
		return fmt.Errorf("write local db %v: %w", s.localPath, err)
	}
	return nil
}

// indexOf must be called with mu held.
func (s *MemoryStore) indexOf(id string) (int, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}
	for i, booking := range s.bookings {
		if booking.Id == objId {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

func (s *MemoryStore) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking = model.NewBooking(booking, s.now())
	s.bookings = append(s.bookings, booking)
	if err := s.commit(); err != nil {
		s.bookings = s.bookings[:len(s.bookings)-1]
		return model.Booking{}, err
	}
	return booking, nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]model.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return bookings, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, err := s.indexOf(id)
	if err != nil {
		return model.Booking{}, err
	}
	return s.bookings[i], nil
}

func (s *MemoryStore) FindByFilter(ctx context.Context, filter Filter) ([]model.Booking, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	contains := strings.Contains
	if !filter.CaseSensitive {
		contains = containsFold
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []model.Booking{}
	for _, booking := range s.bookings {
		value, _ := booking.Field(filter.Field)
		if contains(value, filter.Pattern) {
			matches = append(matches, booking)
		}
	}
	return matches, nil
}

// containsFold reports whether substr is within s under Unicode simple case
// folding, the same equivalence strings.EqualFold uses. Folding maps rune
// to rune, so each candidate window spans as many runes as substr.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	runes := utf8.RuneCountInString(substr)
	for start := range s {
		end, count := start, 0
		for end < len(s) && count < runes {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			count++
		}
		if count < runes {
			return false
		}
		if strings.EqualFold(s[start:end], substr) {
			return true
		}
	}
	return false
}

func (s *MemoryStore) Update(ctx context.Context, id string, patch model.BookingPatch) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(id)
	if err != nil {
		return model.Booking{}, err
	}

	previous := s.bookings[i]
	updated := previous
	patch.ApplyTo(&updated, s.now())
	s.bookings[i] = updated
	if err := s.commit(); err != nil {
		s.bookings[i] = previous
		return model.Booking{}, err
	}
	return updated, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(id)
	if err != nil {
		return model.Booking{}, err
	}

	removed := s.bookings[i]
	remaining := make([]model.Booking, 0, len(s.bookings)-1)
	remaining = append(remaining, s.bookings[:i]...)
	remaining = append(remaining, s.bookings[i+1:]...)

	previous := s.bookings
	s.bookings = remaining
	if err := s.commit(); err != nil {
		s.bookings = previous
		return model.Booking{}, err
	}
	return removed, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
