package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"synergia-booking/model"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound     = errors.New("booking not found")
	ErrUnknownField = errors.New("unknown booking field")
)

// FilterFields are the booking fields that can be searched by substring.
var FilterFields = []string{"name", "email", "event", "ticketType"}

// Filter selects bookings whose Field contains Pattern. Matching ignores
// case unless CaseSensitive is set.
type Filter struct {
	Field         string
	Pattern       string
	CaseSensitive bool
}

func (f Filter) validate() error {
	for _, field := range FilterFields {
		if f.Field == field {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, f.Field)
}

// Store persists bookings. Lookups by an id that does not exist, or that
// is not a valid identifier at all, fail with ErrNotFound.
type Store interface {
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	GetByID(ctx context.Context, id string) (model.Booking, error)
	FindByFilter(ctx context.Context, filter Filter) ([]model.Booking, error)
	Update(ctx context.Context, id string, patch model.BookingPatch) (model.Booking, error)
	Delete(ctx context.Context, id string) (model.Booking, error)
	Ping(ctx context.Context) error
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Client owns the process-wide MongoDB connection. Connect may be called
// any number of times; only the first successful call dials the server.
type Client struct {
	connString string

	mu     sync.Mutex
	client *mongo.Client
}

func NewClient(connString string) *Client {
	return &Client{connString: connString}
}

func (c *Client) Connect(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	clientOptions := options.Client().ApplyURI(c.connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	log.Print("MongoDB connected")
	c.client = client
	return c.client, nil
}

func (c *Client) Collection(ctx context.Context, dbName, collectionName string) (*mongo.Collection, error) {
	client, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(dbName).Collection(collectionName), nil
}

// Disconnect closes the connection if one was established. The Client can
// be connected again afterwards.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	if err != nil {
		return fmt.Errorf("cannot disconnect from the db: %v", err)
	}
	log.Print("MongoDB disconnected")
	return nil
}
