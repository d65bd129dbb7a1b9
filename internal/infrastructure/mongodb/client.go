package mongodb

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/netsales-api/pkg/config"
)

const (
	employeesCollection = "employees"
	salesCollection     = "sales"
)

// Client handle de base de datos que conecta en el primer uso y se reutiliza después.
type Client struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewClient valida la configuración sin abrir conexión.
func NewClient(cfg config.MongoConfig) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb: MONGODB_URI no configurado")
	}
	name := cfg.Database
	if name == "" {
		name = "pos_db"
	}
	return &Client{uri: cfg.URI, dbName: name}, nil
}

// Database devuelve la base, conectando si aún no hay conexión.
func (c *Client) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return c.db, nil
	}
	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb: conectar: %w", err)
	}
	c.client = cl
	c.db = cl.Database(c.dbName)
	return c.db, nil
}

func (c *Client) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := c.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping comprueba la conexión con el servidor.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.Database(ctx); err != nil {
		return err
	}
	return c.client.Ping(ctx, nil)
}

// Close desconecta; un Database posterior vuelve a conectar.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client, c.db = nil, nil
	return err
}
