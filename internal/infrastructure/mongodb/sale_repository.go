package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/domain/repository"
)

// SaleRepo implementación de repository.SaleRepository sobre la colección sales.
type SaleRepo struct {
	client *Client
}

var _ repository.SaleRepository = (*SaleRepo)(nil)

// NewSaleRepository construye el repositorio.
func NewSaleRepository(client *Client) *SaleRepo {
	return &SaleRepo{client: client}
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.SaleEntry, error) {
	coll, err := r.client.collection(ctx, salesCollection)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	var docs []saleDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	out := make([]*entity.SaleEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.SaleEntry, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.client.collection(ctx, salesCollection)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, coll, oid)
}

func (r *SaleRepo) findOne(ctx context.Context, coll *mongo.Collection, oid primitive.ObjectID) (*entity.SaleEntry, error) {
	var doc saleDocument
	err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find sale: %w", err)
	}
	return doc.entity(), nil
}

func (r *SaleRepo) Create(ctx context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error) {
	coll, err := r.client.collection(ctx, salesCollection)
	if err != nil {
		return nil, err
	}
	doc := toSaleDocument(sale)
	doc.ID = primitive.NewObjectID()
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}
	return doc.entity(), nil
}

func (r *SaleRepo) Update(ctx context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error) {
	oid, err := parseObjectID(sale.ID)
	if err != nil {
		return nil, err
	}
	coll, err := r.client.collection(ctx, salesCollection)
	if err != nil {
		return nil, err
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": toSaleDocument(sale).setFields()})
	if err != nil {
		return nil, fmt.Errorf("update sale: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, coll, oid)
}

func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	coll, err := r.client.collection(ctx, salesCollection)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
