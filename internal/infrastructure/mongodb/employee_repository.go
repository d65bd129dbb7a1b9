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

// EmployeeRepo implementación de repository.EmployeeRepository sobre la colección employees.
type EmployeeRepo struct {
	client *Client
}

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// NewEmployeeRepository construye el repositorio.
func NewEmployeeRepository(client *Client) *EmployeeRepo {
	return &EmployeeRepo{client: client}
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	coll, err := r.client.collection(ctx, employeesCollection)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	var docs []employeeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	out := make([]*entity.Employee, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.client.collection(ctx, employeesCollection)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, coll, oid)
}

func (r *EmployeeRepo) findOne(ctx context.Context, coll *mongo.Collection, oid primitive.ObjectID) (*entity.Employee, error) {
	var doc employeeDocument
	err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return doc.entity(), nil
}

func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	coll, err := r.client.collection(ctx, employeesCollection)
	if err != nil {
		return nil, err
	}
	doc := toEmployeeDocument(employee)
	doc.ID = primitive.NewObjectID()
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return doc.entity(), nil
}

func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	oid, err := parseObjectID(employee.ID)
	if err != nil {
		return nil, err
	}
	coll, err := r.client.collection(ctx, employeesCollection)
	if err != nil {
		return nil, err
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": toEmployeeDocument(employee).setFields()})
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, coll, oid)
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	coll, err := r.client.collection(ctx, employeesCollection)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
