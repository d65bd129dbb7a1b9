package mongodb

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

type employeeDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Branch       string             `bson:"branch"`
}

type saleDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Date             string             `bson:"date"`
	NetworkNumber    int                `bson:"networkNumber"`
	MastercardAmount amount             `bson:"mastercardAmount"`
	MadaAmount       amount             `bson:"madaAmount"`
	VisaAmount       amount             `bson:"visaAmount"`
	GCCAmount        amount             `bson:"gccAmount"`
	Total            amount             `bson:"total"`
	EmployeeID       employeeRef        `bson:"employeeId"`
}

// amount se guarda como Decimal128. Lee también double e int de documentos antiguos.
type amount struct {
	decimal.Decimal
}

func (a amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d, err := primitive.ParseDecimal128(a.Decimal.String())
	if err != nil {
		return 0, nil, fmt.Errorf("mongodb: monto %s: %w", a.Decimal, err)
	}
	return bson.MarshalValue(d)
}

func (a *amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Decimal128:
		d, err := decimal.NewFromString(rv.Decimal128().String())
		if err != nil {
			return fmt.Errorf("mongodb: monto decimal128: %w", err)
		}
		a.Decimal = d
	case bsontype.Double:
		a.Decimal = decimal.NewFromFloat(rv.Double())
	case bsontype.Int32:
		a.Decimal = decimal.NewFromInt32(rv.Int32())
	case bsontype.Int64:
		a.Decimal = decimal.NewFromInt(rv.Int64())
	case bsontype.Null, bsontype.Undefined:
		a.Decimal = decimal.Zero
	default:
		return fmt.Errorf("mongodb: tipo BSON %s no soportado para monto", t)
	}
	return nil
}

// employeeRef se guarda como ObjectID si el texto lo es; si no, como string.
type employeeRef string

func (r employeeRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, err := primitive.ObjectIDFromHex(string(r)); err == nil {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(r))
}

func (r *employeeRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		*r = employeeRef(rv.ObjectID().Hex())
	case bsontype.String:
		*r = employeeRef(rv.StringValue())
	case bsontype.Null, bsontype.Undefined:
		*r = ""
	default:
		return fmt.Errorf("mongodb: tipo BSON %s no soportado para employeeId", t)
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func toEmployeeDocument(e *entity.Employee) employeeDocument {
	return employeeDocument{
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Branch:       string(e.Branch),
	}
}

func (d employeeDocument) entity() *entity.Employee {
	return &entity.Employee{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Branch:       entity.Branch(d.Branch),
	}
}

func toSaleDocument(s *entity.SaleEntry) saleDocument {
	return saleDocument{
		Date:             s.Date,
		NetworkNumber:    s.NetworkNumber,
		MastercardAmount: amount{s.MastercardAmount},
		MadaAmount:       amount{s.MadaAmount},
		VisaAmount:       amount{s.VisaAmount},
		GCCAmount:        amount{s.GCCAmount},
		Total:            amount{s.Total},
		EmployeeID:       employeeRef(s.EmployeeID),
	}
}

func (d saleDocument) entity() *entity.SaleEntry {
	return &entity.SaleEntry{
		ID:               d.ID.Hex(),
		Date:             d.Date,
		NetworkNumber:    d.NetworkNumber,
		MastercardAmount: d.MastercardAmount.Decimal,
		MadaAmount:       d.MadaAmount.Decimal,
		VisaAmount:       d.VisaAmount.Decimal,
		GCCAmount:        d.GCCAmount.Decimal,
		Total:            d.Total.Decimal,
		EmployeeID:       string(d.EmployeeID),
	}
}

// setFields campos de $set: todo el documento salvo _id.
func (d saleDocument) setFields() bson.M {
	return bson.M{
		"date":             d.Date,
		"networkNumber":    d.NetworkNumber,
		"mastercardAmount": d.MastercardAmount,
		"madaAmount":       d.MadaAmount,
		"visaAmount":       d.VisaAmount,
		"gccAmount":        d.GCCAmount,
		"total":            d.Total,
		"employeeId":       d.EmployeeID,
	}
}

func (d employeeDocument) setFields() bson.M {
	return bson.M{
		"name":          d.Name,
		"username":      d.Username,
		"password_hash": d.PasswordHash,
		"branch":        d.Branch,
	}
}
