package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bloglist-service/internal/domain/person"
	"bloglist-service/internal/platform/store"
)

type personDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"name"`
	Number string             `bson:"number"`
}

func (d personDoc) toPerson() person.Person {
	return person.Person{ID: d.ID.Hex(), Name: d.Name, Number: d.Number}
}

type PersonRepo struct {
	coll *mongo.Collection
}

func NewPersonRepo(db *mongo.Database) *PersonRepo {
	return &PersonRepo{coll: db.Collection(personsCollection)}
}

func (r *PersonRepo) Create(ctx context.Context, p *person.Person) error {
	res, err := r.coll.InsertOne(ctx, personDoc{Name: p.Name, Number: p.Number})
	if err != nil {
		return translate(err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *PersonRepo) GetByID(ctx context.Context, id string) (*person.Person, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *PersonRepo) GetByName(ctx context.Context, name string) (*person.Person, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *PersonRepo) List(ctx context.Context) ([]person.Person, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []personDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]person.Person, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toPerson())
	}
	return res, nil
}

func (r *PersonRepo) Update(ctx context.Context, p *person.Person) error {
	oid, err := objectID(p.ID)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"name": p.Name, "number": p.Number}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *PersonRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *PersonRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *PersonRepo) findOne(ctx context.Context, filter bson.M) (*person.Person, error) {
	var d personDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, translate(err)
	}
	p := d.toPerson()
	return &p, nil
}
