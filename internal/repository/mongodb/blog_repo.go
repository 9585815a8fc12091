package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloglist-service/internal/domain/blog"
	"bloglist-service/internal/platform/store"
)

type blogDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author string             `bson:"author"`
	URL    string             `bson:"url"`
	Likes  int                `bson:"likes"`
	User   primitive.ObjectID `bson:"user,omitempty"`
}

func (d blogDoc) toBlog() blog.Blog {
	b := blog.Blog{
		ID:     d.ID.Hex(),
		Title:  d.Title,
		Author: d.Author,
		URL:    d.URL,
		Likes:  d.Likes,
	}
	if !d.User.IsZero() {
		b.UserID = d.User.Hex()
	}
	return b
}

type BlogRepo struct {
	coll *mongo.Collection
}

func NewBlogRepo(db *mongo.Database) *BlogRepo {
	return &BlogRepo{coll: db.Collection(blogsCollection)}
}

func (r *BlogRepo) Create(ctx context.Context, b *blog.Blog) error {
	doc := blogDoc{Title: b.Title, Author: b.Author, URL: b.URL, Likes: b.Likes}
	if b.UserID != "" {
		uid, err := objectID(b.UserID)
		if err != nil {
			return err
		}
		doc.User = uid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	b.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (*blog.Blog, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var d blogDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return nil, translate(err)
	}
	b := d.toBlog()
	return &b, nil
}

// List returns blogs in insertion order.
func (r *BlogRepo) List(ctx context.Context) ([]blog.Blog, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []blogDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]blog.Blog, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toBlog())
	}
	return res, nil
}

func (r *BlogRepo) Update(ctx context.Context, id string, input blog.UpdateInput) (*blog.Blog, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Author != nil {
		set["author"] = *input.Author
	}
	if input.URL != nil {
		set["url"] = *input.URL
	}
	if input.Likes != nil {
		set["likes"] = *input.Likes
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var d blogDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&d)
	if err != nil {
		return nil, translate(err)
	}
	b := d.toBlog()
	return &b, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
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
