package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bloglist-service/internal/domain/user"
	"bloglist-service/internal/platform/store"
)

type userDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Name         string               `bson:"name"`
	PasswordHash string               `bson:"passwordHash"`
	Blogs        []primitive.ObjectID `bson:"blogs"`
	CreatedAt    time.Time            `bson:"createdAt"`
}

func (d userDoc) toUser() user.User {
	ids := make([]string, 0, len(d.Blogs))
	for _, b := range d.Blogs {
		ids = append(ids, b.Hex())
	}
	return user.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		BlogIDs:      ids,
		CreatedAt:    d.CreatedAt,
	}
}

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(usersCollection)}
}

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	doc := userDoc{
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Blogs:        []primitive.ObjectID{},
		CreatedAt:    time.Now().UTC(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID).Hex()
	u.CreatedAt = doc.CreatedAt
	return nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]user.User, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toUser())
	}
	return res, nil
}

func (r *UserRepo) AddBlog(ctx context.Context, userID, blogID string) error {
	return r.updateBlogs(ctx, userID, blogID, "$addToSet")
}

func (r *UserRepo) RemoveBlog(ctx context.Context, userID, blogID string) error {
	return r.updateBlogs(ctx, userID, blogID, "$pull")
}

func (r *UserRepo) updateBlogs(ctx context.Context, userID, blogID, op string) error {
	uid, err := objectID(userID)
	if err != nil {
		return err
	}
	bid, err := objectID(blogID)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, uid, bson.M{op: bson.M{"blogs": bid}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*user.User, error) {
	var d userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, translate(err)
	}
	u := d.toUser()
	return &u, nil
}
