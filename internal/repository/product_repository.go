package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmanature-storefront/internal/models"
)

// ErrNotFound is returned when a document does not exist or is soft-deleted.
var ErrNotFound = errors.New("not found")

type ProductRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
		counters:   db.Collection("counters"),
	}
}

// nextID allocates the next product id from the counters collection.
func (r *ProductRepository) nextID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": "product_id"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate product id: %w", err)
	}
	return counter.Seq, nil
}

// EnsureCounterAtLeast raises the id sequence to at least n, so seeded
// fixed ids never collide with allocated ones.
func (r *ProductRepository) EnsureCounterAtLeast(ctx context.Context, n int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := r.counters.UpdateOne(
		ctx,
		bson.M{"_id": "product_id"},
		bson.M{"$max": bson.M{"seq": n}},
		opts,
	)
	return err
}

// Create inserts a new product. A missing or non-positive id gets the next
// value from the sequence; seed data supplies its own ids.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if product.ID <= 0 {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}
		product.ID = id
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	product.IsDeleted = false

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindByID fetches one product by its integer id, skipping soft-deleted ones.
func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var product models.Product
	filter := bson.M{
		"_id":        id,
		"is_deleted": false,
	}

	err := r.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs fetches products for the given ids, preserving the requested
// order. Unknown or soft-deleted ids are skipped silently.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []int) ([]*models.Product, error) {
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":        bson.M{"$in": ids},
		"is_deleted": false,
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fetched []*models.Product
	if err = cursor.All(ctx, &fetched); err != nil {
		return nil, err
	}

	byID := make(map[int]*models.Product, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}

	ordered := make([]*models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// FindAll lists products with pagination and an optional category filter.
func (r *ProductRepository) FindAll(ctx context.Context, page, pageSize int, category, sortBy, sortOrder string) ([]*models.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"is_deleted": false}
	if category != "" {
		filter["category"] = category
	}

	// Count in parallel with the page query
	totalCh := make(chan int64, 1)
	errCh := make(chan error, 1)

	go func() {
		total, err := r.collection.CountDocuments(ctx, filter)
		if err != nil {
			errCh <- err
			return
		}
		totalCh <- total
	}()

	findOptions := options.Find()

	if page > 0 && pageSize > 0 {
		skip := (page - 1) * pageSize
		findOptions.SetSkip(int64(skip))
		findOptions.SetLimit(int64(pageSize))
	} else {
		findOptions.SetLimit(100)
	}

	sortField := "created_at"
	sortOrderInt := -1
	if sortBy != "" {
		sortField = sortBy
	}
	if sortOrder == "asc" {
		sortOrderInt = 1
	}
	findOptions.SetSort(bson.D{{Key: sortField, Value: sortOrderInt}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	var total int64
	select {
	case total = <-totalCh:
	case err := <-errCh:
		return products, 0, err
	case <-ctx.Done():
		return products, 0, ctx.Err()
	}

	return products, total, nil
}

// Update patches a product with the given field map.
func (r *ProductRepository) Update(ctx context.Context, id int, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update["updated_at"] = time.Now()

	filter := bson.M{
		"_id":        id,
		"is_deleted": false,
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete marks a product as deleted without removing the document.
func (r *ProductRepository) SoftDelete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":        id,
		"is_deleted": false,
	}
	update := bson.M{
		"$set": bson.M{
			"is_deleted": true,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count reports how many live products exist, used by the seeder.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.collection.CountDocuments(ctx, bson.M{"is_deleted": false})
}
