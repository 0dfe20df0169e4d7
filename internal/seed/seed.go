package seed

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"pharmanature-storefront/internal/models"
	"pharmanature-storefront/internal/repository"
)

// Run populates empty collections with the initial PharmaNature catalog and
// the default offers configuration. Existing data is never touched, so the
// seeder is safe to run on every startup.
func Run(ctx context.Context, db *mongo.Database) error {
	products := repository.NewProductRepository(db)
	categories := repository.NewCategoryRepository(db)
	offers := repository.NewOffersRepository(db)

	if err := seedCategories(ctx, categories); err != nil {
		return err
	}
	if err := seedProducts(ctx, products); err != nil {
		return err
	}
	return seedOffers(ctx, offers)
}

func seedCategories(ctx context.Context, repo *repository.CategoryRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range defaultCategories {
		if err := repo.Upsert(ctx, &defaultCategories[i]); err != nil {
			return err
		}
	}
	logrus.WithField("count", len(defaultCategories)).Info("seeded categories")
	return nil
}

func seedProducts(ctx context.Context, repo *repository.ProductRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	maxID := 0
	for i := range defaultProducts {
		if err := repo.Create(ctx, &defaultProducts[i]); err != nil {
			return err
		}
		if defaultProducts[i].ID > maxID {
			maxID = defaultProducts[i].ID
		}
	}
	if err := repo.EnsureCounterAtLeast(ctx, maxID); err != nil {
		return err
	}
	logrus.WithField("count", len(defaultProducts)).Info("seeded products")
	return nil
}

func seedOffers(ctx context.Context, repo *repository.OffersRepository) error {
	stored, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	if stored != nil {
		return nil
	}

	cfg := models.DefaultOffersConfig()
	if err := repo.Save(ctx, &cfg); err != nil {
		return err
	}
	logrus.Info("seeded default offers configuration")
	return nil
}
