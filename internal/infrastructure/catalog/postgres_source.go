package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crediflow/calc-service/internal/domain/model"
)

// PostgresSource loads the credit catalog from a postgres table. The schema
// mirrors the file format: range pricing columns are nullable and tiers are
// stored as a JSONB array, so the shape tag is still field presence.
//
//	CREATE TABLE credit_products (
//	    product_type             TEXT PRIMARY KEY,
//	    min_loan                 NUMERIC,
//	    max_loan                 NUMERIC,
//	    payment_period_days      INT,
//	    facilitation_fee_percent NUMERIC,
//	    daily_fee_percent        NUMERIC,
//	    daily_fee_max_percent    NUMERIC,
//	    penalty_percent          NUMERIC,
//	    tiers                    JSONB,
//	    position                 INT NOT NULL
//	);
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a catalog source backed by the given pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Load reads all product rows. It is called once at startup; the resulting
// catalog is immutable.
func (s *PostgresSource) Load(ctx context.Context) (model.Catalog, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT product_type, min_loan, max_loan, payment_period_days,
		       facilitation_fee_percent, daily_fee_percent, daily_fee_max_percent,
		       penalty_percent, tiers
		FROM credit_products
		ORDER BY position
	`)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("query credit products: %w", err)
	}
	defer rows.Close()

	var products []model.CreditProduct
	for rows.Next() {
		var (
			rec      productRecord
			rawTiers []byte
		)
		if err := rows.Scan(
			&rec.Type, &rec.MinLoan, &rec.MaxLoan, &rec.PaymentPeriodDays,
			&rec.FacilitationFeePercent, &rec.DailyFeePercent, &rec.DailyFeeMaxPercent,
			&rec.PenaltyPercent, &rawTiers,
		); err != nil {
			return model.Catalog{}, fmt.Errorf("scan credit product: %w", err)
		}
		if len(rawTiers) > 0 {
			if err := json.Unmarshal(rawTiers, &rec.Amounts); err != nil {
				return model.Catalog{}, fmt.Errorf("parse tiers of product %q: %w", rec.Type, err)
			}
		}
		p, err := recordToProduct(rec)
		if err != nil {
			return model.Catalog{}, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return model.Catalog{}, fmt.Errorf("iterate credit products: %w", err)
	}

	catalog, err := model.NewCatalog(products)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("build catalog from postgres: %w", err)
	}
	return catalog, nil
}
