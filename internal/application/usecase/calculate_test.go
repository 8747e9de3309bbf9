package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediflow/calc-service/internal/application/dto"
	"github.com/crediflow/calc-service/internal/application/usecase"
	"github.com/crediflow/calc-service/internal/domain/event"
	"github.com/crediflow/calc-service/internal/domain/model"
	"github.com/crediflow/calc-service/internal/domain/service"
	"github.com/crediflow/calc-service/internal/domain/valueobject"
)

type mockCache struct {
	getFn func(ctx context.Context, key string) (string, bool)
	setFn func(ctx context.Context, key, value string, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return "", false
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

type mockPublisher struct {
	publishFn func(ctx context.Context, events ...event.DomainEvent) error
}

func (m *mockPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if m.publishFn != nil {
		return m.publishFn(ctx, events...)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func testCatalog(t *testing.T) model.Catalog {
	t.Helper()

	standard, err := model.NewRangeProduct("standard", model.RangePricing{
		MinLoan:                d("100"),
		MaxLoan:                d("10000"),
		PaymentPeriodDays:      30,
		FacilitationFeePercent: d("5"),
		DailyFeePercent:        d("1"),
		PenaltyPercent:         d("2"),
	})
	require.NoError(t, err)

	catalog, err := model.NewCatalog([]model.CreditProduct{standard})
	require.NoError(t, err)
	return catalog
}

func validRequest() dto.CalculateRequest {
	return dto.CalculateRequest{
		CreditType: "standard",
		LoanAmount: d("1000"),
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-05",
	}
}

func TestCalculateUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("success caches the result and publishes an event", func(t *testing.T) {
		var cachedValue string
		var published []event.DomainEvent

		cache := &mockCache{
			setFn: func(_ context.Context, _, value string, ttl time.Duration) error {
				cachedValue = value
				assert.Equal(t, 10*time.Minute, ttl)
				return nil
			},
		}
		publisher := &mockPublisher{
			publishFn: func(_ context.Context, events ...event.DomainEvent) error {
				published = append(published, events...)
				return nil
			},
		}

		uc := usecase.NewCalculateUseCase(service.NewEngine(), testCatalog(t), cache, publisher, testLogger(), 10*time.Minute)

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.Equal(t, "standard", resp.CreditType)
		assert.Equal(t, 5, resp.LoanPeriodDays)
		assert.True(t, resp.TotalRepayment.Equal(d("1100")))
		require.Len(t, resp.Schedule, 5)
		assert.Equal(t, "2024-03-01", resp.Schedule[0].Date)
		assert.Equal(t, "2024-03-05", resp.Schedule[4].Date)

		require.NotEmpty(t, cachedValue)
		var cached dto.CalculationResponse
		require.NoError(t, json.Unmarshal([]byte(cachedValue), &cached))
		assert.True(t, cached.TotalRepayment.Equal(resp.TotalRepayment))

		require.Len(t, published, 1)
		assert.Equal(t, "calc.calculation.performed", published[0].EventType())
	})

	t.Run("cache hit skips the engine", func(t *testing.T) {
		hit := dto.CalculationResponse{
			CreditType:     "standard",
			TotalRepayment: d("1100"),
		}
		raw, err := json.Marshal(hit)
		require.NoError(t, err)

		published := 0
		cache := &mockCache{
			getFn: func(_ context.Context, key string) (string, bool) {
				assert.Equal(t, "calc:standard:1000:2024-03-01:2024-03-05", key)
				return string(raw), true
			},
		}
		publisher := &mockPublisher{
			publishFn: func(_ context.Context, _ ...event.DomainEvent) error {
				published++
				return nil
			},
		}

		uc := usecase.NewCalculateUseCase(service.NewEngine(), testCatalog(t), cache, publisher, testLogger(), time.Minute)

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
		assert.True(t, resp.TotalRepayment.Equal(d("1100")))
		assert.Zero(t, published, "a cached response must not re-publish")
	})

	t.Run("unreadable cache entry falls through to the engine", func(t *testing.T) {
		cache := &mockCache{
			getFn: func(_ context.Context, _ string) (string, bool) {
				return "{not json", true
			},
		}

		uc := usecase.NewCalculateUseCase(service.NewEngine(), testCatalog(t), cache, &mockPublisher{}, testLogger(), time.Minute)

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
		assert.True(t, resp.TotalRepayment.Equal(d("1100")))
	})

	t.Run("cache and publish failures do not fail the request", func(t *testing.T) {
		cache := &mockCache{
			setFn: func(_ context.Context, _, _ string, _ time.Duration) error {
				return errors.New("redis down")
			},
		}
		publisher := &mockPublisher{
			publishFn: func(_ context.Context, _ ...event.DomainEvent) error {
				return errors.New("kafka down")
			},
		}

		uc := usecase.NewCalculateUseCase(service.NewEngine(), testCatalog(t), cache, publisher, testLogger(), time.Minute)

		_, err := uc.Execute(ctx, validRequest())
		assert.NoError(t, err)
	})

	t.Run("invalid start date", func(t *testing.T) {
		uc := usecase.NewCalculateUseCase(service.NewEngine(), testCatalog(t), &mockCache{}, &mockPublisher{}, testLogger(), time.Minute)

		req := validRequest()
		req.StartDate = "01/03/2024"

		_, err := uc.Execute(ctx, req)
		calcErr, ok := valueobject.AsCalculationError(err)
		require.True(t, ok)
		assert.Equal(t, valueobject.ErrCodeInvalidDate, calcErr.Code)
	})

	t.Run("invalid end date", func(t *testing.T) {
		uc := usecase.NewCalculateUseCase(service.NewEngine(), testCatalog(t), &mockCache{}, &mockPublisher{}, testLogger(), time.Minute)

		req := validRequest()
		req.EndDate = "2024-13-40"

		_, err := uc.Execute(ctx, req)
		calcErr, ok := valueobject.AsCalculationError(err)
		require.True(t, ok)
		assert.Equal(t, valueobject.ErrCodeInvalidDate, calcErr.Code)
	})

	t.Run("engine errors pass through untouched", func(t *testing.T) {
		uc := usecase.NewCalculateUseCase(service.NewEngine(), testCatalog(t), &mockCache{}, &mockPublisher{}, testLogger(), time.Minute)

		req := validRequest()
		req.CreditType = "platinum"

		_, err := uc.Execute(ctx, req)
		calcErr, ok := valueobject.AsCalculationError(err)
		require.True(t, ok)
		assert.Equal(t, valueobject.ErrCodeUnsupportedCreditType, calcErr.Code)
	})
}
