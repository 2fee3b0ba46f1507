package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/repository"
	mockRepo "crave/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingHandler keeps every record so tests can inspect attribute kinds.
type recordingHandler struct {
	records *[]slog.Record
}

func newRecordingLogger() (*slog.Logger, *[]slog.Record) {
	records := &[]slog.Record{}
	return slog.New(recordingHandler{records: records}), records
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r.Clone())
	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h recordingHandler) WithGroup(string) slog.Handler { return h }

// runTx makes the transaction manager call fn with factory and return whatever fn returns.
func runTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newProduct(name, price string, stock int) *entity.Product {
	return &entity.Product{
		ID:            uuid.New(),
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      true,
	}
}

func completeAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName: "Ada Obi",
		Phone:    "+2348000000000",
		Street:   "1 Marina",
		City:     "Lagos",
		State:    "Lagos",
		Country:  "NG",
	}
}
