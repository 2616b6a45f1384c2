package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/infra/memory"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func boolPtr(b bool) *bool {
	return &b
}

func seedProfile(gw *memory.Gateway, uid string, role entity.Role) *entity.Profile {
	now := time.Now().UTC()
	profile := &entity.Profile{
		UID:         uid,
		Email:       uid + "@example.com",
		DisplayName: "User " + uid,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := gw.Write(context.Background(), gateway.Child(gateway.UsersPath, uid), profile); err != nil {
		panic(err)
	}

	return profile
}

func seedProduct(gw *memory.Gateway, id, name, category string, price int64) entity.Product {
	now := time.Now().UTC()
	product := entity.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Stock:     10,
		Category:  category,
		Images:    []string{"/images/products/" + id + ".jpg"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := gw.Write(context.Background(), gateway.Child(gateway.ProductsPath, id), product); err != nil {
		panic(err)
	}

	return product
}
