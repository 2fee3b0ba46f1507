package main

import (
	"crave/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AdminUserModel{},
		model.SessionModel{},
		model.UserProfileModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.CartItemModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.DeviceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
