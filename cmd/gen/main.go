package main

import (
	"raseed/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AdminModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.ProfileModel{},
		model.RechargeCodeModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
