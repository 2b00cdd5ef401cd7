// Command seed loads the initial brand and shop catalog. Shops and brands are
// administratively managed, so this runs once against a fresh database and is
// idempotent on brand/shop names.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JMirval/watchmapper-sub001/internal/config"
	"github.com/JMirval/watchmapper-sub001/internal/data"
	"github.com/JMirval/watchmapper-sub001/internal/model"
	"github.com/JMirval/watchmapper-sub001/pkg/logger"
)

var brands = []model.Brand{
	{Name: "Rolex", Category: "luxury"},
	{Name: "Omega", Category: "luxury"},
	{Name: "Patek Philippe", Category: "haute-horlogerie"},
	{Name: "Audemars Piguet", Category: "haute-horlogerie"},
	{Name: "Seiko", Category: "mainstream"},
	{Name: "Citizen", Category: "mainstream"},
	{Name: "Tissot", Category: "mainstream"},
	{Name: "Longines", Category: "classic"},
	{Name: "TAG Heuer", Category: "sport"},
	{Name: "Breitling", Category: "sport"},
}

type seedShop struct {
	shop   model.Shop
	brands []string
}

var shops = []seedShop{
	{
		shop:   model.Shop{Name: "Horlogerie du Vieux Lyon", Type: model.ShopTypeRepair, Lat: 45.7625, Lng: 4.8275, Address: "12 Rue Saint-Jean, 69005 Lyon"},
		brands: []string{"Rolex", "Omega", "Longines"},
	},
	{
		shop:   model.Shop{Name: "Montres & Merveilles", Type: model.ShopTypeReseller, Lat: 45.7640, Lng: 4.8357, Address: "8 Place Bellecour, 69002 Lyon"},
		brands: []string{"Seiko", "Citizen", "Tissot"},
	},
	{
		shop:   model.Shop{Name: "Atelier Tempus", Type: model.ShopTypeRepair, Lat: 48.8566, Lng: 2.3522, Address: "3 Rue de Rivoli, 75004 Paris"},
		brands: []string{"Patek Philippe", "Audemars Piguet"},
	},
	{
		shop:   model.Shop{Name: "Chrono Passion", Type: model.ShopTypeReseller, Lat: 48.8698, Lng: 2.3075, Address: "21 Avenue Montaigne, 75008 Paris"},
		brands: []string{"TAG Heuer", "Breitling", "Omega"},
	},
}

func main() {
	cfgPath := os.Getenv("WATCHMAPPER_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/app.yaml"
	}
	cfg := config.MustLoad(cfgPath)
	log, err := logger.New(cfg.Logging.Level, cfg.Observability.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := data.NewMySQL(cfg.MySQL, log)
	if err != nil {
		log.Fatal("mysql init failed", zap.Error(err))
	}

	ctx := context.Background()
	if err := seed(ctx, db); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("catalog seeded",
		zap.Int("brands", len(brands)),
		zap.Int("shops", len(shops)),
	)
}

func seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range brands {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&brands[i]).Error; err != nil {
				return err
			}
		}
		byName := map[string]model.Brand{}
		var all []model.Brand
		if err := tx.Find(&all).Error; err != nil {
			return err
		}
		for _, b := range all {
			byName[b.Name] = b
		}

		for i := range shops {
			entry := &shops[i]
			var existing int64
			if err := tx.Model(&model.Shop{}).Where("name = ?", entry.shop.Name).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				continue
			}
			if err := tx.Create(&entry.shop).Error; err != nil {
				return err
			}
			linked := make([]model.Brand, 0, len(entry.brands))
			for _, name := range entry.brands {
				if brand, ok := byName[name]; ok {
					linked = append(linked, brand)
				}
			}
			if err := tx.Model(&entry.shop).Association("Brands").Replace(linked); err != nil {
				return err
			}
		}
		return nil
	})
}
