package initializers

import (
	"log"

	"github.com/endabelyu/nakama-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedProducts = []models.Product{
	{
		Name:        "Ace Neclacke",
		Slug:        "ace-necklace",
		Price:       120000,
		ImageURL:    "https://onepiece.b-cdn.net/wp-content/uploads/2021/05/product-image-715658296.jpg",
		Description: "Favourite necklace of Portgas D. Ace",
		Category:    "necklace",
		Stock:       5,
		SKU:         "NCK-ACE-",
	},
	{
		Name:        "Luffy Hat",
		Slug:        "luffy-hat",
		Price:       250000,
		ImageURL:    "https://onepiece.b-cdn.net/wp-content/uploads/2023/05/Boy-Girl-One-Piece-Cap-Straw-Hat-Neck-String-Luffy-Flat-Hats-Cosplay-Japanese-Cartoon-Props-1.jpg",
		Description: "Favourite hat of Monkey D. Luffy",
		Category:    "hat",
		Stock:       2,
		SKU:         "HAT-LUFFY",
	},
	{
		Name:        "Cosplay costume Luffy Gear 5 Nika",
		Slug:        "cosplay-costume-luffy-gear-5-nika",
		Price:       800000,
		ImageURL:    "https://onepiece.store/wp-content/uploads/2023/09/Anime-Straw-Hat-Boy-Luffy-Cosplay-Costume-Gear-5-Nika-Luffy-Cosplay-Clothes-Kimono-Set-Christmas.jpg_640x640.jpg",
		Description: "Cosplay costume of Monkey D. Luffy when gear 5 (NIKA God)",
		Category:    "cloth",
		Stock:       4,
		SKU:         "CPL-LUFFY",
	},
	{
		Name:        "Action Figure Luffy",
		Slug:        "action-figure-luffy",
		Price:       360000,
		ImageURL:    "https://onepiece.b-cdn.net/wp-content/uploads/2022/01/17CM-Anime-One-Piece-Action-Figure-PVC-Luffy-New-Action-Collectible-Model-Decorations-Doll-Children-Toys.jpg",
		Description: "Action Figure of Monkey D. Luffy",
		Category:    "action-figure",
		Stock:       7,
		SKU:         "AF-LUFFY",
	},
	{
		Name:        "Pencil Holder Luffy",
		Slug:        "pencil-holder-luffy",
		Price:       200000,
		ImageURL:    "https://onepiece.store/wp-content/uploads/2024/02/Anime-One-Piece-Luffy-Resin-Office-Pen-Holders-Collectible-Monkey-D-Luffy-10cm-Desk-Pencil-Pot.jpg_640x640-1.webp",
		Description: "Quality: Resin Height: 9.5cm-10cm",
		Category:    "hat",
		Stock:       5,
		SKU:         "HLD-LUFFY",
	},
	{
		Name:        "Roronoa Zoro Sandai Kitetsu 1045 Carbon Steel Sword",
		Slug:        "zoro-kitetsu-1045-carbon-steel-sword",
		Price:       120000,
		ImageURL:    "https://onepiece.b-cdn.net/wp-content/uploads/2021/09/one-piece-sword-7.jpg",
		Description: "actual samurai sword, 1045 carbon metal, handmade, full tang, sharpened, battle prepared, alloy fittings",
		Category:    "sword",
		Stock:       5,
		SKU:         "SWD-LUFFY",
	},
}

// SeedProducts upserts the catalog seed data, keyed by slug so reruns update
// rather than duplicate.
func SeedProducts(db *gorm.DB) error {
	for _, product := range seedProducts {
		result := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "price", "image_url", "description", "category", "stock", "sku",
			}),
		}).Create(&product)
		if result.Error != nil {
			return result.Error
		}
		log.Println("Seeded product:", product.Name)
	}
	return nil
}
