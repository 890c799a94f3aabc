package seeders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shashiranjanraj/vanij/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("demo_catalogue", SeedDemoCatalogue)
}

var demoProducts = []struct {
	name        string
	description string
}{
	{"Wireless Earbuds Pro", "Noise-cancelling earbuds with wireless charging case"},
	{"Smart Watch Series 5", "Fitness tracking smartwatch with heart rate monitor"},
	{"4K Streaming Stick", "Plug-in media streamer with voice remote"},
	{"Laptop Stand Aluminum", "Adjustable ergonomic laptop riser"},
	{"USB-C Hub 7-in-1", "Multiport adapter with HDMI, SD and 100W passthrough"},
	{"Mechanical Keyboard TKL", "Tenkeyless keyboard with hot-swappable switches"},
	{"Ergonomic Office Chair", "Mesh back chair with lumbar support"},
	{"Standing Desk 55in", "Electric height adjustable desk"},
	{"LED Desk Lamp", "Dimmable lamp with USB charging port"},
	{"Cotton Bath Towel Set", "Six-piece quick dry towel set"},
	{"Stainless Steel Cookware", "Ten-piece tri-ply cookware set"},
	{"Robot Vacuum Cleaner", "Self-charging robot vacuum with app control"},
	{"Yoga Mat Non-Slip", "Extra thick exercise mat with carry strap"},
	{"Insulated Water Bottle", "Vacuum insulated 32oz bottle"},
	{"Running Shoes Trail", "Lightweight trail runners with rock plate"},
}

// SeedDemoCatalogue populates products, opens inventory tracking for each,
// and spreads 10 to 20 demo sales per product over the trailing 90 days so
// every revenue report has data to show. Running it twice is a no-op.
func SeedDemoCatalogue(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("  demo_catalogue: products already present, skipping")
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for _, dp := range demoProducts {
		product := models.Product{
			Name:        dp.name,
			Description: dp.description,
			Price:       float64(rng.Intn(99000)+1000) / 100, // 10.00 to 1000.00
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}

		inv := models.Inventory{
			ProductID:         product.ID,
			Quantity:          rng.Intn(101),
			LowStockThreshold: 10,
		}
		if err := db.Create(&inv).Error; err != nil {
			return err
		}

		for i := 0; i < rng.Intn(11)+10; i++ {
			qty := rng.Intn(5) + 1
			sale := models.Sale{
				ProductID:   product.ID,
				Quantity:    qty,
				TotalAmount: product.Price * float64(qty),
				SaleDate:    now.AddDate(0, 0, -rng.Intn(90)),
			}
			if err := db.Create(&sale).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
