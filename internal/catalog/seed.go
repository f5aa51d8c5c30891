// internal/catalog/seed.go
package catalog

import "github.com/machineryhub/b2b-backend/internal/models"

// seedProducts is the fixed sample catalog inserted into an empty store.
// Images are assigned at seed time from the per-category pools.
var seedProducts = []models.Product{
	{
		ProductName: "CNC Vertical Machining Center 3 Axis",
		Supplier:    "Shanghai Precision Machinery Ltd.",
		PriceUSD:    "$2,500.00",
		Category:    "cnc",
		Location:    "china",
		Description: "High precision 3-axis CNC vertical machining center with automatic tool changer",
		MinOrder:    1,
		Rating:      4.5,
		Specs:       "Work area: 1000x500mm, Spindle speed: 6000 RPM",
	},
	{
		ProductName: "Industrial CNC Milling Machine 5-Axis",
		Supplier:    "Bangalore Tech Industries",
		PriceUSD:    "$4,200.00",
		Category:    "cnc",
		Location:    "india",
		Description: "Heavy-duty 5-axis CNC milling machine for industrial applications",
		MinOrder:    1,
		Rating:      4.3,
		Specs:       "Work area: 1500x800mm, Spindle speed: 8000 RPM",
	},
	{
		ProductName: "CNC Router Machine 3D Carving",
		Supplier:    "Zhejiang Industrial Tech",
		PriceUSD:    "$1,800.00",
		Category:    "cnc",
		Location:    "china",
		Description: "Wood and plastic carving CNC router for detailed work",
		MinOrder:    1,
		Rating:      4.6,
		Specs:       "Work area: 1300x2500mm, Spindle: 3kW",
	},
	{
		ProductName: "CNC 4-Axis Lathe Turret",
		Supplier:    "Bangalore Tech Industries",
		PriceUSD:    "$4,800.00",
		Category:    "cnc",
		Location:    "india",
		Description: "4-axis CNC lathe with automatic turret indexing",
		MinOrder:    1,
		Rating:      4.7,
		Specs:       "Chuck size: 200mm, Spindle speed: 3000 RPM",
	},
	{
		ProductName: "Desktop Mini CNC Machine",
		Supplier:    "Guangzhou Electronics",
		PriceUSD:    "$600.00",
		Category:    "cnc",
		Location:    "china",
		Description: "Compact desktop CNC for hobby and small business",
		MinOrder:    1,
		Rating:      4.2,
		Specs:       "Work area: 300x200mm, USB connection",
	},
	{
		ProductName: "Heavy Duty Metal Lathe",
		Supplier:    "German Precision Engineering",
		PriceUSD:    "$5,800.00",
		Category:    "lathe",
		Location:    "germany",
		Description: "Precision metal lathe for turning operations",
		MinOrder:    1,
		Rating:      4.8,
		Specs:       "Swing: 500mm, Distance between centers: 1000mm",
	},
	{
		ProductName: "Automatic Bar Feeding Lathe",
		Supplier:    "Taiwan Machine Tools",
		PriceUSD:    "$3,500.00",
		Category:    "lathe",
		Location:    "taiwan",
		Description: "Automatic lathe with bar feeder for mass production",
		MinOrder:    1,
		Rating:      4.5,
		Specs:       "Chuck size: 150mm, Max spindle speed: 3000 RPM",
	},
	{
		ProductName: "Precision Radial Drill Machine",
		Supplier:    "USA Manufacturing Corp",
		PriceUSD:    "$4,200.00",
		Category:    "drill",
		Location:    "usa",
		Description: "Industrial radial drill for large-scale operations",
		MinOrder:    1,
		Rating:      4.6,
		Specs:       "Arm reach: 1500mm, Max spindle speed: 2000 RPM",
	},
	{
		ProductName: "Vertical Drilling Machine",
		Supplier:    "Shanghai Precision Machinery Ltd.",
		PriceUSD:    "$2,900.00",
		Category:    "drill",
		Location:    "china",
		Description: "Heavy-duty vertical drilling for steel and metal",
		MinOrder:    1,
		Rating:      4.3,
		Specs:       "Table size: 1000x500mm, Max drilling diameter: 50mm",
	},
	{
		ProductName: "Hydraulic Press 100 Ton",
		Supplier:    "Shanghai Precision Machinery Ltd.",
		PriceUSD:    "$6,500.00",
		Category:    "press",
		Location:    "china",
		Description: "100-ton hydraulic press with precision pressure control",
		MinOrder:    1,
		Rating:      4.4,
		Specs:       "Max pressure: 315 MPa, Platen area: 400x400mm",
	},
}
