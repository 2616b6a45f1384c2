package gateway

// Remote tree layout. Paths are slash-separated from the database root.
const (
	ProductsPath        = "products"
	UsersPath           = "users"
	OrdersPath          = "orders"
	PaymentSettingsPath = "settings/payment"
	HeroSlidesPath      = "homeContent/heroSlides"
	HighlightsPath      = "homeContent/highlights"
	BrandStoryPath      = "homeContent/brandStory"
)

// Child joins a collection path with a child id.
func Child(path, id string) string {
	return path + "/" + id
}
