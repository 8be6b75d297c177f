package store

// Keys of the three collections. Each value is a JSON array of records.
const (
	KeyProducts = "products"
	KeyGoals    = "goals"
	KeyLeads    = "leads"
)

// Collections lists every collection key in dependency order.
var Collections = []string{KeyProducts, KeyGoals, KeyLeads}
