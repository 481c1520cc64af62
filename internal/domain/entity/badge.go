package entity

// Badge insignia derivada que destaca un producto en los listados.
type Badge uint8

const (
	BadgePopular    Badge = 1 << iota // "Most Popular"
	BadgeValue                        // "Best Value"
	BadgeSmallTeams                   // "Best for Small Teams"
)

// AllBadges en orden de presentación.
var AllBadges = []Badge{BadgePopular, BadgeValue, BadgeSmallTeams}

// BadgeSet conjunto de insignias de un producto.
type BadgeSet uint8

// Has indica si el conjunto contiene la insignia.
func (s BadgeSet) Has(b Badge) bool { return s&BadgeSet(b) != 0 }

// With devuelve el conjunto con la insignia agregada.
func (s BadgeSet) With(b Badge) BadgeSet { return s | BadgeSet(b) }

// Codes códigos estables de las insignias presentes ("popular", "value", "small_teams").
func (s BadgeSet) Codes() []string {
	out := make([]string, 0, len(AllBadges))
	for _, b := range AllBadges {
		if s.Has(b) {
			out = append(out, b.Code())
		}
	}
	return out
}

// Code código estable para API y plantillas.
func (b Badge) Code() string {
	switch b {
	case BadgePopular:
		return "popular"
	case BadgeValue:
		return "value"
	case BadgeSmallTeams:
		return "small_teams"
	default:
		return ""
	}
}

// Label texto visible de la insignia.
func (b Badge) Label() string {
	switch b {
	case BadgePopular:
		return "Most Popular"
	case BadgeValue:
		return "Best Value"
	case BadgeSmallTeams:
		return "Best for Small Teams"
	default:
		return ""
	}
}
