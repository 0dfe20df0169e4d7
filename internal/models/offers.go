package models

// OffersConfigID is the fixed _id of the singleton offers configuration
// document. Exactly one instance exists per deployment.
const OffersConfigID = "offers_config"

// HeaderSection configures the banner above the offers page.
type HeaderSection struct {
	Title           string `json:"title" bson:"title"`
	Subtitle        string `json:"subtitle" bson:"subtitle"`
	TitleColor      string `json:"title_color" bson:"title_color" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"background_color" bson:"background_color" validate:"omitempty,hexcolor"`
}

// ProductRowSection configures a single-row product strip filtered by
// category (used for both the performance and muscle-builders sections).
type ProductRowSection struct {
	Title      string `json:"title" bson:"title"`
	TitleColor string `json:"title_color" bson:"title_color" validate:"omitempty,hexcolor"`
	Category   string `json:"category" bson:"category"`
	Limit      int    `json:"limit" bson:"limit" validate:"gte=1,lte=20"`
	Enabled    bool   `json:"enabled" bson:"enabled"`
}

// DealOfTheDaySection highlights one product. ProductID is a soft reference;
// a stale id is resolved (and skipped) at lookup time, never rejected here.
type DealOfTheDaySection struct {
	Title      string `json:"title" bson:"title"`
	TitleColor string `json:"title_color" bson:"title_color" validate:"omitempty,hexcolor"`
	BadgeText  string `json:"badge_text" bson:"badge_text"`
	ProductID  int    `json:"product_id" bson:"product_id"`
	Enabled    bool   `json:"enabled" bson:"enabled"`
}

// AllOffersGridSection configures the main grid. With UseManualSelection set,
// ManualProductIDs decides both membership and order; otherwise the first
// Limit products of the catalog's default ordering are shown.
type AllOffersGridSection struct {
	Title              string `json:"title" bson:"title"`
	TitleColor         string `json:"title_color" bson:"title_color" validate:"omitempty,hexcolor"`
	UseManualSelection bool   `json:"use_manual_selection" bson:"use_manual_selection"`
	ManualProductIDs   []int  `json:"manual_product_ids" bson:"manual_product_ids"`
	Limit              int    `json:"limit" bson:"limit" validate:"gte=1,lte=50"`
	Enabled            bool   `json:"enabled" bson:"enabled"`
}

// OffersConfig is the fully resolved configuration for the homepage
// marketing sections. Every field is always populated after resolution.
type OffersConfig struct {
	ID             string               `json:"-" bson:"_id"`
	Header         HeaderSection        `json:"header" bson:"header"`
	Performance    ProductRowSection    `json:"performance_section" bson:"performance_section"`
	MuscleBuilders ProductRowSection    `json:"muscle_builders" bson:"muscle_builders"`
	DealOfTheDay   DealOfTheDaySection  `json:"deal_of_the_day" bson:"deal_of_the_day"`
	AllOffersGrid  AllOffersGridSection `json:"all_offers_grid" bson:"all_offers_grid"`
}

// DefaultOffersConfig returns the documented defaults for every section.
func DefaultOffersConfig() OffersConfig {
	return OffersConfig{
		ID: OffersConfigID,
		Header: HeaderSection{
			Title:           "Offres Spéciales",
			Subtitle:        "Profitez de nos promotions sur une sélection de produits",
			TitleColor:      "#2e7d32",
			BackgroundColor: "#f1f8e9",
		},
		Performance: ProductRowSection{
			Title:      "Performance & Énergie",
			TitleColor: "#1b5e20",
			Category:   "Performance",
			Limit:      4,
			Enabled:    true,
		},
		MuscleBuilders: ProductRowSection{
			Title:      "Prise de Masse",
			TitleColor: "#1b5e20",
			Category:   "Musculation",
			Limit:      4,
			Enabled:    true,
		},
		DealOfTheDay: DealOfTheDaySection{
			Title:      "Offre du Jour",
			TitleColor: "#c62828",
			BadgeText:  "PROMO",
			ProductID:  1,
			Enabled:    true,
		},
		AllOffersGrid: AllOffersGridSection{
			Title:              "Toutes les Offres",
			TitleColor:         "#2e7d32",
			UseManualSelection: false,
			ManualProductIDs:   []int{},
			Limit:              8,
			Enabled:            true,
		},
	}
}

// StoredOffersConfig is the shape a persisted configuration document decodes
// into. Documents written before a field existed simply leave the pointer
// nil, which resolution replaces with the default. The merge is per field,
// never per section.
type StoredOffersConfig struct {
	ID             string                      `bson:"_id"`
	Header         *StoredHeaderSection        `bson:"header,omitempty"`
	Performance    *StoredProductRowSection    `bson:"performance_section,omitempty"`
	MuscleBuilders *StoredProductRowSection    `bson:"muscle_builders,omitempty"`
	DealOfTheDay   *StoredDealOfTheDaySection  `bson:"deal_of_the_day,omitempty"`
	AllOffersGrid  *StoredAllOffersGridSection `bson:"all_offers_grid,omitempty"`
}

type StoredHeaderSection struct {
	Title           *string `bson:"title,omitempty"`
	Subtitle        *string `bson:"subtitle,omitempty"`
	TitleColor      *string `bson:"title_color,omitempty"`
	BackgroundColor *string `bson:"background_color,omitempty"`
}

type StoredProductRowSection struct {
	Title      *string `bson:"title,omitempty"`
	TitleColor *string `bson:"title_color,omitempty"`
	Category   *string `bson:"category,omitempty"`
	Limit      *int    `bson:"limit,omitempty"`
	Enabled    *bool   `bson:"enabled,omitempty"`
}

type StoredDealOfTheDaySection struct {
	Title      *string `bson:"title,omitempty"`
	TitleColor *string `bson:"title_color,omitempty"`
	BadgeText  *string `bson:"badge_text,omitempty"`
	ProductID  *int    `bson:"product_id,omitempty"`
	Enabled    *bool   `bson:"enabled,omitempty"`
}

type StoredAllOffersGridSection struct {
	Title              *string `bson:"title,omitempty"`
	TitleColor         *string `bson:"title_color,omitempty"`
	UseManualSelection *bool   `bson:"use_manual_selection,omitempty"`
	ManualProductIDs   []int   `bson:"manual_product_ids,omitempty"`
	Limit              *int    `bson:"limit,omitempty"`
	Enabled            *bool   `bson:"enabled,omitempty"`
}

// ResolveOffersConfig merges a possibly partial stored document against the
// declared defaults. A nil document resolves to the defaults wholesale; a
// partially populated section keeps its supplied fields and fills only the
// missing ones. Reads never fail on absent fields.
func ResolveOffersConfig(stored *StoredOffersConfig) OffersConfig {
	cfg := DefaultOffersConfig()
	if stored == nil {
		return cfg
	}

	if h := stored.Header; h != nil {
		setString(&cfg.Header.Title, h.Title)
		setString(&cfg.Header.Subtitle, h.Subtitle)
		setString(&cfg.Header.TitleColor, h.TitleColor)
		setString(&cfg.Header.BackgroundColor, h.BackgroundColor)
	}
	resolveRow(&cfg.Performance, stored.Performance)
	resolveRow(&cfg.MuscleBuilders, stored.MuscleBuilders)
	if d := stored.DealOfTheDay; d != nil {
		setString(&cfg.DealOfTheDay.Title, d.Title)
		setString(&cfg.DealOfTheDay.TitleColor, d.TitleColor)
		setString(&cfg.DealOfTheDay.BadgeText, d.BadgeText)
		setInt(&cfg.DealOfTheDay.ProductID, d.ProductID)
		setBool(&cfg.DealOfTheDay.Enabled, d.Enabled)
	}
	if g := stored.AllOffersGrid; g != nil {
		setString(&cfg.AllOffersGrid.Title, g.Title)
		setString(&cfg.AllOffersGrid.TitleColor, g.TitleColor)
		setBool(&cfg.AllOffersGrid.UseManualSelection, g.UseManualSelection)
		if g.ManualProductIDs != nil {
			cfg.AllOffersGrid.ManualProductIDs = g.ManualProductIDs
		}
		setInt(&cfg.AllOffersGrid.Limit, g.Limit)
		setBool(&cfg.AllOffersGrid.Enabled, g.Enabled)
	}
	return cfg
}

func resolveRow(dst *ProductRowSection, src *StoredProductRowSection) {
	if src == nil {
		return
	}
	setString(&dst.Title, src.Title)
	setString(&dst.TitleColor, src.TitleColor)
	setString(&dst.Category, src.Category)
	setInt(&dst.Limit, src.Limit)
	setBool(&dst.Enabled, src.Enabled)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
