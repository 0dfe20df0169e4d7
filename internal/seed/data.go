package seed

import (
	"pharmanature-storefront/internal/models"
)

var defaultCategories = []models.Category{
	{
		Name:          "Performance",
		SubCategories: []string{"Pré-Workout", "Créatine", "BCAA & Acides Aminés", "Boosters d'Énergie"},
	},
	{
		Name:          "Musculation",
		SubCategories: []string{"Whey Protéine", "Mass Gainer", "Caséine", "Protéines Végétales"},
	},
	{
		Name:          "Vitamines & Minéraux",
		SubCategories: []string{"Multivitamines", "Vitamine D", "Magnésium", "Zinc"},
	},
	{
		Name:          "Bien-être",
		SubCategories: []string{"Oméga-3", "Collagène", "Probiotiques", "Sommeil & Détente"},
	},
}

// Seed catalog. Prices are TND with millime precision; ids are fixed so the
// default offers configuration can reference them.
var defaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "Whey Protéine Gold 2kg",
		Brand:       "Optimum Nutrition",
		Description: "Protéine de lactosérum à absorption rapide, 24g de protéines par dose.",
		Category:    "Musculation",
		Price:       289.500,
		OldPrice:    329.000,
		Discount:    12,
		Quantity:    35,
		ImageURL:    "/images/products/whey-gold.jpg",
		Specifications: []models.Specification{
			{Name: "Poids", Value: "2 kg"},
			{Name: "Protéines par dose", Value: "24 g"},
			{Name: "Arôme", Value: "Chocolat"},
		},
	},
	{
		ID:          2,
		Name:        "Créatine Monohydrate 300g",
		Brand:       "PharmaNature",
		Description: "Créatine micronisée pure pour la force et la récupération.",
		Category:    "Performance",
		Price:       89.000,
		Quantity:    60,
		ImageURL:    "/images/products/creatine.jpg",
		Specifications: []models.Specification{
			{Name: "Poids", Value: "300 g"},
			{Name: "Dose journalière", Value: "5 g"},
		},
	},
	{
		ID:          3,
		Name:        "Pré-Workout Explosive 250g",
		Brand:       "BioTech USA",
		Description: "Formule pré-entraînement avec caféine, bêta-alanine et citrulline.",
		Category:    "Performance",
		Price:       119.000,
		OldPrice:    135.000,
		Discount:    12,
		Quantity:    25,
		ImageURL:    "/images/products/preworkout.jpg",
		Specifications: []models.Specification{
			{Name: "Poids", Value: "250 g"},
			{Name: "Caféine par dose", Value: "200 mg"},
			{Name: "Arôme", Value: "Fruits Rouges"},
		},
	},
	{
		ID:          4,
		Name:        "Oméga-3 Forte 90 Gélules",
		Brand:       "PharmaNature",
		Description: "Huile de poisson concentrée, 1000mg EPA/DHA par gélule.",
		Category:    "Bien-être",
		Price:       45.500,
		Quantity:    80,
		ImageURL:    "/images/products/omega3.jpg",
		Specifications: []models.Specification{
			{Name: "Contenance", Value: "90 gélules"},
			{Name: "EPA/DHA", Value: "1000 mg"},
		},
	},
	{
		ID:          5,
		Name:        "Multivitamines Complet 60 Comprimés",
		Brand:       "Solgar",
		Description: "23 vitamines et minéraux essentiels pour le quotidien.",
		Category:    "Vitamines & Minéraux",
		Price:       62.000,
		Quantity:    45,
		ImageURL:    "/images/products/multivit.jpg",
		Specifications: []models.Specification{
			{Name: "Contenance", Value: "60 comprimés"},
			{Name: "Durée", Value: "2 mois"},
		},
	},
	{
		ID:          6,
		Name:        "Mass Gainer Serious 2.7kg",
		Brand:       "Optimum Nutrition",
		Description: "Gainer riche en calories pour la prise de masse, 50g de protéines.",
		Category:    "Musculation",
		Price:       245.000,
		OldPrice:    275.000,
		Discount:    11,
		Quantity:    18,
		ImageURL:    "/images/products/mass-gainer.jpg",
		Specifications: []models.Specification{
			{Name: "Poids", Value: "2.7 kg"},
			{Name: "Calories par dose", Value: "1250 kcal"},
			{Name: "Arôme", Value: "Vanille"},
		},
	},
	{
		ID:          7,
		Name:        "Magnésium Marin B6 120 Gélules",
		Brand:       "PharmaNature",
		Description: "Magnésium d'origine marine associé à la vitamine B6.",
		Category:    "Vitamines & Minéraux",
		Price:       38.900,
		Quantity:    120,
		ImageURL:    "/images/products/magnesium.jpg",
		Specifications: []models.Specification{
			{Name: "Contenance", Value: "120 gélules"},
			{Name: "Magnésium par dose", Value: "300 mg"},
		},
	},
	{
		ID:          8,
		Name:        "BCAA 8:1:1 Zero 250g",
		Brand:       "BioTech USA",
		Description: "Acides aminés ramifiés sans sucre pour la récupération musculaire.",
		Category:    "Performance",
		Price:       95.500,
		Quantity:    40,
		ImageURL:    "/images/products/bcaa.jpg",
		Specifications: []models.Specification{
			{Name: "Poids", Value: "250 g"},
			{Name: "Ratio", Value: "8:1:1"},
			{Name: "Arôme", Value: "Citron"},
		},
	},
	{
		ID:          9,
		Name:        "Collagène Marin + Vitamine C 300g",
		Brand:       "PharmaNature",
		Description: "Collagène hydrolysé de poisson pour la peau et les articulations.",
		Category:    "Bien-être",
		Price:       78.000,
		OldPrice:    92.000,
		Discount:    15,
		Quantity:    30,
		ImageURL:    "/images/products/collagene.jpg",
		Specifications: []models.Specification{
			{Name: "Poids", Value: "300 g"},
			{Name: "Dose journalière", Value: "10 g"},
		},
	},
	{
		ID:          10,
		Name:        "Vitamine D3 2000UI 60 Gélules",
		Brand:       "Solgar",
		Description: "Vitamine D3 naturelle pour l'immunité et les os.",
		Category:    "Vitamines & Minéraux",
		Price:       29.900,
		Quantity:    95,
		ImageURL:    "/images/products/vitd3.jpg",
		Specifications: []models.Specification{
			{Name: "Contenance", Value: "60 gélules"},
			{Name: "Dosage", Value: "2000 UI"},
		},
	},
}
