package services

import (
	"fmt"
	"strings"

	"github.com/polmorales30/nexo.clinic-sub000/models"
)

// FoodCatalog is the static food lookup table. Values are per 100 g.
// The apps only ever read it; there is no external food API behind it.
type FoodCatalog struct {
	items []models.FoodItem
	byID  map[string]models.FoodItem
}

var catalogItems = []models.FoodItem{
	{ID: "pechuga-pollo", Name: "Pechuga de pollo", Kcal: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{ID: "arroz-blanco", Name: "Arroz blanco cocido", Kcal: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
	{ID: "arroz-integral", Name: "Arroz integral cocido", Kcal: 111, Protein: 2.6, Carbs: 23, Fat: 0.9},
	{ID: "huevo", Name: "Huevo entero", Kcal: 155, Protein: 13, Carbs: 1.1, Fat: 11},
	{ID: "avena", Name: "Copos de avena", Kcal: 389, Protein: 16.9, Carbs: 66, Fat: 6.9},
	{ID: "leche-desnatada", Name: "Leche desnatada", Kcal: 35, Protein: 3.4, Carbs: 5, Fat: 0.1},
	{ID: "yogur-natural", Name: "Yogur natural", Kcal: 59, Protein: 10, Carbs: 3.6, Fat: 0.4},
	{ID: "platano", Name: "Plátano", Kcal: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
	{ID: "manzana", Name: "Manzana", Kcal: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
	{ID: "pan-integral", Name: "Pan integral", Kcal: 247, Protein: 13, Carbs: 41, Fat: 3.4},
	{ID: "salmon", Name: "Salmón", Kcal: 208, Protein: 20, Carbs: 0, Fat: 13},
	{ID: "merluza", Name: "Merluza", Kcal: 86, Protein: 17.8, Carbs: 0, Fat: 1.3},
	{ID: "atun-lata", Name: "Atún en lata al natural", Kcal: 116, Protein: 26, Carbs: 0, Fat: 1},
	{ID: "ternera-magra", Name: "Ternera magra", Kcal: 158, Protein: 26, Carbs: 0, Fat: 5.4},
	{ID: "lentejas", Name: "Lentejas cocidas", Kcal: 116, Protein: 9, Carbs: 20, Fat: 0.4},
	{ID: "garbanzos", Name: "Garbanzos cocidos", Kcal: 164, Protein: 8.9, Carbs: 27, Fat: 2.6},
	{ID: "patata", Name: "Patata cocida", Kcal: 87, Protein: 1.9, Carbs: 20, Fat: 0.1},
	{ID: "brocoli", Name: "Brócoli", Kcal: 34, Protein: 2.8, Carbs: 7, Fat: 0.4},
	{ID: "ensalada-mixta", Name: "Ensalada mixta", Kcal: 20, Protein: 1.2, Carbs: 3.5, Fat: 0.2},
	{ID: "tomate", Name: "Tomate", Kcal: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2},
	{ID: "aceite-oliva", Name: "Aceite de oliva", Kcal: 884, Protein: 0, Carbs: 0, Fat: 100},
	{ID: "aguacate", Name: "Aguacate", Kcal: 160, Protein: 2, Carbs: 8.5, Fat: 14.7},
	{ID: "nueces", Name: "Nueces", Kcal: 654, Protein: 15, Carbs: 14, Fat: 65},
	{ID: "queso-fresco", Name: "Queso fresco batido", Kcal: 72, Protein: 12, Carbs: 4, Fat: 0.4},
	{ID: "pasta", Name: "Pasta cocida", Kcal: 131, Protein: 5, Carbs: 25, Fat: 1.1},
	{ID: "pavo-fiambre", Name: "Fiambre de pavo", Kcal: 104, Protein: 17, Carbs: 2, Fat: 3},
}

func NewFoodCatalog() *FoodCatalog {
	byID := make(map[string]models.FoodItem, len(catalogItems))
	for _, it := range catalogItems {
		byID[it.ID] = it
	}
	return &FoodCatalog{items: catalogItems, byID: byID}
}

// Search matches the query as a case-insensitive substring of the name or
// id. An empty query returns the whole catalog.
func (c *FoodCatalog) Search(query string) []models.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]models.FoodItem, len(c.items))
		copy(out, c.items)
		return out
	}

	var out []models.FoodItem
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(it.ID, q) {
			out = append(out, it)
		}
	}
	return out
}

func (c *FoodCatalog) Get(id string) (models.FoodItem, error) {
	it, ok := c.byID[id]
	if !ok {
		return models.FoodItem{}, fmt.Errorf("food %q not found", id)
	}
	return it, nil
}
