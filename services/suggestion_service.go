package services

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/utils"
)

// SuggestionService fills a meal slot with one of a few canned food
// combinations, scaled so the meal's calories hit an even share of the
// daily goal. The template pick is uniform — it is a variety mechanism,
// not a nutritional optimizer.
type SuggestionService struct {
	catalog *FoodCatalog
	rnd     *rand.Rand
}

func NewSuggestionService(catalog *FoodCatalog) *SuggestionService {
	return &SuggestionService{
		catalog: catalog,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type mealClass int

const (
	classBreakfast mealClass = iota
	classLunch
	classDinner
	classOther
)

// classifySlot does a case-insensitive substring match on the slot name.
func classifySlot(slotName string) mealClass {
	s := strings.ToLower(slotName)
	switch {
	case strings.Contains(s, "desay") || strings.Contains(s, "breakfast"):
		return classBreakfast
	case strings.Contains(s, "comida") || strings.Contains(s, "almuerzo") || strings.Contains(s, "lunch"):
		return classLunch
	case strings.Contains(s, "cena") || strings.Contains(s, "dinner"):
		return classDinner
	default:
		return classOther
	}
}

// template is a hand-authored combination with baseline gram amounts.
type template struct {
	dish  string
	parts []templatePart
}

type templatePart struct {
	foodID string
	grams  float64
}

// Three options per class, drawn uniformly.
var templatesByClass = map[mealClass][3]template{
	classBreakfast: {
		{dish: "Avena con plátano", parts: []templatePart{
			{"avena", 60}, {"leche-desnatada", 250}, {"platano", 120},
		}},
		{dish: "Tostadas con huevo", parts: []templatePart{
			{"pan-integral", 80}, {"huevo", 110}, {"tomate", 80}, {"aceite-oliva", 10},
		}},
		{dish: "Yogur con fruta y nueces", parts: []templatePart{
			{"yogur-natural", 250}, {"manzana", 150}, {"nueces", 25},
		}},
	},
	classLunch: {
		{dish: "Pollo con arroz", parts: []templatePart{
			{"pechuga-pollo", 150}, {"arroz-blanco", 180}, {"brocoli", 150}, {"aceite-oliva", 10},
		}},
		{dish: "Lentejas estofadas", parts: []templatePart{
			{"lentejas", 280}, {"ensalada-mixta", 120}, {"pan-integral", 40}, {"aceite-oliva", 10},
		}},
		{dish: "Pasta con atún", parts: []templatePart{
			{"pasta", 220}, {"atun-lata", 100}, {"tomate", 120}, {"aceite-oliva", 10},
		}},
	},
	classDinner: {
		{dish: "Merluza con patata", parts: []templatePart{
			{"merluza", 180}, {"patata", 200}, {"ensalada-mixta", 100}, {"aceite-oliva", 10},
		}},
		{dish: "Salmón con verduras", parts: []templatePart{
			{"salmon", 150}, {"brocoli", 200}, {"aceite-oliva", 10},
		}},
		{dish: "Revuelto con pavo", parts: []templatePart{
			{"huevo", 110}, {"pavo-fiambre", 60}, {"ensalada-mixta", 120}, {"pan-integral", 30},
		}},
	},
	classOther: {
		{dish: "Yogur con nueces", parts: []templatePart{
			{"yogur-natural", 200}, {"nueces", 20},
		}},
		{dish: "Fruta con queso fresco", parts: []templatePart{
			{"queso-fresco", 150}, {"platano", 100},
		}},
		{dish: "Tostada de aguacate", parts: []templatePart{
			{"pan-integral", 50}, {"aguacate", 60},
		}},
	},
}

// Suggest builds a meal for the slot whose calories approximate
// dailyKcalGoal/mealCount. The combination's grams are scaled
// proportionally and rounded to whole grams (floor 1 g), so the day total
// lands within roughly 1% of the goal rather than exactly on it. A
// combination that resolves to zero calories is returned unscaled.
func (s *SuggestionService) Suggest(slotName string, dailyKcalGoal float64, mealCount int) models.Meal {
	if mealCount <= 0 {
		mealCount = 1
	}

	tpl := templatesByClass[classifySlot(slotName)][s.rnd.Intn(3)]
	items := s.instantiate(tpl)

	targetKcal := dailyKcalGoal / float64(mealCount)
	currentKcal := models.AggregateItems(items).Kcal
	if currentKcal > 0 && targetKcal > 0 {
		factor := targetKcal / currentKcal
		for i := range items {
			g := math.Round(items[i].Grams * factor)
			if g < 1 {
				g = 1
			}
			items[i].Grams = g
		}
	}

	return models.Meal{
		Name:    slotName,
		SubName: tpl.dish,
		Items:   items,
	}
}

// GenerateWeeklyMenu fills all seven days with the default slots. This is
// the canned menu served when no LLM key is configured.
func (s *SuggestionService) GenerateWeeklyMenu(dailyKcalGoal float64) models.WeeklyDietPlan {
	plan := make(models.WeeklyDietPlan, len(models.WeekDays))
	for _, day := range models.WeekDays {
		dp := make(models.DayPlan, len(models.DefaultMealSlots))
		for _, slot := range models.DefaultMealSlots {
			dp[slot] = s.Suggest(slot, dailyKcalGoal, len(models.DefaultMealSlots))
		}
		plan[day] = dp
	}
	return plan
}

func (s *SuggestionService) instantiate(tpl template) []models.FoodInstance {
	items := make([]models.FoodInstance, 0, len(tpl.parts))
	for _, p := range tpl.parts {
		food, err := s.catalog.Get(p.foodID)
		if err != nil {
			continue // template references only catalog ids; skip just in case
		}
		items = append(items, models.FoodInstance{
			FoodItem:   food,
			InstanceID: utils.GenerateRandomToken(8),
			Grams:      p.grams,
			Dish:       tpl.dish,
		})
	}
	return items
}
