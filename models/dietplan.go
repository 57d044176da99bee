package models

// The weekly diet plan is stored and shipped to the apps as one JSON
// document per patient (see DietRecord). These types define that document.

// Fixed weekday keys of a plan, in display order. Stored plans keep the
// Spanish keys the dashboard and patient portal already use.
var WeekDays = []string{
	"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo",
}

// Default meal slots for a freshly created day.
var DefaultMealSlots = []string{"desayuno", "comida", "cena"}

// FoodItem is a catalog entry. Nutrient values are per 100 g serving and
// never mutated at runtime.
type FoodItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"p"`
	Carbs   float64 `json:"c"`
	Fat     float64 `json:"f"`
}

// FoodInstance is a FoodItem placed into a meal with a serving size.
type FoodInstance struct {
	FoodItem
	InstanceID string  `json:"instanceId"`
	Grams      float64 `json:"grams"`
	Dish       string  `json:"dish,omitempty"`
}

// Meal is an ordered sequence of food instances under a slot key.
type Meal struct {
	Name    string         `json:"name"`
	SubName string         `json:"subName,omitempty"`
	Items   []FoodInstance `json:"items"`
}

// DayPlan maps meal-slot keys ("desayuno", "comida", …) to meals. Slot sets
// may differ from day to day.
type DayPlan map[string]Meal

// WeeklyDietPlan maps the seven weekday keys to day plans.
type WeeklyDietPlan map[string]DayPlan

// NutrientGoals are the patient's daily targets.
type NutrientGoals struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"p"`
	Carbs   float64 `json:"c"`
	Fat     float64 `json:"f"`
}

// CalcData keeps the calculator inputs so the dashboard can re-open the
// goals calculator pre-filled.
type CalcData struct {
	AgeYears           int     `json:"ageYears"`
	Gender             string  `json:"gender"` // "male" | "female"
	WeightKg           float64 `json:"weightKg"`
	HeightCm           float64 `json:"heightCm"`
	ActivityMultiplier float64 `json:"activityMultiplier"`
	GoalAdjustPct      float64 `json:"goalAdjustPct"` // e.g. -10 for a cut
	ProteinPct         float64 `json:"proteinPct"`
	CarbsPct           float64 `json:"carbsPct"`
	FatPct             float64 `json:"fatPct"`
	Formula            string  `json:"formula"` // "mifflin" | "harris"
}

// DietDocument is the full per-patient blob: plan + goals + calculator state.
type DietDocument struct {
	WeeklyDiet WeeklyDietPlan `json:"weeklyDiet"`
	UserGoals  NutrientGoals  `json:"userGoals"`
	CalcData   CalcData       `json:"calcData"`
}

// MacroTotals is the output of the aggregator.
type MacroTotals struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"p"`
	Carbs   float64 `json:"c"`
	Fat     float64 `json:"f"`
}

func (t *MacroTotals) add(o MacroTotals) {
	t.Kcal += o.Kcal
	t.Protein += o.Protein
	t.Carbs += o.Carbs
	t.Fat += o.Fat
}

// AggregateItems scales each instance's per-100g values by grams/100 and
// sums. Missing or negative grams count as the 100 g default. Empty input
// yields all zeros.
func AggregateItems(items []FoodInstance) MacroTotals {
	var out MacroTotals
	for _, it := range items {
		g := it.Grams
		if g <= 0 {
			g = 100
		}
		factor := g / 100.0
		out.Kcal += it.Kcal * factor
		out.Protein += it.Protein * factor
		out.Carbs += it.Carbs * factor
		out.Fat += it.Fat * factor
	}
	return out
}

// Totals returns the meal's aggregated macros.
func (m Meal) Totals() MacroTotals {
	return AggregateItems(m.Items)
}

// Totals sums the day's meals.
func (d DayPlan) Totals() MacroTotals {
	var out MacroTotals
	for _, meal := range d {
		out.add(meal.Totals())
	}
	return out
}

// DayTotals returns per-day totals keyed by weekday.
func (p WeeklyDietPlan) DayTotals() map[string]MacroTotals {
	out := make(map[string]MacroTotals, len(p))
	for day, dp := range p {
		out[day] = dp.Totals()
	}
	return out
}

// NewWeeklyDietPlan builds an empty plan with all seven days and the
// default meal slots in place.
func NewWeeklyDietPlan() WeeklyDietPlan {
	plan := make(WeeklyDietPlan, len(WeekDays))
	for _, day := range WeekDays {
		dp := make(DayPlan, len(DefaultMealSlots))
		for _, slot := range DefaultMealSlots {
			dp[slot] = Meal{Name: slot, Items: []FoodInstance{}}
		}
		plan[day] = dp
	}
	return plan
}

// Normalize guarantees the seven-day invariant on plans loaded from
// storage or received from a client: missing days are created empty,
// unknown day keys are dropped.
func (p WeeklyDietPlan) Normalize() WeeklyDietPlan {
	out := make(WeeklyDietPlan, len(WeekDays))
	for _, day := range WeekDays {
		if dp, ok := p[day]; ok && dp != nil {
			out[day] = dp
		} else {
			out[day] = DayPlan{}
		}
	}
	return out
}
