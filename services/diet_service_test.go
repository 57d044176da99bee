package services

import (
	"fmt"
	"testing"

	"github.com/polmorales30/nexo.clinic-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDietTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.DietRecord{}))
	return db
}

func sampleDocument(note string) *models.DietDocument {
	doc := &models.DietDocument{
		WeeklyDiet: models.NewWeeklyDietPlan(),
		UserGoals:  models.NutrientGoals{Kcal: 2200, Protein: 150, Carbs: 220, Fat: 80},
	}
	doc.WeeklyDiet["lunes"]["desayuno"] = models.Meal{
		Name:    "desayuno",
		SubName: note,
		Items: []models.FoodInstance{
			{FoodItem: models.FoodItem{ID: "avena", Name: "Avena", Kcal: 389}, InstanceID: "i1", Grams: 60},
		},
	}
	return doc
}

func TestDietSaveFirstTimeStartsAtVersionOne(t *testing.T) {
	s := NewDietService(newDietTestDB(t))

	version, err := s.Save(1001, sampleDocument("v1"), 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
}

func TestDietSaveAtCurrentVersionBumpsIt(t *testing.T) {
	s := NewDietService(newDietTestDB(t))

	v1, err := s.Save(1002, sampleDocument("first"), 0)
	require.NoError(t, err)

	v2, err := s.Save(1002, sampleDocument("second"), v1)
	require.NoError(t, err)
	assert.Equal(t, v1+1, v2)

	doc, version, err := s.Get(1002)
	require.NoError(t, err)
	assert.Equal(t, v2, version)
	assert.Equal(t, "second", doc.WeeklyDiet["lunes"]["desayuno"].SubName)
}

func TestDietSaveStaleVersionIsRejected(t *testing.T) {
	s := NewDietService(newDietTestDB(t))

	v1, err := s.Save(1003, sampleDocument("first"), 0)
	require.NoError(t, err)
	_, err = s.Save(1003, sampleDocument("second"), v1)
	require.NoError(t, err)

	// Another session still holds v1; its save must not clobber the
	// second one.
	current, err := s.Save(1003, sampleDocument("stale"), v1)
	require.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, v1+1, current, "conflict reports the current version")

	doc, _, err := s.Get(1003)
	require.NoError(t, err)
	assert.Equal(t, "second", doc.WeeklyDiet["lunes"]["desayuno"].SubName)
}

func TestDietSaveVersionZeroOverwrites(t *testing.T) {
	s := NewDietService(newDietTestDB(t))

	_, err := s.Save(1004, sampleDocument("first"), 0)
	require.NoError(t, err)
	v2, err := s.Save(1004, sampleDocument("second"), 0)
	require.NoError(t, err)

	// Clients that never send a version keep the old last-write-wins
	// behavior, and the version still advances underneath them.
	v3, err := s.Save(1004, sampleDocument("third"), 0)
	require.NoError(t, err)
	assert.Equal(t, v2+1, v3)

	doc, _, err := s.Get(1004)
	require.NoError(t, err)
	assert.Equal(t, "third", doc.WeeklyDiet["lunes"]["desayuno"].SubName)
}

func TestDietGetUnknownPatientReturnsEmptyDocument(t *testing.T) {
	s := NewDietService(newDietTestDB(t))

	doc, version, err := s.Get(424242)
	require.NoError(t, err)
	assert.EqualValues(t, 0, version)
	require.Len(t, doc.WeeklyDiet, 7)
	assert.Zero(t, doc.UserGoals.Kcal)
}
