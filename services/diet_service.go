package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/polmorales30/nexo.clinic-sub000/logger"
	"github.com/polmorales30/nexo.clinic-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrVersionConflict means the client saved against a stale version of the
// plan. Surfaces as 409 so the dashboard can reload instead of clobbering
// another session's edits.
var ErrVersionConflict = errors.New("diet plan was modified by another session")

// DietService is the persistence gateway for the per-patient diet
// document. Reads go through an in-memory cache so a flaky database
// degrades to the last known copy instead of an error page.
type DietService struct {
	db    *gorm.DB
	cache *planCache
}

// Shared across service instances; controllers build a DietService per
// request, so the cache has to outlive them.
var sharedPlanCache = newPlanCache()

func NewDietService(db *gorm.DB) *DietService {
	return &DietService{db: db, cache: sharedPlanCache}
}

// Get returns the stored document and its version. A patient with no
// stored plan gets a fresh empty document at version 0.
func (s *DietService) Get(patientID uint) (*models.DietDocument, uint, error) {
	var rec models.DietRecord
	err := s.db.Where("patient_id = ?", patientID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultDocument(), 0, nil
		}
		// Read failure: serve the cached copy if we have one.
		if doc, version, ok := s.cache.get(patientID); ok {
			logger.Warn("diet read failed, serving cached plan",
				zap.Uint("patientID", patientID), zap.Error(err))
			return doc, version, nil
		}
		return nil, 0, fmt.Errorf("failed to load diet plan: %w", err)
	}

	var doc models.DietDocument
	if err := json.Unmarshal(rec.Document, &doc); err != nil {
		return nil, 0, fmt.Errorf("failed to decode diet plan: %w", err)
	}
	doc.WeeklyDiet = doc.WeeklyDiet.Normalize()

	s.cache.put(patientID, &doc, rec.Version)
	return &doc, rec.Version, nil
}

// Save upserts the document. expectedVersion is what the client loaded;
// a mismatch on an existing record is a conflict. expectedVersion 0 skips
// the check (legacy clients that never send one).
func (s *DietService) Save(patientID uint, doc *models.DietDocument, expectedVersion uint) (uint, error) {
	doc.WeeklyDiet = doc.WeeklyDiet.Normalize()

	raw, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("failed to encode diet plan: %w", err)
	}

	var rec models.DietRecord
	err = s.db.Where("patient_id = ?", patientID).First(&rec).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("failed to load diet plan: %w", err)
		}
		rec = models.DietRecord{PatientID: patientID, Document: raw, Version: 1}
		if err := s.db.Create(&rec).Error; err != nil {
			return 0, err
		}
		s.cache.put(patientID, doc, rec.Version)
		return rec.Version, nil
	}

	if expectedVersion != 0 && expectedVersion != rec.Version {
		return rec.Version, ErrVersionConflict
	}

	rec.Document = raw
	rec.Version++
	if err := s.db.Save(&rec).Error; err != nil {
		return 0, err
	}

	s.cache.put(patientID, doc, rec.Version)
	return rec.Version, nil
}

func defaultDocument() *models.DietDocument {
	return &models.DietDocument{
		WeeklyDiet: models.NewWeeklyDietPlan(),
	}
}

// planCache is a write-through copy of the last document seen per patient.
type planCache struct {
	mu      sync.RWMutex
	entries map[uint]cachedPlan
}

type cachedPlan struct {
	raw     []byte
	version uint
}

func newPlanCache() *planCache {
	return &planCache{entries: make(map[uint]cachedPlan)}
}

func (c *planCache) put(patientID uint, doc *models.DietDocument, version uint) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.entries[patientID] = cachedPlan{raw: raw, version: version}
	c.mu.Unlock()
}

func (c *planCache) get(patientID uint) (*models.DietDocument, uint, bool) {
	c.mu.RLock()
	entry, ok := c.entries[patientID]
	c.mu.RUnlock()
	if !ok {
		return nil, 0, false
	}
	var doc models.DietDocument
	if err := json.Unmarshal(entry.raw, &doc); err != nil {
		return nil, 0, false
	}
	return &doc, entry.version, true
}
