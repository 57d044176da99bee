package services

import (
	"time"

	"github.com/polmorales30/nexo.clinic-sub000/models"

	"gorm.io/gorm"
)

type notifyDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _notify notifyDeps

func InitNotifyDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_notify = notifyDeps{db: db, rt: rt, ps: ps}
}

// EmitNotification persists a portal notification for the patient, fans the
// event out to the clinic's open dashboard sessions, and pushes to the
// patient's devices. Safe to call before InitNotifyDeps (no-op).
func EmitNotification(clinicID, patientID uint, typ, message string, event map[string]any) {
	if _notify.db == nil {
		return // not initialized
	}
	n := &models.Notification{PatientID: patientID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _notify.db.Create(n).Error

	if _notify.rt != nil && event != nil {
		_notify.rt.BroadcastEvent(clinicID, event)
	}
	if _notify.ps != nil {
		_notify.ps.PushToPatient(patientID, "NEXO.Clinic", message, map[string]string{
			"type": typ,
		})
	}
}
