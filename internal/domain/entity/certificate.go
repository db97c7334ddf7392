package entity

import "time"

// Certificate represents a medical certificate (atestado) issued by a
// doctor for a patient, classified by a diagnosis code.
type Certificate struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date            time.Time `gorm:"column:data;type:date;not null" json:"data"`
	DoctorID        uint      `gorm:"column:medico_id;not null;index" json:"medico_id"`
	PatientID       uint      `gorm:"column:paciente_id;not null;index" json:"paciente_id"`
	DiagnosisCodeID uint      `gorm:"column:cids_id;not null;index" json:"cids_id"`
	Description     string    `gorm:"column:descricao;type:text" json:"descricao"`

	// Relationships
	Doctor        Doctor        `gorm:"foreignKey:DoctorID" json:"medico,omitempty"`
	Patient       Patient       `gorm:"foreignKey:PatientID" json:"paciente,omitempty"`
	DiagnosisCode DiagnosisCode `gorm:"foreignKey:DiagnosisCodeID" json:"cid,omitempty"`
}

func (Certificate) TableName() string {
	return "atestado"
}
