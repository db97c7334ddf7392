package entity

import "time"

// Consultation represents a medical consultation (consulta) between a
// doctor and a patient. Rows are removed when either side is deleted.
type Consultation struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date        time.Time `gorm:"column:data;type:date;not null" json:"data"`
	DoctorID    uint      `gorm:"column:medico_id;not null;index" json:"medico_id"`
	PatientID   uint      `gorm:"column:paciente_id;not null;index" json:"paciente_id"`
	Description string    `gorm:"column:descricao;type:text" json:"descricao"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"medico,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"paciente,omitempty"`
}

func (Consultation) TableName() string {
	return "consulta"
}
