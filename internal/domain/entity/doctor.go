package entity

// Doctor represents a physician (medico). HospitalID is optional and is
// nulled out when the referenced hospital is deleted.
type Doctor struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	CRM        string `gorm:"column:crm;type:varchar(20);uniqueIndex:idx_medico_crm;not null" json:"crm"`
	Specialty  string `gorm:"column:especialidade;type:varchar(100);not null" json:"especialidade"`
	HospitalID *uint  `gorm:"column:hospital_id;index" json:"hospital_id,omitempty"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Doctor) TableName() string {
	return "medico"
}
