package entity

// DiagnosisCode represents an ICD diagnosis code entry (cids)
type DiagnosisCode struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	Code        string `gorm:"column:cod;type:varchar(20);not null" json:"cod"`
	Description string `gorm:"column:descricao;type:text" json:"descricao"`
}

func (DiagnosisCode) TableName() string {
	return "cids"
}
