package entity

// Patient represents a patient (paciente)
type Patient struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	Address string `gorm:"column:endereco;type:varchar(255);not null" json:"endereco"`
	Phone   string `gorm:"column:telefone;type:varchar(20);not null" json:"telefone"`
	Email   string `gorm:"type:varchar(255);uniqueIndex:idx_paciente_email;not null" json:"email"`
	CPF     string `gorm:"column:cpf;type:varchar(14);not null" json:"cpf"`
}

func (Patient) TableName() string {
	return "paciente"
}
