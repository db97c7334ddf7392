package entity

// Hospital represents a registered hospital account
type Hospital struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	Address string `gorm:"column:endereco;type:varchar(255);not null" json:"endereco"`
	Phone   string `gorm:"column:telefone;type:varchar(20);not null" json:"telefone"`
	Email   string `gorm:"type:varchar(255);uniqueIndex:idx_hospital_email;not null" json:"email"`
	CNPJ    string `gorm:"column:cnpj;type:varchar(20);not null" json:"cnpj"`
	// Senha holds the bcrypt hash, never the plaintext.
	Senha string `gorm:"column:senha;type:text;not null" json:"-"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:HospitalID" json:"medicos,omitempty"`
}

func (Hospital) TableName() string {
	return "hospital"
}
